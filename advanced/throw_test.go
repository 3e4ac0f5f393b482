package advanced

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run fn, turning an input panic into an error the way the public API does.
func recovered(fn func()) (err error) {
	defer func() {
		err = HandlePanicRecover(recover())
	}()
	fn()
	return nil
}

func TestHandlePanicRecover(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	for _, tc := range []struct {
		name    string
		fn      func()
		message string
	}{
		{
			name:    "nil points",
			fn:      func() { NewGrid(nil, 10, 10, 2, 2) },
			message: "grid requires a point slice, got nil",
		},
		{
			name:    "negative dimensions",
			fn:      func() { NewGridFitted(points, -1, 2) },
			message: "grid dimensions must not be negative, got -1 rows and 2 cols",
		},
		{
			name:    "negative region",
			fn:      func() { NewGrid(points, -4, 10, 2, 2) },
			message: "grid region must not be negative, got -4x10",
		},
		{
			name:    "NaN coordinate",
			fn:      func() { NewGrid([]Point{{X: math.NaN()}}, 10, 10, 2, 2) },
			message: "point 0 has a NaN coordinate: (NaN, 0.00)",
		},
		{
			name:    "point out of range",
			fn:      func() { NewGrid(points, 10, 10, 2, 2).CellOf(3) },
			message: "point id 3 out of range [0, 3)",
		},
		{
			name:    "nil triangulation input",
			fn:      func() { Triangulate(nil, Options{}) },
			message: "cannot triangulate a nil point slice",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := recovered(tc.fn)
			require.Error(t, err)
			assert.EqualError(t, err, tc.message)
			var inputErr *InvalidInputError
			assert.True(t, errors.As(err, &inputErr))
		})
	}

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, recovered(func() { NewGrid(points, 10, 10, 2, 2) }))
	})

	t.Run("runtime errors are not swallowed", func(t *testing.T) {
		assert.Panics(t, func() {
			recovered(func() {
				var points []Point
				_ = points[3]
			})
		})
	})
}
