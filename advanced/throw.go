package advanced

import "github.com/pkg/errors"

// Degenerate geometry (too few points, collinear input, dead ends while
// tracing) is an ordinary outcome and is reported with empty results. Invalid
// arguments panic with an InvalidInputError, which the public API recovers
// into an error.

type InvalidInputError struct {
	cause error
}

func (e *InvalidInputError) Error() string {
	return e.cause.Error()
}

func (e *InvalidInputError) Cause() error {
	return e.cause
}

func (e *InvalidInputError) Unwrap() error {
	return e.cause
}

// Panic with an InvalidInputError.
func fatalf(format string, args ...interface{}) {
	panic(&InvalidInputError{errors.Errorf(format, args...)})
}

// Convert a recovered InvalidInputError into an error. Any other panic is
// re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if inputError, ok := r.(*InvalidInputError); ok {
			return inputError
		}
		panic(r)
	}
	return nil
}
