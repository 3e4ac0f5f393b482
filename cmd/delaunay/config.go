package main

import (
	"io"
	"os"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Grid settings, from a YAML file and/or flags. Zero values mean "not set",
// and fall through to the triangulator's own defaults.
type Config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
}

func loadConfig(path string) (Config, error) {
	var config Config
	if path == "" {
		return config, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	return parseConfig(f)
}

func parseConfig(r io.Reader) (Config, error) {
	var config Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	return config, nil
}

// Values set in override replace the ones in c.
func (c Config) Merge(override Config) Config {
	if override.Width != 0 {
		c.Width = override.Width
	}
	if override.Height != 0 {
		c.Height = override.Height
	}
	if override.Rows != 0 {
		c.Rows = override.Rows
	}
	if override.Cols != 0 {
		c.Cols = override.Cols
	}
	return c
}

func (c Config) Options(logger *zap.Logger) advanced.Options {
	return advanced.Options{
		Width:  c.Width,
		Height: c.Height,
		Rows:   c.Rows,
		Cols:   c.Cols,
		Logger: logger,
	}
}
