// Package config loads the YAML session configuration: the locations to
// compare, an optional explicit projection center, and presentation
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"demercator/internal/geom"
)

// DefaultPalette is cycled through locations without an explicit color.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Default viewport dimensions in pixels.
const (
	DefaultViewportWidth  = 1200
	DefaultViewportHeight = 800
)

// Center is an explicit projection origin.
type Center struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Geographic converts the center to a coordinate value.
func (c Center) Geographic() geom.Geographic { return geom.Geographic{Lat: c.Lat, Lon: c.Lon} }

// Location is one comparable dataset. Path is resolved relative to the
// config file.
type Location struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Path  string `yaml:"path"`
	Color string `yaml:"color"`
}

// Viewport overrides the overlay canvas size.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config is the parsed session configuration.
type Config struct {
	ProjectionCenter *Center    `yaml:"projection_center"`
	Colors           []string   `yaml:"colors"`
	Viewport         *Viewport  `yaml:"viewport"`
	Locations        []Location `yaml:"locations"`
}

// Load reads and validates a config file. Location paths are resolved
// relative to the config file's directory, names default to ids, and
// missing colors are assigned from the palette in order.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Locations) == 0 {
		return Config{}, errors.New("config must contain a non-empty 'locations:' list")
	}

	palette := cfg.Colors
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	dir := filepath.Dir(path)
	for i := range cfg.Locations {
		loc := &cfg.Locations[i]
		if loc.ID == "" || loc.Path == "" {
			return Config{}, fmt.Errorf("location %d: id and path are required", i)
		}
		if loc.Name == "" {
			loc.Name = loc.ID
		}
		if loc.Color == "" {
			loc.Color = palette[i%len(palette)]
		}
		if !filepath.IsAbs(loc.Path) {
			loc.Path = filepath.Join(dir, loc.Path)
		}
	}
	return cfg, nil
}

// ViewportSize returns the configured viewport, or the defaults.
func (c Config) ViewportSize() (w, h float64) {
	if c.Viewport != nil && c.Viewport.Width > 0 && c.Viewport.Height > 0 {
		return c.Viewport.Width, c.Viewport.Height
	}
	return DefaultViewportWidth, DefaultViewportHeight
}
