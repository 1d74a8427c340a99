// Package config loads puzzle parameters from a YAML file so recurring
// geometries do not have to be retyped on every invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ClusterFights/jigsaw-challenge/internal/grid"
)

// Config holds the puzzle parameters a config file may set.  Flags given on
// the command line take precedence over file values.
type Config struct {
	Width  int    `yaml:"width"`  // puzzle width in pieces
	Height int    `yaml:"height"` // puzzle height in pieces
	Edge   int    `yaml:"edge"`   // piece bitmap side length
	Seed   int64  `yaml:"seed"`   // 0 = time-based
	Dir    string `yaml:"dir"`    // output / piece directory
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks the geometry bounds.  Zero values pass so a file may set
// only a subset of the parameters and leave the rest to flags.
func (c *Config) Validate() error {
	if c.Width == 0 && c.Height == 0 && c.Edge == 0 {
		return nil
	}
	w, h, e := c.Width, c.Height, c.Edge
	if w == 0 {
		w = grid.MinWidth
	}
	if h == 0 {
		h = grid.MinHeight
	}
	if e == 0 {
		e = grid.MinEdge
	}
	return grid.ValidateGeometry(w, h, e)
}
