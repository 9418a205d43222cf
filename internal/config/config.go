// Package config loads run settings from a TOML file: grid dimensions,
// agent start, dirt placement, and interpreter limits.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/hassan/cleanworld/internal/interp"
	"github.com/hassan/cleanworld/internal/world"
)

// Grid configures world dimensions.
type Grid struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Agent configures the starting position and facing.
type Agent struct {
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Facing string `toml:"facing"`
}

// Dirt configures dirt placement. When Cells is empty and Default is
// true the standard layout is used.
type Dirt struct {
	Default bool    `toml:"default"`
	Cells   [][]int `toml:"cells"`
}

// Config is the full run configuration.
type Config struct {
	Grid          Grid  `toml:"grid"`
	Agent         Agent `toml:"agent"`
	Dirt          Dirt  `toml:"dirt"`
	MaxIterations int   `toml:"max_iterations"`
	FoldTails     bool  `toml:"fold_tails"`
}

// Default returns the standard configuration: a 5x5 grid, the agent at
// the origin facing north, and the default dirt layout.
func Default() *Config {
	return &Config{
		Grid:          Grid{Width: 5, Height: 5},
		Agent:         Agent{X: 0, Y: 0, Facing: "north"},
		Dirt:          Dirt{Default: true},
		MaxIterations: interp.DefaultMaxIterations,
	}
}

// Load reads a TOML file over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks dimensions, limits, and the agent start.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("config: max_iterations must be positive, got %d", c.MaxIterations)
	}
	if _, ok := world.ParseFacing(c.Agent.Facing); !ok {
		return fmt.Errorf("config: unknown facing %q", c.Agent.Facing)
	}
	if c.Agent.X < 0 || c.Agent.X >= c.Grid.Width || c.Agent.Y < 0 || c.Agent.Y >= c.Grid.Height {
		return fmt.Errorf("config: agent start (%d, %d) outside %dx%d grid",
			c.Agent.X, c.Agent.Y, c.Grid.Width, c.Grid.Height)
	}
	for _, cell := range c.Dirt.Cells {
		if len(cell) != 2 {
			return fmt.Errorf("config: dirt cells must be [x, y] pairs, got %v", cell)
		}
	}
	return nil
}

// BuildWorld constructs the grid the configuration describes.
func (c *Config) BuildWorld() (*world.GridWorld, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var g *world.GridWorld
	if c.Dirt.Default && len(c.Dirt.Cells) == 0 {
		g = world.New(c.Grid.Width, c.Grid.Height)
	} else {
		g = world.NewEmpty(c.Grid.Width, c.Grid.Height)
		for _, cell := range c.Dirt.Cells {
			g.AddDirt(cell[0], cell[1])
		}
	}

	facing, _ := world.ParseFacing(c.Agent.Facing)
	if err := g.PlaceAgent(c.Agent.X, c.Agent.Y, facing); err != nil {
		return nil, err
	}
	return g, nil
}
