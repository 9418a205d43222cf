package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/cleanworld/internal/world"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.Grid.Width)
	assert.Equal(t, 5, cfg.Grid.Height)
	assert.Equal(t, "north", cfg.Agent.Facing)
	assert.Equal(t, 10000, cfg.MaxIterations)
	assert.False(t, cfg.FoldTails)
}

func TestDefault_BuildsStandardWorld(t *testing.T) {
	g, err := Default().BuildWorld()
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, world.Cell{X: 0, Y: 0}, g.Agent())
	assert.Equal(t, world.North, g.Facing())
	assert.Equal(t, 3, g.DirtCount())
	assert.True(t, g.HasDirt(2, 2))
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[grid]
width = 8
height = 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Grid.Width)
	assert.Equal(t, 2, cfg.Grid.Height)
	assert.Equal(t, "north", cfg.Agent.Facing)
	assert.Equal(t, 10000, cfg.MaxIterations)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
max_iterations = 500
fold_tails = true

[grid]
width = 4
height = 4

[agent]
x = 1
y = 2
facing = "east"

[dirt]
default = false
cells = [[0, 0], [3, 3]]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.True(t, cfg.FoldTails)

	g, err := cfg.BuildWorld()
	require.NoError(t, err)
	assert.Equal(t, world.Cell{X: 1, Y: 2}, g.Agent())
	assert.Equal(t, world.East, g.Facing())
	assert.Equal(t, 2, g.DirtCount())
	assert.True(t, g.HasDirt(0, 0))
	assert.True(t, g.HasDirt(3, 3))
	assert.False(t, g.HasDirt(2, 2))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Grid.Width = 0 }},
		{"negative height", func(c *Config) { c.Grid.Height = -1 }},
		{"zero iteration cap", func(c *Config) { c.MaxIterations = 0 }},
		{"unknown facing", func(c *Config) { c.Agent.Facing = "up" }},
		{"agent off grid", func(c *Config) { c.Agent.X = 5 }},
		{"malformed dirt cell", func(c *Config) { c.Dirt.Cells = [][]int{{1}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestBuildWorld_ExplicitCellsOverrideDefaultLayout(t *testing.T) {
	cfg := Default()
	cfg.Dirt.Cells = [][]int{{4, 4}}

	g, err := cfg.BuildWorld()
	require.NoError(t, err)
	assert.Equal(t, 1, g.DirtCount())
	assert.True(t, g.HasDirt(4, 4))
}
