package world

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLayout(t *testing.T) {
	g := New(5, 5)

	assert.Equal(t, Cell{0, 0}, g.Agent())
	assert.Equal(t, North, g.Facing())
	assert.Equal(t, 3, g.DirtCount())
	assert.True(t, g.HasDirt(2, 2))
	assert.True(t, g.HasDirt(3, 1))
	assert.True(t, g.HasDirt(1, 3))
}

func TestMove_EachFacing(t *testing.T) {
	tests := []struct {
		facing Facing
		want   Cell
	}{
		{South, Cell{2, 3}},
		{East, Cell{3, 2}},
		{North, Cell{2, 1}},
		{West, Cell{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			g := NewEmpty(5, 5)
			require.NoError(t, g.PlaceAgent(2, 2, tt.facing))
			require.NoError(t, g.Move())
			assert.Equal(t, tt.want, g.Agent())
		})
	}
}

func TestMove_OffGridFailsWithoutMoving(t *testing.T) {
	g := NewEmpty(1, 1)

	err := g.Move()
	require.Error(t, err)

	var oob *OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 0, oob.X)
	assert.Equal(t, -1, oob.Y)
	assert.Equal(t, Cell{0, 0}, g.Agent(), "failed move must not change position")
	assert.Equal(t, North, g.Facing())
}

func TestTurn_ClockwiseCycle(t *testing.T) {
	g := NewEmpty(3, 3)

	want := []Facing{East, South, West, North}
	for _, f := range want {
		g.TurnRight()
		assert.Equal(t, f, g.Facing())
	}
}

func TestTurn_LeftIsInverseOfRight(t *testing.T) {
	for _, start := range []Facing{North, East, South, West} {
		g := NewEmpty(3, 3)
		require.NoError(t, g.PlaceAgent(1, 1, start))

		g.TurnLeft()
		g.TurnRight()
		assert.Equal(t, start, g.Facing())

		g.TurnRight()
		g.TurnLeft()
		assert.Equal(t, start, g.Facing())
	}
}

func TestClean_Idempotent(t *testing.T) {
	g := NewEmpty(3, 3)
	g.AddDirt(1, 1)
	require.NoError(t, g.PlaceAgent(1, 1, North))

	require.True(t, g.Sense())
	g.Clean()
	assert.False(t, g.Sense())
	assert.Equal(t, 0, g.DirtCount())

	g.Clean()
	assert.Equal(t, 0, g.DirtCount())
}

func TestSense_PureQuery(t *testing.T) {
	g := NewEmpty(3, 3)
	g.AddDirt(0, 0)

	for i := 0; i < 3; i++ {
		assert.True(t, g.Sense())
	}
	assert.Equal(t, 1, g.DirtCount())
	assert.Equal(t, Cell{0, 0}, g.Agent())
}

func TestPlaceAgent_RejectsOutOfBounds(t *testing.T) {
	g := NewEmpty(2, 2)

	err := g.PlaceAgent(2, 0, East)
	require.Error(t, err)
	assert.Equal(t, Cell{0, 0}, g.Agent())

	require.NoError(t, g.PlaceAgent(1, 1, East))
	assert.Equal(t, Cell{1, 1}, g.Agent())
	assert.Equal(t, East, g.Facing())
}

func TestParseFacing(t *testing.T) {
	for _, f := range []Facing{North, East, South, West} {
		got, ok := ParseFacing(f.String())
		require.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok := ParseFacing("up")
	assert.False(t, ok)
}

func TestRender_ShowsAgentAndDirt(t *testing.T) {
	g := NewEmpty(3, 2)
	g.AddDirt(2, 0)
	require.NoError(t, g.PlaceAgent(0, 0, East))

	out := g.Render()
	assert.Contains(t, out, ">")
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "Agent: (0, 0) facing east")
	assert.Contains(t, out, "Dirt remaining: 1 cells")
	// One rule line per row boundary plus the top border.
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 5)
}
