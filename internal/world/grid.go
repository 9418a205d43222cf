// Package world simulates the 2D grid a CleanWorld agent operates in:
// agent position and facing, plus the set of dirty cells.
package world

import "fmt"

// Facing is the agent's cardinal orientation. The values are ordered
// clockwise so turning is modular arithmetic.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

// String returns the facing's source-level spelling.
func (f Facing) String() string {
	switch f {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseFacing maps a source spelling to a Facing.
func ParseFacing(word string) (Facing, bool) {
	switch word {
	case "north":
		return North, true
	case "east":
		return East, true
	case "south":
		return South, true
	case "west":
		return West, true
	}
	return 0, false
}

// Cell addresses one grid position. The origin is the top-left corner;
// y grows southward, so moving north decreases y.
type Cell struct {
	X int
	Y int
}

// OutOfBoundsError reports a move that would leave the grid. The agent
// does not move; X and Y are the rejected destination.
type OutOfBoundsError struct {
	X int
	Y int
}

// Error implements the error interface.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cannot move: agent would leave the grid at (%d, %d)", e.X, e.Y)
}

// GridWorld is the mutable simulation state. Agent coordinates stay
// within [0,width)×[0,height) at all times.
type GridWorld struct {
	width  int
	height int
	agentX int
	agentY int
	facing Facing
	dirt   map[Cell]struct{}
}

// DefaultDirt is the dirt layout a freshly built world starts with.
var DefaultDirt = []Cell{{2, 2}, {3, 1}, {1, 3}}

// New creates a grid with the agent at the origin facing north and the
// default dirt layout. Cells outside a small grid's bounds are kept in
// the set but are unreachable.
func New(width, height int) *GridWorld {
	g := NewEmpty(width, height)
	for _, cell := range DefaultDirt {
		g.AddDirt(cell.X, cell.Y)
	}
	return g
}

// NewEmpty creates a grid with no dirt, for callers that place dirt
// themselves.
func NewEmpty(width, height int) *GridWorld {
	return &GridWorld{
		width:  width,
		height: height,
		facing: North,
		dirt:   make(map[Cell]struct{}),
	}
}

// Width returns the grid width.
func (g *GridWorld) Width() int { return g.width }

// Height returns the grid height.
func (g *GridWorld) Height() int { return g.height }

// Agent returns the agent's current cell.
func (g *GridWorld) Agent() Cell { return Cell{g.agentX, g.agentY} }

// Facing returns the agent's current orientation.
func (g *GridWorld) Facing() Facing { return g.facing }

// PlaceAgent moves the agent directly to a cell, for initial setup.
func (g *GridWorld) PlaceAgent(x, y int, facing Facing) error {
	if !g.inBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y}
	}
	g.agentX, g.agentY = x, y
	g.facing = facing
	return nil
}

// AddDirt marks a cell dirty.
func (g *GridWorld) AddDirt(x, y int) {
	g.dirt[Cell{x, y}] = struct{}{}
}

// HasDirt reports whether a cell is dirty.
func (g *GridWorld) HasDirt(x, y int) bool {
	_, ok := g.dirt[Cell{x, y}]
	return ok
}

// DirtCount returns the number of dirty cells.
func (g *GridWorld) DirtCount() int {
	return len(g.dirt)
}

// Move advances the agent one cell in its facing. A move that would
// leave the grid fails and leaves the agent where it was.
func (g *GridWorld) Move() error {
	x, y := g.agentX, g.agentY
	switch g.facing {
	case North:
		y--
	case South:
		y++
	case East:
		x++
	case West:
		x--
	}
	if !g.inBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y}
	}
	g.agentX, g.agentY = x, y
	return nil
}

// TurnLeft rotates the agent 90 degrees counter-clockwise.
func (g *GridWorld) TurnLeft() {
	g.facing = (g.facing + 3) % 4
}

// TurnRight rotates the agent 90 degrees clockwise.
func (g *GridWorld) TurnRight() {
	g.facing = (g.facing + 1) % 4
}

// Clean removes dirt at the agent's cell. Cleaning a clean cell is a
// no-op.
func (g *GridWorld) Clean() {
	delete(g.dirt, Cell{g.agentX, g.agentY})
}

// Sense reports whether the agent's cell is dirty. It never mutates.
func (g *GridWorld) Sense() bool {
	return g.HasDirt(g.agentX, g.agentY)
}

func (g *GridWorld) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}
