package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/cleanworld/internal/ast"
	"github.com/hassan/cleanworld/internal/lexer"
	"github.com/hassan/cleanworld/internal/parser"
	"github.com/hassan/cleanworld/internal/world"
)

func compile(t *testing.T, source string) *ast.Program {
	t.Helper()
	tokens, errs := lexer.New(source).Scan()
	require.Empty(t, errs)
	cst, err := parser.New(tokens).ParseProgram()
	require.NoError(t, err)
	prog, err := (&ast.Converter{}).Convert(cst)
	require.NoError(t, err)
	return prog
}

func run(t *testing.T, source string, grid *world.GridWorld, opts ...Option) (*Interpreter, error) {
	t.Helper()
	i := New(grid, opts...)
	return i, i.Run(compile(t, source))
}

func value(t *testing.T, i *Interpreter, name string) interface{} {
	t.Helper()
	v, err := i.env.Get(name)
	require.NoError(t, err)
	return v
}

func TestRun_DeclarationsAndAssignment(t *testing.T) {
	i, err := run(t, `
program P {
    grid(5, 5);
    const limit: int = 3;
    var steps: int = 1;
    steps = steps + limit;
}
`, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, value(t, i, "steps"))
	assert.Equal(t, 3, value(t, i, "limit"))
}

func TestRun_VarDefaultsByType(t *testing.T) {
	i, err := run(t, `
program P {
    grid(5, 5);
    var n: int;
    var b: bool;
    var d: direction;
}
`, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, value(t, i, "n"))
	assert.Equal(t, false, value(t, i, "b"))
	assert.Equal(t, "north", value(t, i, "d"))
}

func TestRun_ConstReassignmentFails(t *testing.T) {
	_, err := run(t, `
program P {
    grid(5, 5);
    const x: int = 5;
    x = 6;
}
`, nil)
	var constErr *ConstAssignmentError
	require.ErrorAs(t, err, &constErr)
	assert.Equal(t, "x", constErr.Name)
}

func TestRun_UndefinedAssignmentFails(t *testing.T) {
	_, err := run(t, `
program P {
    grid(5, 5);
    y = 1;
}
`, nil)
	var undef *UndefinedVariableError
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, "y", undef.Name)
}

func TestRun_IfElse(t *testing.T) {
	i, err := run(t, `
program P {
    grid(5, 5);
    var x: int;
    if (1 < 2) { x = 10; } else { x = 20; }
    var y: int;
    if (2 < 1) { y = 10; } else { y = 20; }
    var z: int;
    if (2 < 1) { z = 10; }
}
`, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, value(t, i, "x"))
	assert.Equal(t, 20, value(t, i, "y"))
	assert.Equal(t, 0, value(t, i, "z"))
}

func TestRun_WhileLoop(t *testing.T) {
	i, err := run(t, `
program P {
    grid(5, 5);
    var steps: int;
    while (steps < 10) {
        steps = steps + 1;
    }
}
`, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, value(t, i, "steps"))
}

func TestRun_InfiniteLoopGuard(t *testing.T) {
	i, err := run(t, `
program P {
    grid(5, 5);
    var n: int;
    while (true) {
        n = n + 1;
    }
}
`, nil)
	var loopErr *InfiniteLoopError
	require.ErrorAs(t, err, &loopErr)
	assert.Equal(t, DefaultMaxIterations, loopErr.Limit)

	// The cap trips before the body of the excess iteration runs.
	assert.Equal(t, DefaultMaxIterations, value(t, i, "n"))
}

func TestRun_IterationCapConfigurable(t *testing.T) {
	i, err := run(t, `
program P {
    grid(5, 5);
    var n: int;
    while (true) {
        n = n + 1;
    }
}
`, nil, WithMaxIterations(5))
	var loopErr *InfiniteLoopError
	require.ErrorAs(t, err, &loopErr)
	assert.Equal(t, 5, loopErr.Limit)
	assert.Equal(t, 5, value(t, i, "n"))
}

func TestRun_DivisionByZeroAbortsBeforeSideEffects(t *testing.T) {
	grid := world.NewEmpty(1, 1)
	grid.AddDirt(0, 0)

	_, err := run(t, `
program P {
    grid(1, 1);
    var x: int;
    x = 1 / 0;
    clean;
}
`, grid)
	var divErr *DivisionByZeroError
	require.ErrorAs(t, err, &divErr)
	assert.True(t, grid.HasDirt(0, 0), "statements after the failure must not run")
}

func TestRun_FloorDivision(t *testing.T) {
	i, err := run(t, `
program P {
    grid(5, 5);
    var a: int = 7 / 2;
    var b: int = 0 - 7;
    var c: int = b / 2;
}
`, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, value(t, i, "a"))
	assert.Equal(t, -4, value(t, i, "c"))
}

func TestRun_MoveOffGridLeavesStateUnchanged(t *testing.T) {
	grid := world.NewEmpty(1, 1)

	_, err := run(t, `
program P {
    grid(1, 1);
    var d: direction;
    move;
}
`, grid)
	var oob *world.OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, world.Cell{X: 0, Y: 0}, grid.Agent())
	assert.Equal(t, world.North, grid.Facing())
}

func TestRun_ActionsDriveTheGrid(t *testing.T) {
	grid := world.NewEmpty(3, 3)
	grid.AddDirt(1, 0)

	_, err := run(t, `
program P {
    grid(3, 3);
    turnRight;
    move;
    if (sense) { clean; }
}
`, grid)
	require.NoError(t, err)
	assert.Equal(t, world.Cell{X: 1, Y: 0}, grid.Agent())
	assert.Equal(t, world.East, grid.Facing())
	assert.Equal(t, 0, grid.DirtCount())
}

func TestRun_SweepUntilClean(t *testing.T) {
	grid := world.NewEmpty(4, 1)
	grid.AddDirt(1, 0)
	grid.AddDirt(3, 0)
	require.NoError(t, grid.PlaceAgent(0, 0, world.East))

	_, err := run(t, `
program P {
    grid(4, 1);
    var steps: int;
    while (steps < 3) {
        move;
        if (sense) { clean; }
        steps = steps + 1;
    }
}
`, grid)
	require.NoError(t, err)
	assert.Equal(t, 0, grid.DirtCount())
	assert.Equal(t, world.Cell{X: 3, Y: 0}, grid.Agent())
}

func TestRun_ActionWithoutGridFails(t *testing.T) {
	_, err := run(t, `
program P {
    grid(5, 5);
    move;
}
`, nil)
	var gridErr *GridNotInitializedError
	require.ErrorAs(t, err, &gridErr)
}

func TestRun_SenseWithoutGridFails(t *testing.T) {
	_, err := run(t, `
program P {
    grid(5, 5);
    var b: bool;
    b = sense;
}
`, nil)
	var gridErr *GridNotInitializedError
	require.ErrorAs(t, err, &gridErr)
}

func TestRun_SenseAsStatementIsLegal(t *testing.T) {
	grid := world.NewEmpty(2, 2)
	_, err := run(t, `
program P {
    grid(2, 2);
    sense;
}
`, grid)
	require.NoError(t, err)
}

func TestRun_DirtIsNotReadable(t *testing.T) {
	grid := world.New(5, 5)
	_, err := run(t, `
program P {
    grid(5, 5);
    var b: bool;
    b = dirt;
}
`, grid)
	var reserved *ReservedIdentifierError
	require.ErrorAs(t, err, &reserved)
	assert.Equal(t, "dirt", reserved.Name)
}

func TestRun_LogicalOperatorsEvaluateEagerly(t *testing.T) {
	// No short-circuit: the right operand's division still runs.
	_, err := run(t, `
program P {
    grid(5, 5);
    var b: bool;
    b = false and (1 / 0);
}
`, nil)
	var divErr *DivisionByZeroError
	require.ErrorAs(t, err, &divErr)
}

func TestRun_LogicalAndRelationalResults(t *testing.T) {
	// Relational operators are only legal in condition position, so
	// their results are observed through control flow.
	i, err := run(t, `
program P {
    grid(5, 5);
    var a: bool = true and false;
    var b: bool = true or false;
    var c: bool = not true;
    var d: bool;
    var e: bool;
    var f: bool;
    if (3 == 3) { d = true; }
    if (3 != 3) { e = true; }
    if (2 <= 2) { f = true; }
}
`, nil)
	require.NoError(t, err)
	assert.Equal(t, false, value(t, i, "a"))
	assert.Equal(t, true, value(t, i, "b"))
	assert.Equal(t, false, value(t, i, "c"))
	assert.Equal(t, true, value(t, i, "d"))
	assert.Equal(t, false, value(t, i, "e"))
	assert.Equal(t, true, value(t, i, "f"))
}

func TestRun_ChainedAdditionDropsThirdOperand(t *testing.T) {
	// Pinned flattening behavior: the converter keeps only the first
	// two operands of a like-precedence chain, so this yields 3.
	i, err := run(t, `
program P {
    grid(5, 5);
    var x: int = 1 + 2 + 3;
}
`, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, value(t, i, "x"))
}

func TestRun_ArithmeticTypeMismatch(t *testing.T) {
	_, err := run(t, `
program P {
    grid(5, 5);
    var x: int = true + 1;
}
`, nil)
	var opErr *OperandError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "+", opErr.Op)
}

func TestRun_RelationalRequiresIntegers(t *testing.T) {
	// Direction values are strings and have no defined ordering.
	_, err := run(t, `
program P {
    grid(5, 5);
    var d: direction;
    var b: bool;
    if (d < "south") { b = true; }
}
`, nil)
	var opErr *OperandError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "<", opErr.Op)
}

func TestRun_TraceOutput(t *testing.T) {
	var buf strings.Builder
	grid := world.NewEmpty(2, 2)

	_, err := run(t, `
program P {
    grid(2, 2);
    var steps: int = 1;
    turnRight;
}
`, grid, WithTrace(&buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[VAR] steps : int = 1")
	assert.Contains(t, out, "[ACTION] turnRight")
}

func TestRun_NilProgram(t *testing.T) {
	err := New(nil).Run(nil)
	var unknown *UnknownNodeError
	require.ErrorAs(t, err, &unknown)
}
