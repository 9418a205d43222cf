package interp

import (
	"fmt"
	"io"

	"github.com/hassan/cleanworld/internal/ast"
	"github.com/hassan/cleanworld/internal/world"
)

// DefaultMaxIterations caps each while loop. A loop that starts
// iteration DefaultMaxIterations+1 aborts with InfiniteLoopError.
const DefaultMaxIterations = 10000

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithMaxIterations overrides the while-loop iteration cap.
func WithMaxIterations(n int) Option {
	return func(i *Interpreter) { i.maxIterations = n }
}

// WithTrace writes a line per executed statement to w.
func WithTrace(w io.Writer) Option {
	return func(i *Interpreter) { i.trace = w }
}

// Interpreter executes one program run. State is created at run start
// and discarded afterward; runs share nothing.
type Interpreter struct {
	env           *Environment
	grid          *world.GridWorld
	consts        map[string]struct{}
	maxIterations int
	trace         io.Writer
}

// New creates an interpreter over a caller-provisioned grid. The grid
// may be nil, in which case any agent action fails.
func New(grid *world.GridWorld, opts ...Option) *Interpreter {
	i := &Interpreter{
		env:           NewEnvironment(nil),
		grid:          grid,
		consts:        make(map[string]struct{}),
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Grid exposes the world so callers can report final state.
func (i *Interpreter) Grid() *world.GridWorld {
	return i.grid
}

// Run executes the program body in order, stopping at the first error.
func (i *Interpreter) Run(prog *ast.Program) error {
	if prog == nil {
		return &UnknownNodeError{Kind: "nil program"}
	}
	return i.execBody(prog.Body)
}

func (i *Interpreter) execBody(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return i.execVarDecl(s)
	case *ast.ConstDecl:
		return i.execConstDecl(s)
	case *ast.Assign:
		return i.execAssign(s)
	case *ast.IfStmt:
		return i.execIf(s)
	case *ast.WhileStmt:
		return i.execWhile(s)
	case *ast.ActionStmt:
		return i.execAction(s)
	case *ast.BlockStmt:
		return i.execBody(s.Body)
	default:
		return &UnknownNodeError{Kind: fmt.Sprintf("%T", stmt)}
	}
}

func (i *Interpreter) execVarDecl(s *ast.VarDecl) error {
	var value interface{}
	if s.Init != nil {
		v, err := i.eval(s.Init)
		if err != nil {
			return err
		}
		value = v
	} else {
		value = typeDefault(s.VarType)
	}
	i.env.Define(s.Name, value)
	i.tracef("[VAR] %s : %s = %v", s.Name, s.VarType, value)
	return nil
}

func (i *Interpreter) execConstDecl(s *ast.ConstDecl) error {
	value, err := i.eval(s.Value)
	if err != nil {
		return err
	}
	i.env.Define(s.Name, value)
	i.consts[s.Name] = struct{}{}
	i.tracef("[CONST] %s : %s = %v", s.Name, s.VarType, value)
	return nil
}

func (i *Interpreter) execAssign(s *ast.Assign) error {
	if _, ok := i.consts[s.Target]; ok {
		return &ConstAssignmentError{Name: s.Target}
	}
	value, err := i.eval(s.Value)
	if err != nil {
		return err
	}
	if err := i.env.Set(s.Target, value); err != nil {
		return err
	}
	i.tracef("[ASSIGN] %s = %v", s.Target, value)
	return nil
}

func (i *Interpreter) execIf(s *ast.IfStmt) error {
	test, err := i.eval(s.Test)
	if err != nil {
		return err
	}
	i.tracef("[IF] condition = %v", test)
	if truthy(test) {
		return i.execBody(s.Consequent)
	}
	return i.execBody(s.Alternate)
}

func (i *Interpreter) execWhile(s *ast.WhileStmt) error {
	iteration := 0
	for {
		test, err := i.eval(s.Test)
		if err != nil {
			return err
		}
		if !truthy(test) {
			return nil
		}
		iteration++
		if iteration > i.maxIterations {
			return &InfiniteLoopError{Limit: i.maxIterations}
		}
		i.tracef("[WHILE] iteration %d", iteration)
		if err := i.execBody(s.Body); err != nil {
			return err
		}
	}
}

func (i *Interpreter) execAction(s *ast.ActionStmt) error {
	if i.grid == nil {
		return &GridNotInitializedError{}
	}
	i.tracef("[ACTION] %s", s.Action)

	switch s.Action {
	case ast.ActionMove:
		return i.grid.Move()
	case ast.ActionTurnLeft:
		i.grid.TurnLeft()
	case ast.ActionTurnRight:
		i.grid.TurnRight()
	case ast.ActionClean:
		i.grid.Clean()
	case ast.ActionSense:
		// Legal in statement position; the result is discarded.
		i.tracef("  -> sense() = %v", i.grid.Sense())
	default:
		return &UnknownNodeError{Kind: "action " + s.Action.String()}
	}
	return nil
}

func (i *Interpreter) eval(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Identifier:
		return i.evalIdentifier(e)
	case *ast.BinaryExpr:
		return i.evalBinary(e)
	case nil:
		return nil, &UnknownNodeError{Kind: "nil expression"}
	default:
		return nil, &UnknownNodeError{Kind: fmt.Sprintf("%T", expr)}
	}
}

func (i *Interpreter) evalIdentifier(e *ast.Identifier) (interface{}, error) {
	switch e.Name {
	case "sense":
		if i.grid == nil {
			return nil, &GridNotInitializedError{}
		}
		return i.grid.Sense(), nil
	case "dirt":
		return nil, &ReservedIdentifierError{Name: "dirt"}
	}
	return i.env.Get(e.Name)
}

// evalBinary applies an operator. Both operands are evaluated before
// the operator is, so logical and/or do not short-circuit.
func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (interface{}, error) {
	if e.Op == "not" {
		operand, err := i.eval(e.Left)
		if err != nil {
			return nil, err
		}
		return !truthy(operand), nil
	}

	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "+", "-", "*", "/":
		return evalArithmetic(e.Op, left, right)
	case "==":
		return left == right, nil
	case "!=":
		return left != right, nil
	case "<", "<=", ">", ">=":
		return evalRelational(e.Op, left, right)
	case "and":
		return truthy(left) && truthy(right), nil
	case "or":
		return truthy(left) || truthy(right), nil
	default:
		return nil, &UnknownNodeError{Kind: "operator " + e.Op}
	}
}

func evalArithmetic(op string, left, right interface{}) (interface{}, error) {
	a, aok := left.(int)
	b, bok := right.(int)
	if !aok || !bok {
		return nil, &OperandError{Op: op, Reason: "expected integers"}
	}
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	default:
		if b == 0 {
			return nil, &DivisionByZeroError{}
		}
		return floorDiv(a, b), nil
	}
}

func evalRelational(op string, left, right interface{}) (interface{}, error) {
	a, aok := left.(int)
	b, bok := right.(int)
	if !aok || !bok {
		return nil, &OperandError{Op: op, Reason: "expected integers"}
	}
	switch op {
	case "<":
		return a < b, nil
	case "<=":
		return a <= b, nil
	case ">":
		return a > b, nil
	default:
		return a >= b, nil
	}
}

// floorDiv rounds toward negative infinity, so -7/2 is -4.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// truthy converts a value for use as a condition: false, 0, and the
// empty string are false, everything else true.
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case int:
		return val != 0
	case string:
		return val != ""
	case nil:
		return false
	default:
		return true
	}
}

// typeDefault picks the value of an uninitialized var by declared type.
func typeDefault(t ast.VarType) interface{} {
	switch t {
	case ast.TypeInt:
		return 0
	case ast.TypeBool:
		return false
	case ast.TypeDirection:
		return "north"
	default:
		return nil
	}
}

func (i *Interpreter) tracef(format string, args ...interface{}) {
	if i.trace == nil {
		return
	}
	fmt.Fprintf(i.trace, format+"\n", args...)
}
