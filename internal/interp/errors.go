package interp

import "fmt"

// UndefinedVariableError reports a read or write of a name that was
// never bound.
type UndefinedVariableError struct {
	Name string
}

// Error implements the error interface.
func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s", e.Name)
}

// ConstAssignmentError reports an assignment to a constant binding.
type ConstAssignmentError struct {
	Name string
}

// Error implements the error interface.
func (e *ConstAssignmentError) Error() string {
	return fmt.Sprintf("cannot assign to constant: %s", e.Name)
}

// DivisionByZeroError reports a zero divisor.
type DivisionByZeroError struct{}

// Error implements the error interface.
func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// InfiniteLoopError reports a while loop that exceeded the iteration
// cap, the only runaway-execution guard.
type InfiniteLoopError struct {
	Limit int
}

// Error implements the error interface.
func (e *InfiniteLoopError) Error() string {
	return fmt.Sprintf("infinite loop detected (exceeded %d iterations)", e.Limit)
}

// GridNotInitializedError reports an agent action run without a grid.
// The grid is provisioned by the caller, never by the program source.
type GridNotInitializedError struct{}

// Error implements the error interface.
func (e *GridNotInitializedError) Error() string {
	return "grid not initialized"
}

// ReservedIdentifierError reports a read of a reserved name that has no
// value, currently only dirt.
type ReservedIdentifierError struct {
	Name string
}

// Error implements the error interface.
func (e *ReservedIdentifierError) Error() string {
	return fmt.Sprintf("%q is not a readable identifier", e.Name)
}

// OperandError reports operands an operator cannot apply to.
type OperandError struct {
	Op     string
	Reason string
}

// Error implements the error interface.
func (e *OperandError) Error() string {
	return fmt.Sprintf("invalid operands for %q: %s", e.Op, e.Reason)
}

// UnknownNodeError reports an AST shape the interpreter cannot execute.
// The sealed node set makes this unreachable for converter-built trees;
// it guards hand-built ones.
type UnknownNodeError struct {
	Kind string
}

// Error implements the error interface.
func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node kind: %s", e.Kind)
}
