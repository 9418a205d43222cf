// Package ast defines the abstract syntax tree for CleanWorld programs and
// the converter that builds it from the parser's concrete syntax tree.
//
// The node set is a closed tagged union: Stmt and Expr are sealed by
// unexported marker methods, so every consumer can switch exhaustively over
// the known node kinds. Unknown kinds are unrepresentable here; the
// interpreter still guards defensively against hand-built trees.
package ast

// Stmt is a statement node. The marker method seals the set of statement
// kinds to the types defined in this package.
type Stmt interface {
	stmtNode()
}

// Expr is an expression node, sealed like Stmt.
type Expr interface {
	exprNode()
}

// VarType is a declared variable type. Typing in CleanWorld is advisory
// metadata: the analyzer records it, the interpreter uses it only to pick
// defaults for uninitialized variables.
type VarType string

const (
	TypeInt       VarType = "int"
	TypeBool      VarType = "bool"
	TypeDirection VarType = "direction"
)

// Action is a built-in agent operation. Actions take no arguments.
type Action int

const (
	ActionMove Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionClean
	ActionSense
)

// String returns the action's source-level spelling.
func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionTurnLeft:
		return "turnLeft"
	case ActionTurnRight:
		return "turnRight"
	case ActionClean:
		return "clean"
	case ActionSense:
		return "sense"
	default:
		return "unknown"
	}
}

// ParseAction maps a source spelling to an Action.
func ParseAction(word string) (Action, bool) {
	switch word {
	case "move":
		return ActionMove, true
	case "turnLeft":
		return ActionTurnLeft, true
	case "turnRight":
		return ActionTurnRight, true
	case "clean":
		return ActionClean, true
	case "sense":
		return ActionSense, true
	}
	return 0, false
}

// Program is the root of the AST. Body interleaves declarations and
// statements in source order; declarations always come first because the
// grammar requires it.
type Program struct {
	// Name is the program identifier.
	Name string

	// World records the dimensions declared by the grid(w, h) clause.
	// The interpreter does not consume it: grid provisioning is the
	// caller's responsibility.
	World *WorldDef

	// Body is the flattened declaration and statement list.
	Body []Stmt
}

// WorldDef is the parsed world-definition clause.
type WorldDef struct {
	Width  int
	Height int
}

// ConstDecl declares an immutable binding. The initializer is mandatory.
type ConstDecl struct {
	Name    string
	VarType VarType
	Value   Expr
}

// VarDecl declares a mutable binding. Init may be nil; the interpreter then
// applies the declared type's default at execution time.
type VarDecl struct {
	Name    string
	VarType VarType
	Init    Expr
}

// Assign assigns a new value to an existing binding.
type Assign struct {
	Target string
	Value  Expr
}

// IfStmt executes Consequent when Test is true, otherwise Alternate.
// Alternate is nil when the source had no else clause.
type IfStmt struct {
	Test       Expr
	Consequent []Stmt
	Alternate  []Stmt
}

// WhileStmt re-evaluates Test before each iteration of Body.
type WhileStmt struct {
	Test Expr
	Body []Stmt
}

// ActionStmt performs a built-in agent action.
type ActionStmt struct {
	Action Action
}

// BlockStmt is a bare braced statement list used in statement position.
// It introduces no bindings of its own (declarations are only legal at the
// top of a program), so execution just runs the body in order.
type BlockStmt struct {
	Body []Stmt
}

// BinaryExpr applies an operator to one or two operands. Right is nil only
// for the unary not, which carries its operand in Left.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

// Identifier references a binding by name. The reserved names sense and
// dirt are represented as identifiers and given special meaning by the
// interpreter.
type Identifier struct {
	Name string
}

// Literal is a constant value: int, bool, or string (direction and string
// literals both carry strings; string literals are stored without quotes).
type Literal struct {
	Value interface{}
}

func (*ConstDecl) stmtNode()  {}
func (*VarDecl) stmtNode()    {}
func (*Assign) stmtNode()     {}
func (*IfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()  {}
func (*ActionStmt) stmtNode() {}
func (*BlockStmt) stmtNode()  {}

func (*BinaryExpr) exprNode() {}
func (*Identifier) exprNode() {}
func (*Literal) exprNode()    {}
