package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hassan/cleanworld/internal/parser"
)

// Converter flattens a concrete syntax tree into an AST. It walks the CST
// positionally, relying on the fixed child layout the parser guarantees per
// node type, and discards punctuation and keyword terminals.
type Converter struct {
	// FoldTails selects how chained same-precedence operators are handled.
	//
	// The parser emits right-recursive operator tails. With FoldTails false
	// only the immediate tail is consulted: a tail's own nested tail is
	// dropped, so `a + b + c` converts to just `a + b`. With FoldTails true
	// the whole chain folds into a left-associative binary tree.
	FoldTails bool
}

// ConvertError reports a CST shape the converter cannot walk. It indicates
// a malformed tree, not invalid user input: the parser only produces trees
// the converter accepts.
type ConvertError struct {
	NodeType string
	Reason   string
}

// Error implements the error interface.
func (e *ConvertError) Error() string {
	return fmt.Sprintf("cannot convert %s node: %s", e.NodeType, e.Reason)
}

// Convert builds the AST for a parsed program.
func (c *Converter) Convert(cst *parser.CSTNode) (*Program, error) {
	if cst == nil || cst.Type != parser.NodeProgram {
		return nil, &ConvertError{NodeType: nodeType(cst), Reason: "expected PROGRAM root"}
	}
	if len(cst.Children) != 7 {
		return nil, &ConvertError{NodeType: cst.Type, Reason: "wrong child count"}
	}

	// Children: [program, ID, '{', WORLD_DEF, DECLARATIONS, STATEMENTS, '}']
	prog := &Program{Name: cst.Child(1).Value}

	world, err := c.convertWorldDef(cst.Child(3))
	if err != nil {
		return nil, err
	}
	prog.World = world

	for _, decl := range cst.Child(4).Children {
		stmt, err := c.convertDeclaration(decl)
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	for _, stmtCST := range cst.Child(5).Children {
		stmt, err := c.convertStatement(stmtCST)
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	return prog, nil
}

// convertWorldDef extracts the declared grid dimensions.
// Children: [grid, '(', INT, ',', INT, ')', ';']
func (c *Converter) convertWorldDef(node *parser.CSTNode) (*WorldDef, error) {
	if node == nil || len(node.Children) != 7 {
		return nil, &ConvertError{NodeType: nodeType(node), Reason: "malformed world definition"}
	}
	width, err := strconv.Atoi(node.Child(2).Value)
	if err != nil {
		return nil, &ConvertError{NodeType: node.Type, Reason: "non-integer width"}
	}
	height, err := strconv.Atoi(node.Child(4).Value)
	if err != nil {
		return nil, &ConvertError{NodeType: node.Type, Reason: "non-integer height"}
	}
	return &WorldDef{Width: width, Height: height}, nil
}

// convertDeclaration converts a const or var declaration.
// const children: [const, ID, ':', TYPE, '=', EXPRESSION, ';']
// var children:   [var, ID, ':', TYPE, VAR_TAIL]
func (c *Converter) convertDeclaration(node *parser.CSTNode) (Stmt, error) {
	if node == nil || len(node.Children) < 5 {
		return nil, &ConvertError{NodeType: nodeType(node), Reason: "malformed declaration"}
	}

	name := node.Child(1).Value
	varType := VarType(node.Child(3).Child(0).Value)

	if node.Child(0).Value == "const" {
		value, err := c.flatten(node.Child(5))
		if err != nil {
			return nil, err
		}
		return &ConstDecl{Name: name, VarType: varType, Value: value}, nil
	}

	// var: an initializer is present when the tail is ['=', EXPRESSION, ';']
	tail := node.Child(4)
	var init Expr
	if len(tail.Children) > 1 {
		var err error
		init, err = c.flatten(tail.Child(1))
		if err != nil {
			return nil, err
		}
	}
	return &VarDecl{Name: name, VarType: varType, Init: init}, nil
}

// convertStatement dispatches on the CST node tag.
func (c *Converter) convertStatement(node *parser.CSTNode) (Stmt, error) {
	switch nodeType(node) {
	case parser.NodeAssignment:
		return c.convertAssignment(node)
	case parser.NodeIfStatement:
		return c.convertIf(node)
	case parser.NodeWhileStmt:
		return c.convertWhile(node)
	case parser.NodeAction:
		return c.convertAction(node)
	case parser.NodeBlock:
		body, err := c.convertBlock(node)
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Body: body}, nil
	default:
		return nil, &ConvertError{NodeType: nodeType(node), Reason: "not a statement"}
	}
}

// convertAssignment converts an assignment.
// Children: [ID, '=', EXPRESSION, ';']
func (c *Converter) convertAssignment(node *parser.CSTNode) (Stmt, error) {
	if len(node.Children) != 4 {
		return nil, &ConvertError{NodeType: node.Type, Reason: "wrong child count"}
	}
	value, err := c.flatten(node.Child(2))
	if err != nil {
		return nil, err
	}
	return &Assign{Target: node.Child(0).Value, Value: value}, nil
}

// convertIf converts an if statement.
// Children: [if, '(', CONDITION, ')', BLOCK, ELSE_PART]
func (c *Converter) convertIf(node *parser.CSTNode) (Stmt, error) {
	if len(node.Children) != 6 {
		return nil, &ConvertError{NodeType: node.Type, Reason: "wrong child count"}
	}
	test, err := c.convertCondition(node.Child(2))
	if err != nil {
		return nil, err
	}
	consequent, err := c.convertBlock(node.Child(4))
	if err != nil {
		return nil, err
	}

	var alternate []Stmt
	if elsePart := node.Child(5); !elsePart.Empty() {
		// ELSE_PART children: [else, BLOCK]
		alternate, err = c.convertBlock(elsePart.Child(1))
		if err != nil {
			return nil, err
		}
		if alternate == nil {
			alternate = []Stmt{}
		}
	}
	return &IfStmt{Test: test, Consequent: consequent, Alternate: alternate}, nil
}

// convertWhile converts a while statement.
// Children: [while, '(', CONDITION, ')', BLOCK]
func (c *Converter) convertWhile(node *parser.CSTNode) (Stmt, error) {
	if len(node.Children) != 5 {
		return nil, &ConvertError{NodeType: node.Type, Reason: "wrong child count"}
	}
	test, err := c.convertCondition(node.Child(2))
	if err != nil {
		return nil, err
	}
	body, err := c.convertBlock(node.Child(4))
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Test: test, Body: body}, nil
}

// convertAction converts an action statement.
// Children: [ACTION_KEYWORD, ';']
func (c *Converter) convertAction(node *parser.CSTNode) (Stmt, error) {
	action, ok := ParseAction(node.Child(0).Value)
	if !ok {
		return nil, &ConvertError{NodeType: node.Type, Reason: "unknown action " + node.Child(0).Value}
	}
	return &ActionStmt{Action: action}, nil
}

// convertBlock converts a block's statement list.
// Children: ['{', STATEMENTS, '}']
func (c *Converter) convertBlock(node *parser.CSTNode) ([]Stmt, error) {
	if node == nil || len(node.Children) < 2 {
		return nil, &ConvertError{NodeType: nodeType(node), Reason: "malformed block"}
	}
	var stmts []Stmt
	for _, child := range node.Child(1).Children {
		stmt, err := c.convertStatement(child)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// convertCondition converts a condition: a bare expression, or a relational
// comparison when the tail is present.
// Children: [EXPRESSION, CONDITION_TAIL]; tail children: [REL_OP, EXPRESSION]
func (c *Converter) convertCondition(node *parser.CSTNode) (Expr, error) {
	left, err := c.flatten(node.Child(0))
	if err != nil {
		return nil, err
	}
	tail := node.Child(1)
	if tail == nil || tail.Empty() {
		return left, nil
	}
	op := tail.Child(0).Child(0).Value
	right, err := c.flatten(tail.Child(1))
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Op: op, Left: left, Right: right}, nil
}

// flatten rebuilds an expression from the right-recursive CST chain.
//
// The base case is a FACTOR: a literal, an identifier (sense and dirt stay
// identifiers and get their meaning at runtime), a parenthesized expression,
// or a unary not carried as a BinaryExpr with a nil Right.
//
// Composite nodes (EXPRESSION, TERM) flatten their first child and then
// consult the operator tail; see FoldTails for how much of the chain is
// honored.
func (c *Converter) flatten(node *parser.CSTNode) (Expr, error) {
	if node == nil {
		return nil, &ConvertError{NodeType: "nil", Reason: "missing expression node"}
	}

	if node.Type == parser.NodeFactor {
		child := node.Child(0)
		switch nodeType(child) {
		case parser.NodeLiteral:
			return literalValue(child.Child(0).Value), nil
		case parser.NodeTerminal:
			switch child.Value {
			case "(":
				// Children: ['(', EXPRESSION, ')']
				return c.flatten(node.Child(1))
			case "not":
				operand, err := c.flatten(node.Child(1))
				if err != nil {
					return nil, err
				}
				return &BinaryExpr{Op: "not", Left: operand}, nil
			default:
				// Plain identifiers, plus the reserved sense and dirt.
				return &Identifier{Name: child.Value}, nil
			}
		default:
			return nil, &ConvertError{NodeType: nodeType(child), Reason: "unexpected factor child"}
		}
	}

	if len(node.Children) == 0 {
		return nil, &ConvertError{NodeType: node.Type, Reason: "empty expression node"}
	}

	left, err := c.flatten(node.Child(0))
	if err != nil {
		return nil, err
	}

	tail := node.Child(1)
	if tail == nil || tail.Empty() {
		return left, nil
	}

	// Tail children: [OP_NODE, operand, nested tail]
	op := tail.Child(0).Child(0).Value
	right, err := c.flatten(tail.Child(1))
	if err != nil {
		return nil, err
	}
	expr := &BinaryExpr{Op: op, Left: left, Right: right}

	if !c.FoldTails {
		// The nested tail is never consulted, so any further chained
		// operators at this precedence level are dropped.
		return expr, nil
	}

	for nested := tail.Child(2); nested != nil && !nested.Empty(); nested = nested.Child(2) {
		op := nested.Child(0).Child(0).Value
		operand, err := c.flatten(nested.Child(1))
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: operand}
	}
	return expr, nil
}

// literalValue interprets a literal lexeme: digit runs become ints,
// true/false become bools, quoted strings lose their quotes, and anything
// else (direction literals) stays a string.
func literalValue(lexeme string) *Literal {
	if n, err := strconv.Atoi(lexeme); err == nil {
		return &Literal{Value: n}
	}
	switch lexeme {
	case "true":
		return &Literal{Value: true}
	case "false":
		return &Literal{Value: false}
	}
	if strings.HasPrefix(lexeme, `"`) && strings.HasSuffix(lexeme, `"`) && len(lexeme) >= 2 {
		return &Literal{Value: lexeme[1 : len(lexeme)-1]}
	}
	return &Literal{Value: lexeme}
}

// nodeType returns a node's tag, tolerating nil for error reporting.
func nodeType(node *parser.CSTNode) string {
	if node == nil {
		return "nil"
	}
	return node.Type
}
