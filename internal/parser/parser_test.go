package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/cleanworld/internal/lexer"
)

func parseSource(t *testing.T, source string) *CSTNode {
	t.Helper()
	tokens, errs := lexer.New(source).Scan()
	require.Empty(t, errs, "lexical errors in test source")
	cst, err := New(tokens).ParseProgram()
	require.NoError(t, err)
	return cst
}

const minimalProgram = `
program Cleaner {
    grid(5, 5);
}
`

func TestParser_ProgramLayout(t *testing.T) {
	cst := parseSource(t, minimalProgram)

	// program := PROGRAM ID '{' worldDef declarations statements '}'
	require.Equal(t, NodeProgram, cst.Type)
	require.Len(t, cst.Children, 7)
	assert.Equal(t, "program", cst.Child(0).Value)
	assert.Equal(t, "Cleaner", cst.Child(1).Value)
	assert.Equal(t, "{", cst.Child(2).Value)
	assert.Equal(t, NodeWorldDef, cst.Child(3).Type)
	assert.Equal(t, NodeDeclarations, cst.Child(4).Type)
	assert.Equal(t, NodeStatements, cst.Child(5).Type)
	assert.Equal(t, "}", cst.Child(6).Value)
}

func TestParser_WorldDefLayout(t *testing.T) {
	cst := parseSource(t, "program P { grid(3, 4); }")

	world := cst.Child(3)
	require.Len(t, world.Children, 7)
	assert.Equal(t, "3", world.Child(2).Value)
	assert.Equal(t, "4", world.Child(4).Value)
}

func TestParser_Declarations(t *testing.T) {
	cst := parseSource(t, `
program P {
    grid(5, 5);
    const limit: int = 3;
    var steps: int;
    var done: bool = false;
    var heading: direction;
}
`)

	decls := cst.Child(4)
	require.Len(t, decls.Children, 4)

	// const declaration: CONST ID ':' TYPE '=' EXPRESSION ';'
	constDecl := decls.Child(0)
	require.Len(t, constDecl.Children, 7)
	assert.Equal(t, "const", constDecl.Child(0).Value)
	assert.Equal(t, "limit", constDecl.Child(1).Value)
	assert.Equal(t, NodeType, constDecl.Child(3).Type)
	assert.Equal(t, NodeExpression, constDecl.Child(5).Type)

	// var without initializer: VAR ID ':' TYPE VAR_TAIL, tail = [';']
	varDecl := decls.Child(1)
	require.Len(t, varDecl.Children, 5)
	tail := varDecl.Child(4)
	require.Equal(t, NodeVarTail, tail.Type)
	require.Len(t, tail.Children, 1)

	// var with initializer: tail = ['=', EXPRESSION, ';']
	initDecl := decls.Child(2)
	initTail := initDecl.Child(4)
	require.Len(t, initTail.Children, 3)
	assert.Equal(t, NodeExpression, initTail.Child(1).Type)
}

func TestParser_IfElseLayout(t *testing.T) {
	cst := parseSource(t, `
program P {
    grid(5, 5);
    if (sense) { clean; } else { move; }
    if (sense) { clean; }
}
`)

	stmts := cst.Child(5)
	require.Len(t, stmts.Children, 2)

	withElse := stmts.Child(0)
	require.Equal(t, NodeIfStatement, withElse.Type)
	require.Len(t, withElse.Children, 6)
	assert.Equal(t, NodeCondition, withElse.Child(2).Type)
	assert.Equal(t, NodeBlock, withElse.Child(4).Type)
	elsePart := withElse.Child(5)
	require.Equal(t, NodeElsePart, elsePart.Type)
	require.Len(t, elsePart.Children, 2)

	// A missing else still yields an empty ELSE_PART placeholder.
	withoutElse := stmts.Child(1)
	require.Len(t, withoutElse.Children, 6)
	assert.True(t, withoutElse.Child(5).Empty())
}

func TestParser_WhileLayout(t *testing.T) {
	cst := parseSource(t, `
program P {
    grid(5, 5);
    while (sense) { clean; }
}
`)

	loop := cst.Child(5).Child(0)
	require.Equal(t, NodeWhileStmt, loop.Type)
	require.Len(t, loop.Children, 5)
	assert.Equal(t, NodeCondition, loop.Child(2).Type)
	assert.Equal(t, NodeBlock, loop.Child(4).Type)
}

func TestParser_ExpressionTailChain(t *testing.T) {
	cst := parseSource(t, `
program P {
    grid(5, 5);
    var x: int = 1 + 2 + 3;
}
`)

	expr := cst.Child(4).Child(0).Child(4).Child(1)
	require.Equal(t, NodeExpression, expr.Type)
	require.Len(t, expr.Children, 2)

	// The additive tail is right-recursive: the first tail holds the
	// second too. A tail with no further operator is an empty placeholder.
	tail := expr.Child(1)
	require.Equal(t, NodeExprTail, tail.Type)
	require.Len(t, tail.Children, 3)
	assert.Equal(t, NodeAddOp, tail.Child(0).Type)
	assert.Equal(t, NodeTerm, tail.Child(1).Type)

	nested := tail.Child(2)
	require.Len(t, nested.Children, 3)
	assert.True(t, nested.Child(2).Empty())
}

func TestParser_ConditionTail(t *testing.T) {
	cst := parseSource(t, `
program P {
    grid(5, 5);
    while (x < 10) { move; }
}
`)

	cond := cst.Child(5).Child(0).Child(2)
	require.Len(t, cond.Children, 2)
	tail := cond.Child(1)
	require.Equal(t, NodeConditionTail, tail.Type)
	require.Len(t, tail.Children, 2)
	assert.Equal(t, "<", tail.Child(0).Child(0).Value)
}

func TestParser_FactorForms(t *testing.T) {
	cst := parseSource(t, `
program P {
    grid(5, 5);
    var a: bool = not sense;
    var b: int = (1 + 2) * 3;
}
`)

	decls := cst.Child(4)

	// not factor
	notFactor := decls.Child(0).Child(4).Child(1).Child(0).Child(0)
	require.Equal(t, NodeFactor, notFactor.Type)
	require.Len(t, notFactor.Children, 2)
	assert.Equal(t, "not", notFactor.Child(0).Value)
	assert.Equal(t, NodeFactor, notFactor.Child(1).Type)

	// parenthesized expression
	parenFactor := decls.Child(1).Child(4).Child(1).Child(0).Child(0)
	require.Len(t, parenFactor.Children, 3)
	assert.Equal(t, "(", parenFactor.Child(0).Value)
	assert.Equal(t, NodeExpression, parenFactor.Child(1).Type)
}

func TestParser_SyntaxErrorCarriesExpectedAndActual(t *testing.T) {
	tokens, _ := lexer.New("program Cleaner grid(5, 5); }").Scan()
	_, err := New(tokens).ParseProgram()
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, "LBRACE", synErr.Expected)
	require.NotNil(t, synErr.Got)
	assert.Equal(t, lexer.TokenGrid, synErr.Got.Type)
	assert.Contains(t, err.Error(), "expected LBRACE")
}

func TestParser_UnexpectedEOF(t *testing.T) {
	tokens, _ := lexer.New("program Cleaner {").Scan()
	_, err := New(tokens).ParseProgram()
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Nil(t, synErr.Got)
	assert.Contains(t, err.Error(), "found EOF")
}

func TestParser_AbortsOnFirstError(t *testing.T) {
	// The declaration is malformed; the parser must not produce a tree.
	tokens, _ := lexer.New(`
program P {
    grid(5, 5);
    const x int = 5;
}
`).Scan()
	cst, err := New(tokens).ParseProgram()
	assert.Nil(t, cst)
	require.Error(t, err)
}

func TestParser_TrailingInputRejected(t *testing.T) {
	tokens, _ := lexer.New("program P { grid(5, 5); } move;").Scan()
	_, err := New(tokens).ParseProgram()
	require.Error(t, err)
}
