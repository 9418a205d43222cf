// Package parser implements a predictive recursive-descent parser for
// CleanWorld. One function per grammar non-terminal, dispatching on the next
// token's type (the grammar is LL(1)). The parser produces a concrete syntax
// tree that retains every terminal and placeholder nodes for absent optional
// parts; the ast package flattens it afterwards.
//
// Binary-expression productions are right-recursive tail rules
// (term_tail := op factor term_tail | epsilon) to stay LL(1). Rebuilding
// binary trees from the tail chains is the converter's job, not the parser's.
//
// A token mismatch is unrecoverable: parsing aborts on the first syntax
// error with no partial tree.
package parser

import (
	"fmt"

	"github.com/hassan/cleanworld/internal/lexer"
)

// SyntaxError is a fatal parse error: the parser expected one thing and saw
// another. Got is nil when the input ended early.
type SyntaxError struct {
	// Expected describes the expected token type or construct.
	Expected string

	// Got is the offending token, nil at end of input.
	Got *lexer.Token
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("syntax error: expected %s but found EOF", e.Expected)
	}
	return fmt.Sprintf("syntax error at line %d: expected %s but found %s",
		e.Got.Line, e.Expected, e.Got)
}

// Parser consumes a token stream and builds a CST.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a parser over a scanned token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// current returns the token under examination, nil at end of input.
func (p *Parser) current() *lexer.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

// peek returns the type of the current token, or TokenEOF at end of input.
func (p *Parser) peek() lexer.TokenType {
	if tok := p.current(); tok != nil {
		return tok.Type
	}
	return lexer.TokenEOF
}

// eat consumes the current token if it has the expected type and returns a
// terminal node for it. Any mismatch is fatal.
func (p *Parser) eat(tt lexer.TokenType) (*CSTNode, error) {
	tok := p.current()
	if tok == nil || tok.Type != tt {
		return nil, &SyntaxError{Expected: tt.String(), Got: tok}
	}
	p.pos++
	return NewTerminal(tok.Lexeme), nil
}

// ParseProgram parses a complete program.
//
// Grammar:
//
//	program := PROGRAM ID '{' worldDef declarations statements '}'
func (p *Parser) ParseProgram() (*CSTNode, error) {
	root := NewNode(NodeProgram)

	for _, tt := range []lexer.TokenType{lexer.TokenProgram, lexer.TokenIdentifier, lexer.TokenLBrace} {
		child, err := p.eat(tt)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	}

	world, err := p.parseWorldDef()
	if err != nil {
		return nil, err
	}
	root.AddChild(world)

	decls, err := p.parseDeclarations()
	if err != nil {
		return nil, err
	}
	root.AddChild(decls)

	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	root.AddChild(stmts)

	rbrace, err := p.eat(lexer.TokenRBrace)
	if err != nil {
		return nil, err
	}
	root.AddChild(rbrace)

	if tok := p.current(); tok != nil {
		return nil, &SyntaxError{Expected: "EOF", Got: tok}
	}
	return root, nil
}

// parseWorldDef parses the world definition clause.
//
//	worldDef := GRID '(' INT ',' INT ')' ';'
func (p *Parser) parseWorldDef() (*CSTNode, error) {
	node := NewNode(NodeWorldDef)
	seq := []lexer.TokenType{
		lexer.TokenGrid, lexer.TokenLParen, lexer.TokenIntLit,
		lexer.TokenComma, lexer.TokenIntLit, lexer.TokenRParen,
		lexer.TokenSemicolon,
	}
	for _, tt := range seq {
		child, err := p.eat(tt)
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}

// parseDeclarations parses zero or more declarations.
func (p *Parser) parseDeclarations() (*CSTNode, error) {
	node := NewNode(NodeDeclarations)
	for p.peek() == lexer.TokenConst || p.peek() == lexer.TokenVar {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		node.AddChild(decl)
	}
	return node, nil
}

// parseDeclaration parses a single const or var declaration.
//
//	declaration := CONST ID ':' type '=' expression ';'
//	             | VAR ID ':' type varTail
func (p *Parser) parseDeclaration() (*CSTNode, error) {
	node := NewNode(NodeDeclaration)

	switch p.peek() {
	case lexer.TokenConst:
		for _, tt := range []lexer.TokenType{lexer.TokenConst, lexer.TokenIdentifier, lexer.TokenColon} {
			child, err := p.eat(tt)
			if err != nil {
				return nil, err
			}
			node.AddChild(child)
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		node.AddChild(typ)

		assign, err := p.eat(lexer.TokenAssign)
		if err != nil {
			return nil, err
		}
		node.AddChild(assign)

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.AddChild(expr)

		semi, err := p.eat(lexer.TokenSemicolon)
		if err != nil {
			return nil, err
		}
		node.AddChild(semi)

	case lexer.TokenVar:
		for _, tt := range []lexer.TokenType{lexer.TokenVar, lexer.TokenIdentifier, lexer.TokenColon} {
			child, err := p.eat(tt)
			if err != nil {
				return nil, err
			}
			node.AddChild(child)
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		node.AddChild(typ)

		tail, err := p.parseVarTail()
		if err != nil {
			return nil, err
		}
		node.AddChild(tail)

	default:
		return nil, &SyntaxError{Expected: "CONST or VAR", Got: p.current()}
	}
	return node, nil
}

// parseVarTail parses the end of a var declaration: either a bare semicolon
// or an initializer.
//
//	varTail := ';' | '=' expression ';'
func (p *Parser) parseVarTail() (*CSTNode, error) {
	node := NewNode(NodeVarTail)
	switch p.peek() {
	case lexer.TokenSemicolon:
		semi, err := p.eat(lexer.TokenSemicolon)
		if err != nil {
			return nil, err
		}
		node.AddChild(semi)
	case lexer.TokenAssign:
		assign, err := p.eat(lexer.TokenAssign)
		if err != nil {
			return nil, err
		}
		node.AddChild(assign)

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.AddChild(expr)

		semi, err := p.eat(lexer.TokenSemicolon)
		if err != nil {
			return nil, err
		}
		node.AddChild(semi)
	default:
		return nil, &SyntaxError{Expected: "SEMICOLON or ASSIGN", Got: p.current()}
	}
	return node, nil
}

// parseType parses a type keyword.
//
//	type := INT | BOOL | DIRECTION
func (p *Parser) parseType() (*CSTNode, error) {
	node := NewNode(NodeType)
	switch tt := p.peek(); tt {
	case lexer.TokenTypeInt, lexer.TokenTypeBool, lexer.TokenTypeDirection:
		child, err := p.eat(tt)
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	default:
		return nil, &SyntaxError{Expected: "type", Got: p.current()}
	}
	return node, nil
}

// parseStatements parses zero or more statements.
func (p *Parser) parseStatements() (*CSTNode, error) {
	node := NewNode(NodeStatements)
	for p.startsStatement() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		node.AddChild(stmt)
	}
	return node, nil
}

// startsStatement reports whether the current token can begin a statement.
func (p *Parser) startsStatement() bool {
	switch tt := p.peek(); {
	case tt == lexer.TokenIdentifier, tt == lexer.TokenIf, tt == lexer.TokenWhile, tt == lexer.TokenLBrace:
		return true
	case tt.IsAction():
		return true
	}
	return false
}

// parseStatement dispatches on the next token's type.
//
//	statement := assignment | ifStmt | whileStmt | block | action
func (p *Parser) parseStatement() (*CSTNode, error) {
	switch tt := p.peek(); {
	case tt == lexer.TokenIdentifier:
		return p.parseAssignment()
	case tt == lexer.TokenIf:
		return p.parseIf()
	case tt == lexer.TokenWhile:
		return p.parseWhile()
	case tt == lexer.TokenLBrace:
		return p.parseBlock()
	case tt.IsAction():
		return p.parseAction()
	default:
		return nil, &SyntaxError{Expected: "statement", Got: p.current()}
	}
}

// parseBlock parses a braced statement list.
//
//	block := '{' statements '}'
func (p *Parser) parseBlock() (*CSTNode, error) {
	node := NewNode(NodeBlock)

	lbrace, err := p.eat(lexer.TokenLBrace)
	if err != nil {
		return nil, err
	}
	node.AddChild(lbrace)

	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	node.AddChild(stmts)

	rbrace, err := p.eat(lexer.TokenRBrace)
	if err != nil {
		return nil, err
	}
	node.AddChild(rbrace)
	return node, nil
}

// parseAssignment parses an assignment statement.
//
//	assignment := ID '=' expression ';'
func (p *Parser) parseAssignment() (*CSTNode, error) {
	node := NewNode(NodeAssignment)

	id, err := p.eat(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}
	node.AddChild(id)

	assign, err := p.eat(lexer.TokenAssign)
	if err != nil {
		return nil, err
	}
	node.AddChild(assign)

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	node.AddChild(expr)

	semi, err := p.eat(lexer.TokenSemicolon)
	if err != nil {
		return nil, err
	}
	node.AddChild(semi)
	return node, nil
}

// parseIf parses an if statement with an optional else part.
//
//	ifStmt := IF '(' condition ')' block elsePart
func (p *Parser) parseIf() (*CSTNode, error) {
	node := NewNode(NodeIfStatement)

	ifTok, err := p.eat(lexer.TokenIf)
	if err != nil {
		return nil, err
	}
	node.AddChild(ifTok)

	lparen, err := p.eat(lexer.TokenLParen)
	if err != nil {
		return nil, err
	}
	node.AddChild(lparen)

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	node.AddChild(cond)

	rparen, err := p.eat(lexer.TokenRParen)
	if err != nil {
		return nil, err
	}
	node.AddChild(rparen)

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.AddChild(block)

	elsePart, err := p.parseElsePart()
	if err != nil {
		return nil, err
	}
	node.AddChild(elsePart)
	return node, nil
}

// parseElsePart parses an optional else clause. When absent, the returned
// ELSE_PART node is an empty placeholder so IF_STATEMENT keeps a fixed
// six-child layout.
//
//	elsePart := ELSE block | epsilon
func (p *Parser) parseElsePart() (*CSTNode, error) {
	node := NewNode(NodeElsePart)
	if p.peek() == lexer.TokenElse {
		elseTok, err := p.eat(lexer.TokenElse)
		if err != nil {
			return nil, err
		}
		node.AddChild(elseTok)

		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.AddChild(block)
	}
	return node, nil
}

// parseWhile parses a while statement.
//
//	whileStmt := WHILE '(' condition ')' block
func (p *Parser) parseWhile() (*CSTNode, error) {
	node := NewNode(NodeWhileStmt)

	whileTok, err := p.eat(lexer.TokenWhile)
	if err != nil {
		return nil, err
	}
	node.AddChild(whileTok)

	lparen, err := p.eat(lexer.TokenLParen)
	if err != nil {
		return nil, err
	}
	node.AddChild(lparen)

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	node.AddChild(cond)

	rparen, err := p.eat(lexer.TokenRParen)
	if err != nil {
		return nil, err
	}
	node.AddChild(rparen)

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.AddChild(block)
	return node, nil
}

// parseAction parses an agent action statement.
//
//	action := (MOVE | TURN_LEFT | TURN_RIGHT | CLEAN | SENSE) ';'
func (p *Parser) parseAction() (*CSTNode, error) {
	node := NewNode(NodeAction)
	tt := p.peek()
	if !tt.IsAction() {
		return nil, &SyntaxError{Expected: "action", Got: p.current()}
	}
	action, err := p.eat(tt)
	if err != nil {
		return nil, err
	}
	node.AddChild(action)

	semi, err := p.eat(lexer.TokenSemicolon)
	if err != nil {
		return nil, err
	}
	node.AddChild(semi)
	return node, nil
}

// parseCondition parses an expression with an optional relational tail.
//
//	condition := expression conditionTail
func (p *Parser) parseCondition() (*CSTNode, error) {
	node := NewNode(NodeCondition)

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	node.AddChild(expr)

	tail, err := p.parseConditionTail()
	if err != nil {
		return nil, err
	}
	node.AddChild(tail)
	return node, nil
}

// parseConditionTail parses an optional relational comparison.
//
//	conditionTail := relOp expression | epsilon
func (p *Parser) parseConditionTail() (*CSTNode, error) {
	node := NewNode(NodeConditionTail)
	if p.peek().IsRelOp() {
		op, err := p.parseRelOp()
		if err != nil {
			return nil, err
		}
		node.AddChild(op)

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.AddChild(expr)
	}
	return node, nil
}

// parseRelOp parses a relational operator.
func (p *Parser) parseRelOp() (*CSTNode, error) {
	node := NewNode(NodeRelOp)
	tt := p.peek()
	if !tt.IsRelOp() {
		return nil, &SyntaxError{Expected: "relational operator", Got: p.current()}
	}
	op, err := p.eat(tt)
	if err != nil {
		return nil, err
	}
	node.AddChild(op)
	return node, nil
}

// parseExpression parses an additive-level expression.
//
//	expression := term exprTail
func (p *Parser) parseExpression() (*CSTNode, error) {
	node := NewNode(NodeExpression)

	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	node.AddChild(term)

	tail, err := p.parseExprTail()
	if err != nil {
		return nil, err
	}
	node.AddChild(tail)
	return node, nil
}

// parseExprTail parses the right-recursive additive tail.
//
//	exprTail := ('+' | '-' | OR) term exprTail | epsilon
func (p *Parser) parseExprTail() (*CSTNode, error) {
	node := NewNode(NodeExprTail)
	switch p.peek() {
	case lexer.TokenPlus, lexer.TokenMinus, lexer.TokenOr:
		op := NewNode(NodeAddOp)
		opTok, err := p.eat(p.peek())
		if err != nil {
			return nil, err
		}
		op.AddChild(opTok)
		node.AddChild(op)

		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node.AddChild(term)

		tail, err := p.parseExprTail()
		if err != nil {
			return nil, err
		}
		node.AddChild(tail)
	}
	return node, nil
}

// parseTerm parses a multiplicative-level expression.
//
//	term := factor termTail
func (p *Parser) parseTerm() (*CSTNode, error) {
	node := NewNode(NodeTerm)

	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	node.AddChild(factor)

	tail, err := p.parseTermTail()
	if err != nil {
		return nil, err
	}
	node.AddChild(tail)
	return node, nil
}

// parseTermTail parses the right-recursive multiplicative tail.
//
//	termTail := ('*' | '/' | AND) factor termTail | epsilon
func (p *Parser) parseTermTail() (*CSTNode, error) {
	node := NewNode(NodeTermTail)
	switch p.peek() {
	case lexer.TokenStar, lexer.TokenSlash, lexer.TokenAnd:
		op := NewNode(NodeMulOp)
		opTok, err := p.eat(p.peek())
		if err != nil {
			return nil, err
		}
		op.AddChild(opTok)
		node.AddChild(op)

		factor, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node.AddChild(factor)

		tail, err := p.parseTermTail()
		if err != nil {
			return nil, err
		}
		node.AddChild(tail)
	}
	return node, nil
}

// parseFactor parses an atomic expression.
//
//	factor := ID | literal | '(' expression ')' | SENSE | NOT factor
func (p *Parser) parseFactor() (*CSTNode, error) {
	node := NewNode(NodeFactor)

	switch tt := p.peek(); {
	case tt == lexer.TokenIdentifier:
		id, err := p.eat(lexer.TokenIdentifier)
		if err != nil {
			return nil, err
		}
		node.AddChild(id)

	case tt.IsLiteral():
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		node.AddChild(lit)

	case tt == lexer.TokenLParen:
		lparen, err := p.eat(lexer.TokenLParen)
		if err != nil {
			return nil, err
		}
		node.AddChild(lparen)

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.AddChild(expr)

		rparen, err := p.eat(lexer.TokenRParen)
		if err != nil {
			return nil, err
		}
		node.AddChild(rparen)

	case tt == lexer.TokenSense:
		sense, err := p.eat(lexer.TokenSense)
		if err != nil {
			return nil, err
		}
		node.AddChild(sense)

	case tt == lexer.TokenNot:
		not, err := p.eat(lexer.TokenNot)
		if err != nil {
			return nil, err
		}
		node.AddChild(not)

		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node.AddChild(operand)

	default:
		return nil, &SyntaxError{Expected: "factor", Got: p.current()}
	}
	return node, nil
}

// parseLiteral parses any literal token.
func (p *Parser) parseLiteral() (*CSTNode, error) {
	node := NewNode(NodeLiteral)
	tt := p.peek()
	if !tt.IsLiteral() {
		return nil, &SyntaxError{Expected: "literal", Got: p.current()}
	}
	lit, err := p.eat(tt)
	if err != nil {
		return nil, err
	}
	node.AddChild(lit)
	return node, nil
}
