// Package semantic checks a CleanWorld AST for declaration and resolution
// errors. Diagnostics accumulate and analysis never aborts early; the
// caller decides whether a non-empty list blocks interpretation.
package semantic

import (
	"fmt"

	"github.com/hassan/cleanworld/internal/ast"
	"github.com/hassan/cleanworld/internal/symtab"
)

// Diagnostic codes.
const (
	CodeDupDecl     = "E_DUP_DECL"
	CodeUndefined   = "E_UNDEFINED"
	CodeConstAssign = "E_CONST_ASSIGN"
)

// Diagnostic is one semantic finding.
type Diagnostic struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Msg)
}

// reserved names resolve without a declaration. sense is the grid query;
// dirt is reserved but unreadable, which the interpreter enforces.
var reserved = map[string]bool{
	"sense": true,
	"dirt":  true,
}

// Analyzer walks a program in two passes over the single global scope.
type Analyzer struct {
	scope *symtab.Scope
	diags []Diagnostic
}

// NewAnalyzer creates an analyzer with a fresh global scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{scope: NewGlobalScope()}
}

// NewGlobalScope creates the root scope for one analysis.
func NewGlobalScope() *symtab.Scope {
	return symtab.NewScope(nil)
}

// Analyze checks the program and returns every diagnostic found.
//
// Pass one registers top-level declarations; a duplicate keeps the first
// binding and reports E_DUP_DECL. Pass two resolves assignment targets and
// identifier reads throughout the statement tree.
func (a *Analyzer) Analyze(prog *ast.Program) []Diagnostic {
	if prog == nil {
		return nil
	}

	for _, stmt := range prog.Body {
		switch decl := stmt.(type) {
		case *ast.ConstDecl:
			a.declare(decl.Name, symtab.CategoryConst, decl.VarType)
		case *ast.VarDecl:
			a.declare(decl.Name, symtab.CategoryVar, decl.VarType)
		}
	}

	a.checkStatements(prog.Body)
	return a.diags
}

// Scope exposes the populated global scope, letting callers inspect what
// was declared after analysis.
func (a *Analyzer) Scope() *symtab.Scope {
	return a.scope
}

func (a *Analyzer) declare(name string, category symtab.Category, varType ast.VarType) {
	err := a.scope.Declare(&symtab.Symbol{Name: name, Category: category, Type: varType})
	if err != nil {
		a.report(CodeDupDecl, fmt.Sprintf("duplicate declaration: %s", name))
	}
}

func (a *Analyzer) checkStatements(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.ConstDecl:
			a.resolveExpr(s.Value)
		case *ast.VarDecl:
			a.resolveExpr(s.Init)
		case *ast.Assign:
			a.checkAssign(s)
		case *ast.IfStmt:
			a.resolveExpr(s.Test)
			a.checkStatements(s.Consequent)
			a.checkStatements(s.Alternate)
		case *ast.WhileStmt:
			a.resolveExpr(s.Test)
			a.checkStatements(s.Body)
		case *ast.BlockStmt:
			a.checkStatements(s.Body)
		case *ast.ActionStmt:
			// Actions take no arguments; nothing to resolve.
		}
	}
}

func (a *Analyzer) checkAssign(s *ast.Assign) {
	sym, ok := a.scope.Resolve(s.Target)
	switch {
	case !ok:
		a.report(CodeUndefined, fmt.Sprintf("undefined variable: %s", s.Target))
	case !sym.Mutable():
		a.report(CodeConstAssign, fmt.Sprintf("cannot reassign constant: %s", s.Target))
	}
	a.resolveExpr(s.Value)
}

func (a *Analyzer) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if reserved[e.Name] {
			return
		}
		if _, ok := a.scope.Resolve(e.Name); !ok {
			a.report(CodeUndefined, fmt.Sprintf("undefined identifier: %s", e.Name))
		}
	case *ast.BinaryExpr:
		a.resolveExpr(e.Left)
		a.resolveExpr(e.Right)
	}
}

func (a *Analyzer) report(code, msg string) {
	a.diags = append(a.diags, Diagnostic{Code: code, Msg: msg})
}
