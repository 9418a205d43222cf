// Package symtab provides the symbol table used by semantic analysis.
// Scopes are parent-linked so resolution walks outward, though CleanWorld
// programs only ever populate the single global scope.
package symtab

import "github.com/hassan/cleanworld/internal/ast"

// Category distinguishes the kinds of bindings a program can declare.
type Category int

const (
	// CategoryConst marks an immutable binding.
	CategoryConst Category = iota
	// CategoryVar marks a mutable binding.
	CategoryVar
)

// String returns the category's source-level spelling.
func (c Category) String() string {
	switch c {
	case CategoryConst:
		return "const"
	case CategoryVar:
		return "var"
	default:
		return "unknown"
	}
}

// Symbol records one declared binding.
type Symbol struct {
	Name     string
	Category Category
	Type     ast.VarType
}

// Mutable reports whether the binding accepts reassignment.
func (s *Symbol) Mutable() bool {
	return s.Category == CategoryVar
}
