package symtab

import "fmt"

// DuplicateError reports a second declaration of a name within one scope.
type DuplicateError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("symbol %q already declared in this scope", e.Name)
}

// Scope maps names to symbols and links to an enclosing scope.
type Scope struct {
	parent  *Scope
	symbols map[string]*Symbol
}

// NewScope creates a scope enclosed by parent. A nil parent makes a
// global scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, symbols: make(map[string]*Symbol)}
}

// Declare binds a symbol in this scope. Declaring a name twice in the
// same scope fails; shadowing an outer scope does not.
func (s *Scope) Declare(sym *Symbol) error {
	if _, ok := s.symbols[sym.Name]; ok {
		return &DuplicateError{Name: sym.Name}
	}
	s.symbols[sym.Name] = sym
	return nil
}

// Resolve looks a name up in this scope and then each enclosing scope.
func (s *Scope) Resolve(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// DeclaredHere reports whether the name is bound in this scope itself,
// ignoring enclosing scopes.
func (s *Scope) DeclaredHere(name string) bool {
	_, ok := s.symbols[name]
	return ok
}

// Len returns the number of symbols bound directly in this scope.
func (s *Scope) Len() int {
	return len(s.symbols)
}
