// Package interp executes CleanWorld programs by structural recursion
// over the AST, mutating a runtime environment and a grid world.
package interp

// Environment maps names to runtime values, parent-linked like the
// analyzer's scope chain.
type Environment struct {
	parent *Environment
	vars   map[string]interface{}
}

// NewEnvironment creates an environment enclosed by parent. A nil
// parent makes the root environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[string]interface{})}
}

// Define binds a name in this environment, shadowing any outer binding.
func (e *Environment) Define(name string, value interface{}) {
	e.vars[name] = value
}

// Get resolves a name through the environment chain.
func (e *Environment) Get(name string) (interface{}, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, nil
		}
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Set updates a name in the environment where it was defined.
func (e *Environment) Set(name string, value interface{}) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = value
			return nil
		}
	}
	return &UndefinedVariableError{Name: name}
}
