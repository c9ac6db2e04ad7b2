package runtime

import (
	"fmt"
	"sort"
)

// Environment maps operation names to built-in operations. It is filled once
// when a session starts and only read afterwards.
type Environment struct {
	ops map[string]Operation
}

// NewEnvironment creates an environment with no operations.
func NewEnvironment() *Environment {
	return &Environment{ops: make(map[string]Operation)}
}

// DefaultEnvironment creates an environment holding every built-in under its
// symbol.
func DefaultEnvironment() *Environment {
	env := NewEnvironment()
	for _, op := range Builtins {
		// Symbols are unique, so this cannot fail.
		_ = env.Register(op.Symbol(), op)
	}
	return env
}

// Register binds name to op. Rebinding an existing name is an error.
func (e *Environment) Register(name string, op Operation) error {
	if name == "" {
		return fmt.Errorf("operation name must not be empty")
	}
	if existing, ok := e.ops[name]; ok {
		return fmt.Errorf("operation '%s' already bound to %s", name, existing)
	}
	e.ops[name] = op
	return nil
}

// Lookup returns the operation bound to name.
func (e *Environment) Lookup(name string) (Operation, bool) {
	op, ok := e.ops[name]
	return op, ok
}

// Names returns the bound names in sorted order (useful for determinism in tests).
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.ops))
	for k := range e.ops {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len reports how many names are bound.
func (e *Environment) Len() int {
	return len(e.ops)
}
