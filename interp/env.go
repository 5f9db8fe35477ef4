package interp

import "fmt"

// Env is a lexical environment: one frame of bindings plus a link to the
// enclosing frame.
type Env struct {
	vars   map[string]any
	parent *Env
}

func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[string]any), parent: parent}
}

// Define introduces name in this frame, shadowing any outer binding.
func (e *Env) Define(name string, v any) {
	e.vars[name] = v
}

// Set assigns to the nearest existing binding of name.
func (e *Env) Set(name string, v any) error {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.vars[name]; ok {
			s.vars[name] = v
			return nil
		}
	}
	return fmt.Errorf("set!: unbound variable %v", name)
}

// Lookup resolves name through the frame chain.
func (e *Env) Lookup(name string) (any, bool) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}
