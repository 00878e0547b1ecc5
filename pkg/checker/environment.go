package checker

import "lumen/pkg/types"

// entry is one binding in the environment's singly linked list.
type entry struct {
	name   string
	scheme *types.Scheme
	next   *entry
}

// Environment is the append-only, lexically-unscoped binding chain the
// inference engine reads and writes. Add always prepends, so a name
// bound twice shadows its earlier binding without erasing it; there is
// deliberately no Pop/Exit — bindings introduced inside an if/while/
// function body stay visible to whatever is inferred after it in the
// same checker run, exactly as the original's free-standing env/
// env_add/env_lookup behave (not the scoped, enter_scope/exit_scope
// symbol table the same codebase also defines but never calls).
type Environment struct {
	head *entry
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Add binds name to sch, shadowing any earlier binding of the same name.
func (e *Environment) Add(name string, sch *types.Scheme) {
	e.head = &entry{name: name, scheme: sch, next: e.head}
}

// Lookup walks the chain front-to-back and returns the nearest binding
// for name, or nil if none exists.
func (e *Environment) Lookup(name string) *types.Scheme {
	for n := e.head; n != nil; n = n.next {
		if n.name == name {
			return n.scheme
		}
	}
	return nil
}
