package checker

import "lumen/pkg/types"

// Context holds the monotonically increasing type-variable counter for
// a single semantic-check run — the `next_type_var` global of the
// original, packaged as an explicit value instead of package state so
// that two checker runs never interfere with each other.
type Context struct {
	nextVar int
}

// NewContext creates a fresh, zeroed variable counter.
func NewContext() *Context {
	return &Context{}
}

// NewVar allocates a fresh, unbound type variable.
func (c *Context) NewVar() *types.Var {
	v := types.NewVar(c.nextVar)
	c.nextVar++
	return v
}
