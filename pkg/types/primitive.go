package types

import "fmt"

// Var is a type variable: initially unbound (Instance == nil), later
// linked to the type it was unified with. This link is mutated in
// place rather than rolled back, the same destructive-update
// unification the original inference engine performs.
type Var struct {
	ID       int
	Instance Type
}

func (v *Var) typeNode() {}
func (v *Var) String() string {
	if v.Instance != nil {
		return Prune(v).String()
	}
	return fmt.Sprintf("t%d", v.ID)
}
func (v *Var) Equals(other Type) bool {
	ov, ok := Prune(other).(*Var)
	if !ok {
		return false
	}
	return v.ID == ov.ID
}

// NewVar allocates a fresh, unbound type variable with the given id.
// Callers are expected to obtain ids from a single counter (see
// checker.Context) so that two variables never collide.
func NewVar(id int) *Var {
	return &Var{ID: id}
}

// Primitive is a non-composite type: one of the scripting language's
// built-in value categories.
type Primitive struct {
	Tag DataType
}

func (p *Primitive) typeNode()      {}
func (p *Primitive) String() string { return p.Tag.String() }
func (p *Primitive) Equals(other Type) bool {
	op, ok := Prune(other).(*Primitive)
	if !ok {
		return false
	}
	return p.Tag == op.Tag
}

// Predefined primitive instances, reused across a single checker run.
var (
	NilType     = &Primitive{Tag: Nil}
	NumberType  = &Primitive{Tag: Number}
	StringType  = &Primitive{Tag: String}
	BooleanType = &Primitive{Tag: Boolean}
)

// FuncType is a single-argument function type; a multi-parameter
// function declaration is represented as a chain of curried FuncTypes,
// one per parameter.
type FuncType struct {
	Arg Type
	Ret Type
}

func (f *FuncType) typeNode() {}
func (f *FuncType) String() string {
	return fmt.Sprintf("(%s -> %s)", f.Arg.String(), f.Ret.String())
}
func (f *FuncType) Equals(other Type) bool {
	of, ok := Prune(other).(*FuncType)
	if !ok {
		return false
	}
	return Prune(f.Arg).Equals(Prune(of.Arg)) && Prune(f.Ret).Equals(Prune(of.Ret))
}

// Scheme is a type scheme: a type universally quantified over a set of
// variable ids, produced by generalize and consumed by instantiate.
type Scheme struct {
	Vars []int
	T    Type
}
