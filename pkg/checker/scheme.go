package checker

import "lumen/pkg/types"

// freeVars collects the ids of every type variable reachable from t,
// deduplicated via seen.
func freeVars(t types.Type, seen map[int]bool, out *[]int) {
	t = types.Prune(t)
	switch tt := t.(type) {
	case *types.Var:
		if !seen[tt.ID] {
			seen[tt.ID] = true
			*out = append(*out, tt.ID)
		}
	case *types.FuncType:
		freeVars(tt.Arg, seen, out)
		freeVars(tt.Ret, seen, out)
	}
}

// generalize quantifies t over every type variable it currently
// contains. This is deliberately NOT the textbook "subtract the
// variables free in the environment" rule — it quantifies over all of
// them, matching the original generalize exactly. That is unsound for
// nested lets in general, but this language's binding forms (no
// nested let-polymorphism over mutable outer bindings) never exercise
// the unsound case in practice.
func generalize(t types.Type) *types.Scheme {
	var vars []int
	freeVars(t, map[int]bool{}, &vars)
	return &types.Scheme{Vars: vars, T: t}
}

// copyType rebuilds t, replacing every quantified variable (found in
// mapping) with its fresh instance and leaving every other variable
// (not quantified, i.e. still free in an enclosing scope) untouched by
// identity.
func copyType(t types.Type, mapping map[int]*types.Var) types.Type {
	t = types.Prune(t)
	switch tt := t.(type) {
	case *types.Var:
		if fresh, ok := mapping[tt.ID]; ok {
			return fresh
		}
		return tt
	case *types.Primitive:
		return &types.Primitive{Tag: tt.Tag}
	case *types.FuncType:
		return &types.FuncType{Arg: copyType(tt.Arg, mapping), Ret: copyType(tt.Ret, mapping)}
	default:
		return t
	}
}

// instantiate produces a fresh copy of sch's type, with a brand new
// variable substituted for each quantified variable.
func (c *Checker) instantiate(sch *types.Scheme) types.Type {
	mapping := make(map[int]*types.Var, len(sch.Vars))
	for _, id := range sch.Vars {
		mapping[id] = c.ctx.NewVar()
	}
	return copyType(sch.T, mapping)
}
