package checker

import (
	lumenerr "lumen/pkg/errors"
	"lumen/pkg/types"
)

func occursIn(id int, t types.Type) bool {
	t = types.Prune(t)
	switch tt := t.(type) {
	case *types.Var:
		return tt.ID == id
	case *types.FuncType:
		return occursIn(id, tt.Arg) || occursIn(id, tt.Ret)
	default:
		return false
	}
}

// unify destructively links a and b so that, after it returns without
// error, Prune(a) and Prune(b) are identical. It never rolls back a
// partial binding on failure, matching the original's exit-on-error
// unifier: a real occurs-check or mismatch is a fatal condition for the
// whole checking run, not a recoverable one.
func (c *Checker) unify(a, b types.Type, pos lumenerr.Position) error {
	a = types.Prune(a)
	b = types.Prune(b)

	if av, ok := a.(*types.Var); ok {
		if a != b {
			if occursIn(av.ID, b) {
				return lumenerr.OccursCheckFailed(pos)
			}
			av.Instance = b
		}
		return nil
	}
	if _, ok := b.(*types.Var); ok {
		return c.unify(b, a, pos)
	}
	ap, aIsPrim := a.(*types.Primitive)
	bp, bIsPrim := b.(*types.Primitive)
	if aIsPrim && bIsPrim {
		if ap.Tag != bp.Tag {
			return lumenerr.PrimitiveMismatch(pos)
		}
		return nil
	}
	af, aIsFun := a.(*types.FuncType)
	bf, bIsFun := b.(*types.FuncType)
	if aIsFun && bIsFun {
		if err := c.unify(af.Arg, bf.Arg, pos); err != nil {
			return err
		}
		return c.unify(af.Ret, bf.Ret, pos)
	}
	return lumenerr.KindMismatch(pos)
}
