// Package checker implements the Hindley-Milner style type-inference
// engine: unification with an occurs-check (unify.go), generalization
// and instantiation of type schemes (scheme.go), and the append-only
// Environment the inferred bindings live in (environment.go). The
// rules below follow the original semantic analyzer's `infer` switch
// almost case-for-case; the Checker/Context split and the
// package-level debug-trace idiom follow the teacher's own
// checker.go.
package checker

import (
	"fmt"

	lumenerr "lumen/pkg/errors"
	"lumen/pkg/parser"
	"lumen/pkg/types"
)

// DebugEnabled switches on a per-node inference trace.
var DebugEnabled = false

func debugPrintf(format string, args ...interface{}) {
	if DebugEnabled {
		fmt.Printf("[Checker] "+format+"\n", args...)
	}
}

// Checker performs one semantic-check pass over an AST. A new Checker
// (and the Context/Environment it owns) is created per call to Check,
// which is what makes inference re-entrant: nothing here is
// package-level mutable state.
type Checker struct {
	ctx *Context
	env *Environment
}

// Check runs type inference over root, annotating the ResolvedType of
// the nodes whose own rule in §4.5 produces a type directly, and
// returns the first error encountered. Block, If, While and
// FunctionCall nodes are left at their unknown creation default
// whatever type they yield, matching the original's infer:
// it never writes data_type for those cases either, so an empty
// program's top-level Block stays unknown rather than nil. It is
// fail-fast: there is no error-recovery or accumulation, mirroring the
// original's exit(1) on every semantic error path.
func Check(root *parser.Block) error {
	c := &Checker{ctx: NewContext(), env: NewEnvironment()}
	_, err := c.infer(root)
	return err
}

var noPos lumenerr.Position

func (c *Checker) infer(n parser.Node) (types.Type, error) {
	debugPrintf("infer %T", n)
	switch node := n.(type) {
	case *parser.Number:
		t := types.NumberType
		parser.SetResolvedType(node, types.ToDataType(t))
		return t, nil

	case *parser.String:
		t := types.StringType
		parser.SetResolvedType(node, types.ToDataType(t))
		return t, nil

	case *parser.Variable:
		sch := c.env.Lookup(node.Name)
		if sch == nil {
			return nil, lumenerr.UndeclaredVariable(noPos, node.Name)
		}
		t := c.instantiate(sch)
		parser.SetResolvedType(node, types.ToDataType(t))
		return t, nil

	case *parser.BinaryOp:
		l, err := c.infer(node.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.infer(node.Right)
		if err != nil {
			return nil, err
		}
		switch node.Op {
		case "+", "-", "*", "/":
			if err := c.unify(l, types.NumberType, noPos); err != nil {
				return nil, err
			}
			if err := c.unify(r, types.NumberType, noPos); err != nil {
				return nil, err
			}
			parser.SetResolvedType(node, types.Number)
			return types.NumberType, nil
		default:
			if err := c.unify(l, r, noPos); err != nil {
				return nil, err
			}
			parser.SetResolvedType(node, types.Boolean)
			return types.BooleanType, nil
		}

	case *parser.VariableDeclaration:
		t := types.Type(c.ctx.NewVar())
		if node.Expr != nil {
			et, err := c.infer(node.Expr)
			if err != nil {
				return nil, err
			}
			if err := c.unify(t, et, noPos); err != nil {
				return nil, err
			}
		}
		c.env.Add(node.Name, generalize(t))
		parser.SetResolvedType(node, types.ToDataType(t))
		return t, nil

	case *parser.Assignment:
		et, err := c.infer(node.Expr)
		if err != nil {
			return nil, err
		}
		sch := c.env.Lookup(node.Variable.Name)
		if sch == nil {
			return nil, lumenerr.UndeclaredVariable(noPos, node.Variable.Name)
		}
		vt := c.instantiate(sch)
		if err := c.unify(vt, et, noPos); err != nil {
			return nil, err
		}
		parser.SetResolvedType(node.Variable, types.ToDataType(vt))
		return et, nil

	case *parser.Block:
		var last types.Type
		for _, s := range node.Statements {
			t, err := c.infer(s)
			if err != nil {
				return nil, err
			}
			last = t
		}
		if last == nil {
			last = types.NilType
		}
		return last, nil

	case *parser.If:
		cond, err := c.infer(node.Condition)
		if err != nil {
			return nil, err
		}
		if err := c.unify(cond, types.BooleanType, noPos); err != nil {
			return nil, err
		}
		t1, err := c.infer(node.Then)
		if err != nil {
			return nil, err
		}
		var t2 types.Type = types.NilType
		if node.Else != nil {
			t2, err = c.infer(node.Else)
			if err != nil {
				return nil, err
			}
		}
		if err := c.unify(t1, t2, noPos); err != nil {
			return nil, err
		}
		return t1, nil

	case *parser.While:
		cond, err := c.infer(node.Condition)
		if err != nil {
			return nil, err
		}
		if err := c.unify(cond, types.BooleanType, noPos); err != nil {
			return nil, err
		}
		if _, err := c.infer(node.Body); err != nil {
			return nil, err
		}
		return types.NilType, nil

	case *parser.FunctionDeclaration:
		params := make([]*types.Var, len(node.Parameters))
		for i, p := range node.Parameters {
			v := c.ctx.NewVar()
			params[i] = v
			c.env.Add(p.Name, generalize(v))
			parser.SetResolvedType(p, types.ToDataType(v))
		}
		bodyT, err := c.infer(node.Body)
		if err != nil {
			return nil, err
		}
		var funT types.Type = bodyT
		for i := len(params) - 1; i >= 0; i-- {
			funT = &types.FuncType{Arg: params[i], Ret: funT}
		}
		c.env.Add(node.Name, generalize(funT))
		parser.SetResolvedType(node, types.ToDataType(funT))
		return funT, nil

	case *parser.FunctionCall:
		sch := c.env.Lookup(node.Name)
		if sch == nil {
			return nil, lumenerr.UndeclaredVariable(noPos, node.Name)
		}
		ft := c.instantiate(sch)
		for _, arg := range node.Arguments {
			argT, err := c.infer(arg)
			if err != nil {
				return nil, err
			}
			res := c.ctx.NewVar()
			if err := c.unify(ft, &types.FuncType{Arg: argT, Ret: res}, noPos); err != nil {
				return nil, err
			}
			ft = res
		}
		return ft, nil

	case *parser.Return:
		if node.Expr == nil {
			parser.SetResolvedType(node, types.Nil)
			return types.NilType, nil
		}
		t, err := c.infer(node.Expr)
		if err != nil {
			return nil, err
		}
		parser.SetResolvedType(node, types.ToDataType(t))
		return t, nil

	default:
		return nil, fmt.Errorf("checker: unhandled node type %T", n)
	}
}
