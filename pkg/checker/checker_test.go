package checker

import (
	"strings"
	"testing"

	"lumen/pkg/lexer"
	"lumen/pkg/parser"
	"lumen/pkg/source"
	"lumen/pkg/types"
)

func checkString(t *testing.T, input string) (*parser.Block, error) {
	t.Helper()
	sf := source.NewExprSource(input)
	l := lexer.NewWithSource(sf)
	block, err := parser.Parse(l, sf)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return block, Check(block)
}

func TestInferNumberAndString(t *testing.T) {
	block, err := checkString(t, `local x = 10;
local y = "hi";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x := block.Statements[0].(*parser.VariableDeclaration)
	y := block.Statements[1].(*parser.VariableDeclaration)
	if x.ResolvedType() != types.Number {
		t.Fatalf("expected x: number, got %v", x.ResolvedType())
	}
	if y.ResolvedType() != types.String {
		t.Fatalf("expected y: string, got %v", y.ResolvedType())
	}
}

func TestInferFunctionDeclaration(t *testing.T) {
	block, err := checkString(t, `function add(a, b)
		return a + b;
	end`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := block.Statements[0].(*parser.FunctionDeclaration)
	if fn.ResolvedType() != types.Function {
		t.Fatalf("expected function, got %v", fn.ResolvedType())
	}
}

func TestInferFunctionCall(t *testing.T) {
	_, err := checkString(t, `function add(a, b)
		return a + b;
	end
	local r = add(1, 2);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUndeclaredVariable(t *testing.T) {
	_, err := checkString(t, `x = 1;`)
	if err == nil {
		t.Fatal("expected an undeclared-variable error")
	}
	if !strings.Contains(err.Error(), "não declarada") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestPrimitiveMismatch(t *testing.T) {
	_, err := checkString(t, `local x = 1 + "a";`)
	if err == nil {
		t.Fatal("expected a primitive-mismatch error")
	}
	if !strings.Contains(err.Error(), "incompatíveis") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestOccursCheck(t *testing.T) {
	// A function whose own name is used as one of its own arguments at
	// the point it's called recursively before being bound can never
	// build this shape through this grammar, so the occurs-check path
	// is exercised directly through the checker internals instead.
	c := &Checker{ctx: NewContext(), env: NewEnvironment()}
	v := c.ctx.NewVar()
	fn := &types.FuncType{Arg: v, Ret: types.NumberType}
	if err := c.unify(v, fn, noPos); err == nil {
		t.Fatal("expected an occurs-check failure unifying a variable with a function that contains it")
	} else if !strings.Contains(err.Error(), "ocorrência circular") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestIfBranchesMustUnify(t *testing.T) {
	_, err := checkString(t, `local x: number = 0;
if x == 0 then
	local a = 1;
else
	local b = "no";
end`)
	if err == nil {
		t.Fatal("expected the then/else branches' types to fail to unify")
	}
}

func TestModuloIsAComparisonOperatorNotArithmetic(t *testing.T) {
	// Only + - * / force their operands to number and yield number;
	// % falls through to the default (comparison) branch like == or <,
	// which just unifies the two operands with each other and yields
	// boolean, matching the original's infer (it tests only + - * /
	// before falling into the relational case).
	block, err := checkString(t, `local x = 5 % 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decl := block.Statements[0].(*parser.VariableDeclaration)
	if decl.ResolvedType() != types.Boolean {
		t.Fatalf("expected x: boolean, got %v", decl.ResolvedType())
	}
}

func TestModuloAcceptsNonNumberOperandsOfTheSameType(t *testing.T) {
	_, err := checkString(t, `local x = "a" % "b";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWhileConditionMustBeBoolean(t *testing.T) {
	_, err := checkString(t, `local x = 0;
while x do
	x = x - 1;
end`)
	if err == nil {
		t.Fatal("expected a primitive-mismatch error unifying a number condition with boolean")
	}
}

func TestParameterReferencesGetFreshInstances(t *testing.T) {
	// identity(1) and identity("x") must both type-check: the
	// parameter's scheme is generalized before the body is inferred,
	// so every use of the parameter inside the body instantiates its
	// own fresh type variable.
	_, err := checkString(t, `function identity(a)
		return a;
	end
	local n = identity(1);
	local s = identity("x");`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmptyProgramBlockStaysUnknown(t *testing.T) {
	// The original's infer never writes data_type for an AST_BLOCK
	// node (only for Number/String/Variable), so an empty program's
	// top-level Block keeps its unknown creation default rather than
	// being annotated nil.
	block, err := checkString(t, ``)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.ResolvedType() != types.Unknown {
		t.Fatalf("expected the empty top-level Block to stay unknown, got %v", block.ResolvedType())
	}
}

func TestBlockIfWhileFunctionCallAreNeverAnnotated(t *testing.T) {
	// Block, If, While, and FunctionCall all yield a type to their
	// parent; none of them is itself annotated, matching
	// the original, which only ever sets data_type on the three leaf
	// cases (Number, String, Variable).
	block, err := checkString(t, `local x = 0;
if x == 0 then
	while x == 1 do
		x = 0;
	end
end
while x == 1 do
	x = 0;
end
function f()
end
f();`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.ResolvedType() != types.Unknown {
		t.Fatalf("expected the top-level Block to stay unknown, got %v", block.ResolvedType())
	}
	ifStmt := block.Statements[1].(*parser.If)
	if ifStmt.ResolvedType() != types.Unknown {
		t.Fatalf("expected the If node to stay unknown, got %v", ifStmt.ResolvedType())
	}
	whileStmt := block.Statements[2].(*parser.While)
	if whileStmt.ResolvedType() != types.Unknown {
		t.Fatalf("expected the While node to stay unknown, got %v", whileStmt.ResolvedType())
	}
	call := block.Statements[4].(*parser.FunctionCall)
	if call.ResolvedType() != types.Unknown {
		t.Fatalf("expected the FunctionCall node to stay unknown, got %v", call.ResolvedType())
	}
}
