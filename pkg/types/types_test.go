package types

import "testing"

func TestPruneFollowsBoundChain(t *testing.T) {
	a := NewVar(0)
	b := NewVar(1)
	a.Instance = b
	b.Instance = NumberType

	got := Prune(a)
	if got != NumberType {
		t.Fatalf("expected Prune to resolve to NumberType, got %v", got)
	}
	if a.Instance != NumberType {
		t.Fatalf("expected path compression to rewrite a.Instance, got %v", a.Instance)
	}
}

func TestPruneUnboundVarIsItself(t *testing.T) {
	v := NewVar(5)
	if Prune(v) != v {
		t.Fatal("expected an unbound variable to prune to itself")
	}
}

func TestToDataType(t *testing.T) {
	tests := []struct {
		name string
		in   Type
		want DataType
	}{
		{"number", NumberType, Number},
		{"string", StringType, String},
		{"boolean", BooleanType, Boolean},
		{"function", &FuncType{Arg: NumberType, Ret: NumberType}, Function},
		{"unbound var", NewVar(0), Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToDataType(tt.in); got != tt.want {
				t.Fatalf("ToDataType(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFuncTypeString(t *testing.T) {
	ft := &FuncType{Arg: NumberType, Ret: &FuncType{Arg: StringType, Ret: BooleanType}}
	want := "(number -> (string -> boolean))"
	if got := ft.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
