package checker

import (
	"testing"

	"lumen/pkg/types"
)

func TestEnvironmentLookupMiss(t *testing.T) {
	env := NewEnvironment()
	if env.Lookup("x") != nil {
		t.Fatal("expected a lookup in an empty environment to miss")
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	env := NewEnvironment()
	env.Add("x", &types.Scheme{T: types.NumberType})
	env.Add("x", &types.Scheme{T: types.StringType})

	sch := env.Lookup("x")
	if sch == nil {
		t.Fatal("expected a binding for x")
	}
	if sch.T != types.StringType {
		t.Fatalf("expected the most recent binding to win, got %v", sch.T)
	}
}

func TestEnvironmentIsAppendOnly(t *testing.T) {
	env := NewEnvironment()
	env.Add("a", &types.Scheme{T: types.NumberType})
	env.Add("b", &types.Scheme{T: types.StringType})

	if env.Lookup("a") == nil {
		t.Fatal("expected 'a' to still be visible after adding 'b'")
	}
}
