// Package types models the Hindley-Milner type representation inferred
// over a lumen program: type variables linked destructively to their
// bound type, primitive tags, and function types built from them. The
// shape of the Type interface (String/Equals/typeNode) follows the
// teacher's own closed type-interface idiom, scaled down to the three
// constructors the inference engine actually produces.
package types

// Type is the interface implemented by all type representations.
type Type interface {
	// String returns a string representation of the type, suitable for debugging or printing.
	String() string
	// Equals checks if this type is structurally equivalent to another type,
	// after pruning both sides.
	Equals(other Type) bool

	// typeNode is a marker method that keeps the interface closed to the
	// constructors defined in this package.
	typeNode()
}

// DataType is the small closed tag every AST node and Primitive type
// carries, mirroring the scripting language's own value categories.
type DataType int

const (
	Nil DataType = iota
	Number
	String
	Boolean
	Function
	Table
	Unknown
)

func (d DataType) String() string {
	switch d {
	case Nil:
		return "nil"
	case Number:
		return "number"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Function:
		return "function"
	case Table:
		return "table"
	default:
		return "unknown"
	}
}

// Prune follows a TypeVar's instance chain to its representative type,
// compressing the chain as it goes (the same path-compression the
// original's recursive prune performs). Non-variable types, and unbound
// variables, prune to themselves.
func Prune(t Type) Type {
	if tv, ok := t.(*Var); ok && tv.Instance != nil {
		tv.Instance = Prune(tv.Instance)
		return tv.Instance
	}
	return t
}

// ToDataType collapses a pruned Type down to the DataType tag an AST
// node records after inference: a bound primitive keeps its tag, a
// function type becomes Function, and anything still unresolved (a
// free type variable) becomes Unknown.
func ToDataType(t Type) DataType {
	switch pt := Prune(t).(type) {
	case *Primitive:
		return pt.Tag
	case *FuncType:
		return Function
	default:
		return Unknown
	}
}
