// Package parser turns a token stream into an abstract syntax tree and
// back into a printable, indented text form. Node shapes follow the
// recursive-descent grammar of a small block-structured scripting
// language (if/then/else/end, while/do/end, function/end, local
// declarations), grounded node-for-node on the original C AST's tagged
// union (`include/ast.h`) and its `print_ast` (`src/ast.c`).
package parser

import (
	"fmt"
	"strings"

	"lumen/pkg/types"
)

// Node is the interface implemented by every AST node. ResolvedType is
// set by the checker during inference (Print does not render it); it is
// types.Unknown until the checker annotates the node.
type Node interface {
	ResolvedType() types.DataType
	setResolvedType(types.DataType)
	print(b *strings.Builder, indent int)
}

type base struct {
	dataType types.DataType
	resolved bool
}

func (n *base) ResolvedType() types.DataType {
	if !n.resolved {
		return types.Unknown
	}
	return n.dataType
}
func (n *base) setResolvedType(d types.DataType) { n.dataType = d; n.resolved = true }

// SetResolvedType records the type the checker inferred for a node.
// Exported so pkg/checker (a different package) can set it.
func SetResolvedType(n Node, d types.DataType) { n.setResolvedType(d) }

// --- Leaf expressions ---

// Number is a numeric literal, stored verbatim as scanned (no float
// parsing happens in the front end).
type Number struct {
	base
	Value string
}

func (n *Number) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	fmt.Fprintf(b, "Number(%s)\n", n.Value)
}

// String is a string literal, already unescaped by the scanner.
type String struct {
	base
	Value string
}

func (n *String) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	fmt.Fprintf(b, "String(%q)\n", n.Value)
}

// Variable is a bare identifier reference.
type Variable struct {
	base
	Name string
}

func (n *Variable) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	fmt.Fprintf(b, "Variable(%s)\n", n.Name)
}

// BinaryOp applies an arithmetic or relational operator to two operands.
type BinaryOp struct {
	base
	Op    string
	Left  Node
	Right Node
}

func (n *BinaryOp) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	fmt.Fprintf(b, "BinaryOp(%s)\n", n.Op)
	n.Left.print(b, indent+1)
	n.Right.print(b, indent+1)
}

// --- Statements ---

// Assignment rebinds an already-declared variable to a new value.
type Assignment struct {
	base
	Variable *Variable
	Expr     Node
}

func (n *Assignment) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	b.WriteString("Assignment\n")
	n.Variable.print(b, indent+1)
	n.Expr.print(b, indent+1)
}

// VariableDeclaration introduces a new name into scope via `local`,
// with an optional declared type name (recorded, never checked — see
// the type_name field of the original's AST_VARIABLE_DECLARATION) and
// an optional initializer.
type VariableDeclaration struct {
	base
	Name         string
	DeclaredType string // "" when no ': type' annotation was written
	Expr         Node   // nil when no initializer was written
}

func (n *VariableDeclaration) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	if n.DeclaredType != "" {
		fmt.Fprintf(b, "VariableDeclaration(name: %s, type: %s)\n", n.Name, n.DeclaredType)
	} else {
		fmt.Fprintf(b, "VariableDeclaration(name: %s)\n", n.Name)
	}
	if n.Expr != nil {
		n.Expr.print(b, indent+1)
	}
}

// If is an if/then[/else]/end statement.
type If struct {
	base
	Condition Node
	Then      *Block
	Else      *Block // nil when there is no else branch
}

func (n *If) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	b.WriteString("IfStatement\n")
	writeIndent(b, indent+1)
	b.WriteString("Condition:\n")
	n.Condition.print(b, indent+2)
	writeIndent(b, indent+1)
	b.WriteString("Then:\n")
	n.Then.print(b, indent+2)
	if n.Else != nil {
		writeIndent(b, indent+1)
		b.WriteString("Else:\n")
		n.Else.print(b, indent+2)
	}
}

// While is a while/do/end loop.
type While struct {
	base
	Condition Node
	Body      *Block
}

func (n *While) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	b.WriteString("WhileStatement\n")
	writeIndent(b, indent+1)
	b.WriteString("Condition:\n")
	n.Condition.print(b, indent+2)
	writeIndent(b, indent+1)
	b.WriteString("Body:\n")
	n.Body.print(b, indent+2)
}

// FunctionCall invokes a named function with zero or more argument
// expressions. The callee is always a plain name — there is no
// expression-calling syntax in this grammar.
type FunctionCall struct {
	base
	Name      string
	Arguments []Node
}

func (n *FunctionCall) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	fmt.Fprintf(b, "FunctionCall(%s)\n", n.Name)
	for _, arg := range n.Arguments {
		arg.print(b, indent+1)
	}
}

// FunctionParameter is one formal parameter of a FunctionDeclaration.
type FunctionParameter struct {
	base
	Name string
}

func (n *FunctionParameter) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	fmt.Fprintf(b, "Parameter(%s)\n", n.Name)
}

// FunctionDeclaration binds a name to a function value built from its
// parameter list and body block.
type FunctionDeclaration struct {
	base
	Name       string
	Parameters []*FunctionParameter
	Body       *Block
}

func (n *FunctionDeclaration) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	fmt.Fprintf(b, "FunctionDeclaration(%s)\n", n.Name)
	writeIndent(b, indent+1)
	b.WriteString("Parameters:\n")
	for _, p := range n.Parameters {
		p.print(b, indent+2)
	}
	writeIndent(b, indent+1)
	b.WriteString("Body:\n")
	n.Body.print(b, indent+2)
}

// Return yields an optional expression from the enclosing function.
// Only the last Return in tail position of a function body actually
// contributes to the function's inferred return type — see Block.
type Return struct {
	base
	Expr Node // nil for a bare 'return'
}

func (n *Return) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	b.WriteString("ReturnStatement\n")
	if n.Expr != nil {
		n.Expr.print(b, indent+1)
	}
}

// Block is an ordered sequence of statements, used as the body of an
// if/while/function and as the program root.
type Block struct {
	base
	Statements []Node
}

func (n *Block) print(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	b.WriteString("Block\n")
	for _, s := range n.Statements {
		s.print(b, indent+1)
	}
}

func writeIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
}

// Print renders the AST rooted at n in the indented text form the
// binary prints twice (before and after semantic checking).
func Print(n Node) string {
	var b strings.Builder
	n.print(&b, 0)
	return b.String()
}
