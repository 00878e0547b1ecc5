// Package errors defines lumen's error taxonomy: small, structured
// error values carrying a source Position, grouped into the two kinds
// the pipeline can raise after the source file is open — SyntaxError
// (scanning and parsing) and TypeError (semantic analysis). Every
// constructor below produces the exact message text the language
// specifies; callers should not reformat Msg.
package errors

import "fmt"

// Error is the interface implemented by all lumen errors.
type Error interface {
	error
	Pos() Position
	Kind() string // "Syntax" or "Type"
	Message() string
}

// SyntaxError represents an error raised while scanning or parsing.
type SyntaxError struct {
	Position
	Msg string
}

func (e *SyntaxError) Error() string   { return e.Msg }
func (e *SyntaxError) Pos() Position   { return e.Position }
func (e *SyntaxError) Kind() string    { return "Syntax" }
func (e *SyntaxError) Message() string { return e.Msg }

// TypeError represents an error raised during type inference.
type TypeError struct {
	Position
	Msg string
}

func (e *TypeError) Error() string   { return e.Msg }
func (e *TypeError) Pos() Position   { return e.Position }
func (e *TypeError) Kind() string    { return "Type" }
func (e *TypeError) Message() string { return e.Msg }

func at(pos Position) string {
	return fmt.Sprintf("na linha %d, coluna %d", pos.Line, pos.Column)
}

// --- Lexical errors ---

// UnknownCharacter reports a byte the scanner has no rule for.
func UnknownCharacter(pos Position, ch byte) *SyntaxError {
	return &SyntaxError{Position: pos, Msg: fmt.Sprintf(
		"Erro léxico: Caractere desconhecido '%c' %s", ch, at(pos))}
}

// UnterminatedString reports a string literal with no closing quote
// before EOF or a newline.
func UnterminatedString(pos Position) *SyntaxError {
	return &SyntaxError{Position: pos, Msg: fmt.Sprintf(
		"Erro léxico: String não terminada %s", at(pos))}
}

// --- Syntax errors ---

// ExpectedToken reports that the parser required one token kind and the
// scanner produced another.
func ExpectedToken(pos Position, expected, found, foundLiteral string) *SyntaxError {
	return &SyntaxError{Position: pos, Msg: fmt.Sprintf(
		"Erro de sintaxe: Esperado token %s, encontrado %s ('%s') %s",
		expected, found, foundLiteral, at(pos))}
}

// UnexpectedToken reports a token that cannot begin any production the
// parser was trying to match.
func UnexpectedToken(pos Position, literal string) *SyntaxError {
	return &SyntaxError{Position: pos, Msg: fmt.Sprintf(
		"Erro de sintaxe: Token inesperado '%s' %s", literal, at(pos))}
}

// --- Semantic errors ---

// UndeclaredVariable reports a reference to a name with no binding in
// the environment.
func UndeclaredVariable(pos Position, name string) *TypeError {
	return &TypeError{Position: pos, Msg: fmt.Sprintf(
		"Erro: variável '%s' não declarada.", name)}
}

// OccursCheckFailed reports that unification would have built an
// infinite type.
func OccursCheckFailed(pos Position) *TypeError {
	return &TypeError{Position: pos, Msg: "Erro: ocorrência circular em unificação."}
}

// PrimitiveMismatch reports two distinct primitive tags unified
// against each other.
func PrimitiveMismatch(pos Position) *TypeError {
	return &TypeError{Position: pos, Msg: "Erro: tipos primitivos incompatíveis."}
}

// KindMismatch reports two structurally incompatible type constructors
// unified against each other (e.g. a function type against a primitive).
func KindMismatch(pos Position) *TypeError {
	return &TypeError{Position: pos, Msg: "Erro: unificação de tipos incompatíveis."}
}

// --- I/O ---

// OpenFileError wraps the OS error raised when the source file cannot
// be opened for reading.
func OpenFileError(err error) error {
	return fmt.Errorf("Erro ao abrir o arquivo: %w", err)
}
