// Package driver orchestrates the lex/parse/check pipeline for a
// single source file, the way the teacher's own driver package wraps
// its VM/compiler/checker session behind a handful of Run* entry
// points for cmd/paserati to call.
package driver

import (
	"fmt"
	"os"

	"lumen/pkg/checker"
	lumenerr "lumen/pkg/errors"
	"lumen/pkg/lexer"
	"lumen/pkg/parser"
	"lumen/pkg/source"
)

// formatToken renders the printable shape the --lexer mode emits for each
// scanned token: `Token(Type: <name>, Value: '<lexeme>', Line: <n>,
// Column: <n>)`.
func formatToken(tok lexer.Token) string {
	return fmt.Sprintf("Token(Type: %s, Value: '%s', Line: %d, Column: %d)",
		tok.Type, tok.Literal, tok.Line, tok.Column)
}

// RunLexerOnly scans sf to completion, writing one formatted token per
// line to w, and stops at EOF. It returns the first lexical error
// encountered, if any.
func RunLexerOnly(sf *source.SourceFile, w *os.File) error {
	l := lexer.NewWithSource(sf)
	for {
		tok, err := l.NextToken()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, formatToken(tok))
		if tok.Type == lexer.EOF {
			return nil
		}
	}
}

// Result carries the two AST printouts a full pipeline run produces:
// once immediately after parsing, and again after semantic checking
// has run. The printout does not include resolved types, so the two
// strings have the same text.
type Result struct {
	ParsedAST  string
	CheckedAST string
}

// Run lexes, parses, and semantically checks sf, returning both AST
// printouts on success. It stops and returns the first error from any
// stage — there is no partial result on failure.
func Run(sf *source.SourceFile) (*Result, error) {
	l := lexer.NewWithSource(sf)
	root, err := parser.Parse(l, sf)
	if err != nil {
		return nil, err
	}
	parsedAST := parser.Print(root)

	if err := checker.Check(root); err != nil {
		return nil, err
	}
	return &Result{ParsedAST: parsedAST, CheckedAST: parser.Print(root)}, nil
}

// ReadSourceFile opens path and wraps any OS-level failure the way the
// language's own "Erro ao abrir o arquivo" boundary error does.
func ReadSourceFile(path string) (*source.SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, lumenerr.OpenFileError(err)
	}
	return source.FromFile(path, string(content)), nil
}
