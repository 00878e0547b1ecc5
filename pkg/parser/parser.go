package parser

import (
	"fmt"

	lumenerr "lumen/pkg/errors"
	"lumen/pkg/lexer"
	"lumen/pkg/source"
)

// DebugEnabled switches on the "Entrando em"/"Saindo de" trace the
// original parser prints around every production, ported to Go as the
// teacher's own package-level debug-flag idiom.
var DebugEnabled = false

func debugPrint(format string, args ...interface{}) {
	if DebugEnabled {
		fmt.Printf("[Parser] "+format+"\n", args...)
	}
}

// Parser consumes a Lexer's tokens one at a time, keeping a single
// token of lookahead (curToken/peekToken) to disambiguate `identifier =
// expr` from `identifier ( ... )` at the start of a statement.
type Parser struct {
	l      *lexer.Lexer
	source *source.SourceFile

	curToken  lexer.Token
	peekToken lexer.Token
	err       error
}

// New creates a Parser over the given Lexer.
func New(l *lexer.Lexer, sf *source.SourceFile) *Parser {
	p := &Parser{l: l, source: sf}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		p.err = err
		return
	}
	p.peekToken = tok
	debugPrint("cur=%q peek=%q", p.curToken.Literal, p.peekToken.Literal)
}

func (p *Parser) pos() lumenerr.Position {
	return lumenerr.Position{Line: p.curToken.Line, Column: p.curToken.Column, StartPos: p.curToken.StartPos, Source: p.source}
}

// expect consumes the current token if it has the given type, else
// records a token-mismatch error.
func (p *Parser) expect(t lexer.TokenType) {
	if p.err != nil {
		return
	}
	if p.curToken.Type != t {
		p.err = lumenerr.ExpectedToken(p.pos(), string(t), string(p.curToken.Type), p.curToken.Literal)
		return
	}
	p.advance()
}

// expectKeyword consumes the current token if it is the keyword kw,
// else records a token-mismatch error.
func (p *Parser) expectKeyword(kw string) {
	if p.err != nil {
		return
	}
	if !p.curToken.Is(kw) {
		p.err = lumenerr.ExpectedToken(p.pos(), "KEYWORD:"+kw, string(p.curToken.Type), p.curToken.Literal)
		return
	}
	p.advance()
}

// Parse parses an entire program as a single top-level Block and
// returns the root node, or the first error encountered while
// scanning or parsing.
func Parse(l *lexer.Lexer, sf *source.SourceFile) (*Block, error) {
	p := New(l, sf)
	block := p.parseBlock()
	if p.err != nil {
		return nil, p.err
	}
	if p.curToken.Type != lexer.EOF {
		return nil, lumenerr.UnexpectedToken(p.pos(), p.curToken.Literal)
	}
	return block, nil
}

func (p *Parser) parseBlock() *Block {
	debugPrint("Entrando em parseBlock")
	block := &Block{}
	for p.err == nil && p.curToken.Type != lexer.EOF && !p.atBlockTerminator() {
		stmt := p.parseStatement()
		if p.err != nil {
			return block
		}
		block.Statements = append(block.Statements, stmt)
		if p.curToken.Type == lexer.SEMI {
			p.advance()
		}
	}
	debugPrint("Saindo de parseBlock")
	return block
}

func (p *Parser) atBlockTerminator() bool {
	return p.curToken.Is("end") || p.curToken.Is("else")
}

func (p *Parser) parseStatement() Node {
	debugPrint("Entrando em parseStatement com token %q", p.curToken.Literal)
	switch {
	case p.curToken.Is("if"):
		return p.parseIf()
	case p.curToken.Is("while"):
		return p.parseWhile()
	case p.curToken.Is("function"):
		return p.parseFunctionDeclaration()
	case p.curToken.Is("return"):
		return p.parseReturn()
	case p.curToken.Is("local"):
		return p.parseVariableDeclaration()
	case p.curToken.Type == lexer.KEYWORD:
		p.err = lumenerr.UnexpectedToken(p.pos(), p.curToken.Literal)
		return nil
	case p.curToken.Type == lexer.IDENT:
		if p.peekToken.Type == lexer.OPERATOR && p.peekToken.Literal == "=" {
			return p.parseAssignment()
		}
		if p.peekToken.Type == lexer.LPAREN {
			return p.parseFunctionCall()
		}
		p.err = lumenerr.UnexpectedToken(p.pos(), p.curToken.Literal)
		return nil
	default:
		p.err = lumenerr.UnexpectedToken(p.pos(), p.curToken.Literal)
		return nil
	}
}

func (p *Parser) parseVariableDeclaration() Node {
	debugPrint("Entrando em parseVariableDeclaration")
	p.expectKeyword("local")
	if p.err != nil {
		return nil
	}
	name := p.curToken.Literal
	p.expect(lexer.IDENT)
	if p.err != nil {
		return nil
	}
	decl := &VariableDeclaration{Name: name}
	if p.curToken.Type == lexer.COLON {
		p.advance()
		decl.DeclaredType = p.curToken.Literal
		p.expect(lexer.IDENT)
		if p.err != nil {
			return nil
		}
	}
	if p.curToken.Type == lexer.OPERATOR && p.curToken.Literal == "=" {
		p.advance()
		decl.Expr = p.parseExpression()
	}
	debugPrint("Saindo de parseVariableDeclaration")
	return decl
}

func (p *Parser) parseAssignment() Node {
	debugPrint("Entrando em parseAssignment")
	name := p.curToken.Literal
	varNode := &Variable{Name: name}
	p.expect(lexer.IDENT)
	if p.err != nil {
		return nil
	}
	if !(p.curToken.Type == lexer.OPERATOR && p.curToken.Literal == "=") {
		p.err = lumenerr.ExpectedToken(p.pos(), "OPERATOR:=", string(p.curToken.Type), p.curToken.Literal)
		return nil
	}
	p.advance()
	expr := p.parseExpression()
	if p.err != nil {
		return nil
	}
	debugPrint("Saindo de parseAssignment")
	return &Assignment{Variable: varNode, Expr: expr}
}

func (p *Parser) parseIf() Node {
	debugPrint("Entrando em parseIf")
	p.expectKeyword("if")
	cond := p.parseExpression()
	if p.err != nil {
		return nil
	}
	p.expectKeyword("then")
	then := p.parseBlock()
	if p.err != nil {
		return nil
	}
	var elseBlock *Block
	if p.curToken.Is("else") {
		p.advance()
		elseBlock = p.parseBlock()
		if p.err != nil {
			return nil
		}
	}
	p.expectKeyword("end")
	if p.err != nil {
		return nil
	}
	debugPrint("Saindo de parseIf")
	return &If{Condition: cond, Then: then, Else: elseBlock}
}

func (p *Parser) parseWhile() Node {
	debugPrint("Entrando em parseWhile")
	p.expectKeyword("while")
	cond := p.parseExpression()
	if p.err != nil {
		return nil
	}
	p.expectKeyword("do")
	body := p.parseBlock()
	if p.err != nil {
		return nil
	}
	p.expectKeyword("end")
	if p.err != nil {
		return nil
	}
	debugPrint("Saindo de parseWhile")
	return &While{Condition: cond, Body: body}
}

func (p *Parser) parseFunctionDeclaration() Node {
	debugPrint("Entrando em parseFunctionDeclaration")
	p.expectKeyword("function")
	if p.err != nil {
		return nil
	}
	name := p.curToken.Literal
	p.expect(lexer.IDENT)
	if p.err != nil {
		return nil
	}
	p.expect(lexer.LPAREN)
	if p.err != nil {
		return nil
	}
	var params []*FunctionParameter
	if p.curToken.Type != lexer.RPAREN {
		for {
			if p.curToken.Type != lexer.IDENT {
				p.err = lumenerr.UnexpectedToken(p.pos(), p.curToken.Literal)
				return nil
			}
			params = append(params, &FunctionParameter{Name: p.curToken.Literal})
			p.advance()
			if p.curToken.Type == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(lexer.RPAREN)
	if p.err != nil {
		return nil
	}
	body := p.parseBlock()
	if p.err != nil {
		return nil
	}
	p.expectKeyword("end")
	if p.err != nil {
		return nil
	}
	debugPrint("Saindo de parseFunctionDeclaration")
	return &FunctionDeclaration{Name: name, Parameters: params, Body: body}
}

func (p *Parser) parseReturn() Node {
	debugPrint("Entrando em parseReturn")
	p.expectKeyword("return")
	if p.err != nil {
		return nil
	}
	var expr Node
	if p.curToken.Type != lexer.SEMI && p.curToken.Type != lexer.EOF && !p.curToken.Is("end") {
		expr = p.parseExpression()
		if p.err != nil {
			return nil
		}
	}
	debugPrint("Saindo de parseReturn")
	return &Return{Expr: expr}
}

func (p *Parser) parseFunctionCall() Node {
	debugPrint("Entrando em parseFunctionCall com token %q", p.curToken.Literal)
	name := p.curToken.Literal
	p.expect(lexer.IDENT)
	if p.err != nil {
		return nil
	}
	p.expect(lexer.LPAREN)
	if p.err != nil {
		return nil
	}
	var args []Node
	if p.curToken.Type != lexer.RPAREN {
		for {
			args = append(args, p.parseExpression())
			if p.err != nil {
				return nil
			}
			if p.curToken.Type == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(lexer.RPAREN)
	if p.err != nil {
		return nil
	}
	debugPrint("Saindo de parseFunctionCall")
	return &FunctionCall{Name: name, Arguments: args}
}

// --- Expression grammar: relational > arithmetic > term > factor ---

func (p *Parser) parseExpression() Node {
	debugPrint("Entrando em parseExpression")
	n := p.parseRelational()
	debugPrint("Saindo de parseExpression")
	return n
}

func (p *Parser) parseRelational() Node {
	left := p.parseArithmetic()
	for p.err == nil && p.curToken.Type == lexer.OPERATOR && isRelationalOp(p.curToken.Literal) {
		op := p.curToken.Literal
		p.advance()
		right := p.parseArithmetic()
		if p.err != nil {
			return left
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
	return left
}

func isRelationalOp(op string) bool {
	switch op {
	case "==", "~=", "<", ">", "<=", ">=":
		return true
	default:
		return false
	}
}

func (p *Parser) parseArithmetic() Node {
	left := p.parseTerm()
	for p.err == nil && p.curToken.Type == lexer.OPERATOR && (p.curToken.Literal == "+" || p.curToken.Literal == "-") {
		op := p.curToken.Literal
		p.advance()
		right := p.parseTerm()
		if p.err != nil {
			return left
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseTerm() Node {
	left := p.parseFactor()
	for p.err == nil && p.curToken.Type == lexer.OPERATOR && (p.curToken.Literal == "*" || p.curToken.Literal == "/" || p.curToken.Literal == "%") {
		op := p.curToken.Literal
		p.advance()
		right := p.parseFactor()
		if p.err != nil {
			return left
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseFactor() Node {
	debugPrint("Entrando em parseFactor com token %q", p.curToken.Literal)
	tok := p.curToken
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		return &Number{Value: tok.Literal}
	case lexer.STRING:
		p.advance()
		return &String{Value: tok.Literal}
	case lexer.IDENT:
		if p.peekToken.Type == lexer.LPAREN {
			return p.parseFunctionCall()
		}
		p.advance()
		return &Variable{Name: tok.Literal}
	case lexer.LPAREN:
		p.advance()
		n := p.parseExpression()
		if p.err != nil {
			return nil
		}
		p.expect(lexer.RPAREN)
		if p.err != nil {
			return nil
		}
		return n
	default:
		p.err = lumenerr.UnexpectedToken(p.pos(), tok.Literal)
		return nil
	}
}
