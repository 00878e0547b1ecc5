package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `local x = 10;
local y = .5;
function add(a, b)
    return a + b;
end

if x <= y then
    x = x .. "ok";
else
    x = 'no\n';
end

-- a line comment
--[[ a
     block comment ]]
while x ~= nil do
    x = x - 1;
end
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{KEYWORD, "local"},
		{IDENT, "x"},
		{OPERATOR, "="},
		{NUMBER, "10"},
		{SEMI, ";"},
		{KEYWORD, "local"},
		{IDENT, "y"},
		{OPERATOR, "="},
		{NUMBER, ".5"},
		{SEMI, ";"},
		{KEYWORD, "function"},
		{IDENT, "add"},
		{LPAREN, "("},
		{IDENT, "a"},
		{COMMA, ","},
		{IDENT, "b"},
		{RPAREN, ")"},
		{KEYWORD, "return"},
		{IDENT, "a"},
		{OPERATOR, "+"},
		{IDENT, "b"},
		{SEMI, ";"},
		{KEYWORD, "end"},
		{KEYWORD, "if"},
		{IDENT, "x"},
		{OPERATOR, "<="},
		{IDENT, "y"},
		{KEYWORD, "then"},
		{IDENT, "x"},
		{OPERATOR, "="},
		{IDENT, "x"},
		{OPERATOR, ".."},
		{STRING, "ok"},
		{SEMI, ";"},
		{KEYWORD, "else"},
		{IDENT, "x"},
		{OPERATOR, "="},
		{STRING, "no\n"},
		{SEMI, ";"},
		{KEYWORD, "end"},
		{KEYWORD, "while"},
		{IDENT, "x"},
		{OPERATOR, "~="},
		{IDENT, "nil"},
		{KEYWORD, "do"},
		{IDENT, "x"},
		{OPERATOR, "="},
		{IDENT, "x"},
		{OPERATOR, "-"},
		{NUMBER, "1"},
		{SEMI, ";"},
		{KEYWORD, "end"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d]: unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d]: wrong type. expected=%q, got=%q (literal %q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d]: wrong literal. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenPositions(t *testing.T) {
	l := New("local\nfoo")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Line != 1 || tok.Column != 1 {
		t.Fatalf("expected local at line 1 col 1, got line %d col %d", tok.Line, tok.Column)
	}
	tok, err = l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Line != 2 {
		t.Fatalf("expected foo on line 2, got line %d", tok.Line)
	}
}

func TestUnknownCharacter(t *testing.T) {
	l := New("x = @;")
	for {
		tok, err := l.NextToken()
		if err != nil {
			return
		}
		if tok.Type == EOF {
			t.Fatal("expected an unknown-character error before EOF")
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`x = "abc`)
	var err error
	for {
		var tok Token
		tok, err = l.NextToken()
		if err != nil {
			break
		}
		if tok.Type == EOF {
			t.Fatal("expected an unterminated-string error before EOF")
		}
	}
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\tb\\c\"d"`)
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\tb\\c\"d"
	if tok.Literal != want {
		t.Fatalf("expected %q, got %q", want, tok.Literal)
	}
}

func TestLeadingDotNumberRequiresDigit(t *testing.T) {
	l := New(". x")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != OPERATOR || tok.Literal != "." {
		t.Fatalf("expected lone '.' operator, got %q %q", tok.Type, tok.Literal)
	}
}
