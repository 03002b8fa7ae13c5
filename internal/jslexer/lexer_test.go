package jslexer

import "testing"

func TestNextTokenBasics(t *testing.T) {
	input := `let x = 1 + 2; // comment
x++;`
	want := []TokenType{
		LET, IDENT, ASSIGN, NUMBER, PLUS, NUMBER, SEMICOLON,
		IDENT, INC, SEMICOLON, EOF,
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %v, want %v (literal %q)", i, tok.Type, tt, tok.Literal)
		}
	}
}

func TestNextTokenKeywordsAndBreak(t *testing.T) {
	l := New(`while (true) { break; }`)
	want := []TokenType{WHILE, LPAREN, TRUE, RPAREN, LBRACE, BREAK, SEMICOLON, RBRACE, EOF}
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: got %v, want %v", i, tok.Type, tt)
		}
	}
}

func TestNextTokenString(t *testing.T) {
	l := New(`"hello"`)
	tok := l.NextToken()
	if tok.Type != STRING || tok.Literal != "hello" {
		t.Errorf("got %v %q, want STRING %q", tok.Type, tok.Literal, "hello")
	}
}
