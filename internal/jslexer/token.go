// Package jslexer implements a hand-written lexer for the JavaScript
// subset understood by the tracer.
package jslexer

import "github.com/cwbudde/jsklve/internal/jsast"

// TokenType identifies the lexical category of a Token.
type TokenType int

// Token kinds, grouped for readability.
const (
	ILLEGAL TokenType = iota
	EOF

	IDENT
	NUMBER
	STRING

	// Keywords
	VAR
	LET
	CONST
	FUNCTION
	RETURN
	IF
	ELSE
	FOR
	WHILE
	TRUE
	FALSE
	NULL
	UNDEFINED
	NEW
	TRY
	CATCH
	FINALLY
	THROW
	TYPEOF
	INSTANCEOF
	IN
	OF
	VOID
	THIS
	ASYNC
	AWAIT
	DELETE
	BREAK

	// Punctuators
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	SEMICOLON
	COLON
	DOT
	OPTIONAL_DOT // ?.
	QUESTION
	ARROW // =>
	SPREAD

	ASSIGN     // =
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN

	PLUS
	MINUS
	STAR
	STARSTAR
	SLASH
	PERCENT

	INC // ++
	DEC // --

	EQ       // ==
	NOT_EQ   // !=
	STRICT_EQ    // ===
	STRICT_NOT_EQ // !==
	LT
	GT
	LE
	GE

	AND // &&
	OR  // ||
	NULLISH // ??
	NOT // !

	BIT_AND
	BIT_OR
	BIT_XOR
	BIT_NOT
	SHL
	SHR
	USHR
)

var keywords = map[string]TokenType{
	"var":        VAR,
	"let":        LET,
	"const":      CONST,
	"function":   FUNCTION,
	"return":     RETURN,
	"if":         IF,
	"else":       ELSE,
	"for":        FOR,
	"while":      WHILE,
	"true":       TRUE,
	"false":      FALSE,
	"null":       NULL,
	"undefined":  UNDEFINED,
	"new":        NEW,
	"try":        TRY,
	"catch":      CATCH,
	"finally":    FINALLY,
	"throw":      THROW,
	"typeof":     TYPEOF,
	"instanceof": INSTANCEOF,
	"in":         IN,
	"of":         OF,
	"void":       VOID,
	"this":       THIS,
	"async":      ASYNC,
	"await":      AWAIT,
	"delete":     DELETE,
	"break":      BREAK,
}

// LookupIdent classifies an identifier literal as a keyword token or
// a plain IDENT.
func LookupIdent(literal string) TokenType {
	if tok, ok := keywords[literal]; ok {
		return tok
	}
	return IDENT
}

// Token is a single lexical unit together with its source position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     jsast.Position
	// NewlineBefore records whether a line terminator appeared between
	// this token and the previous one, which the parser consults for
	// automatic semicolon insertion.
	NewlineBefore bool
}
