// Package jsparser implements a recursive-descent Pratt parser that
// turns JavaScript source text into a jsast.Program.
package jsparser

import (
	"fmt"

	"github.com/cwbudde/jsklve/internal/jsast"
	"github.com/cwbudde/jsklve/internal/jslexer"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	ASSIGN
	CONDITIONAL
	NULLISH
	LOGICAL_OR
	LOGICAL_AND
	BITWISE
	EQUALITY
	RELATIONAL
	SUM
	PRODUCT
	EXPONENT
	PREFIX
	POSTFIX
	CALL
	MEMBER
)

var precedences = map[jslexer.TokenType]int{
	jslexer.ASSIGN:         ASSIGN,
	jslexer.PLUS_ASSIGN:    ASSIGN,
	jslexer.MINUS_ASSIGN:   ASSIGN,
	jslexer.STAR_ASSIGN:    ASSIGN,
	jslexer.SLASH_ASSIGN:   ASSIGN,
	jslexer.PERCENT_ASSIGN: ASSIGN,
	jslexer.QUESTION:       CONDITIONAL,
	jslexer.NULLISH:        NULLISH,
	jslexer.OR:             LOGICAL_OR,
	jslexer.AND:            LOGICAL_AND,
	jslexer.BIT_OR:         BITWISE,
	jslexer.BIT_XOR:        BITWISE,
	jslexer.BIT_AND:        BITWISE,
	jslexer.EQ:             EQUALITY,
	jslexer.NOT_EQ:         EQUALITY,
	jslexer.STRICT_EQ:      EQUALITY,
	jslexer.STRICT_NOT_EQ:  EQUALITY,
	jslexer.LT:             RELATIONAL,
	jslexer.GT:             RELATIONAL,
	jslexer.LE:             RELATIONAL,
	jslexer.GE:             RELATIONAL,
	jslexer.INSTANCEOF:     RELATIONAL,
	jslexer.IN:             RELATIONAL,
	jslexer.PLUS:           SUM,
	jslexer.MINUS:          SUM,
	jslexer.STAR:           PRODUCT,
	jslexer.SLASH:          PRODUCT,
	jslexer.PERCENT:        PRODUCT,
	jslexer.STARSTAR:       EXPONENT,
	jslexer.LPAREN:         CALL,
	jslexer.DOT:            MEMBER,
	jslexer.OPTIONAL_DOT:   MEMBER,
	jslexer.LBRACKET:       MEMBER,
	jslexer.INC:            POSTFIX,
	jslexer.DEC:            POSTFIX,
}

type prefixParseFn func() jsast.Expression
type infixParseFn func(jsast.Expression) jsast.Expression

// Parser is a Pratt parser over a token stream produced by jslexer.
type Parser struct {
	l      *jslexer.Lexer
	errors []*ParseError

	curToken  jslexer.Token
	peekToken jslexer.Token

	prefixParseFns map[jslexer.TokenType]prefixParseFn
	infixParseFns  map[jslexer.TokenType]infixParseFn
}

// New creates a Parser reading tokens from l.
func New(l *jslexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[jslexer.TokenType]prefixParseFn{
		jslexer.IDENT:     p.parseIdentifier,
		jslexer.NUMBER:    p.parseNumericLiteral,
		jslexer.STRING:    p.parseStringLiteral,
		jslexer.TRUE:      p.parseBooleanLiteral,
		jslexer.FALSE:     p.parseBooleanLiteral,
		jslexer.NULL:      p.parseNullLiteral,
		jslexer.UNDEFINED: p.parseIdentifier,
		jslexer.THIS:      p.parseIdentifier,
		jslexer.NOT:       p.parseUnaryExpression,
		jslexer.MINUS:     p.parseUnaryExpression,
		jslexer.PLUS:      p.parseUnaryExpression,
		jslexer.BIT_NOT:   p.parseUnaryExpression,
		jslexer.TYPEOF:    p.parseUnaryExpression,
		jslexer.VOID:      p.parseUnaryExpression,
		jslexer.DELETE:    p.parseUnaryExpression,
		jslexer.INC:       p.parsePrefixUpdateExpression,
		jslexer.DEC:       p.parsePrefixUpdateExpression,
		jslexer.LPAREN:    p.parseParenOrArrow,
		jslexer.LBRACKET:  p.parseArrayExpression,
		jslexer.LBRACE:    p.parseObjectExpression,
		jslexer.FUNCTION:  p.parseFunctionExpression,
		jslexer.NEW:       p.parseNewExpression,
		jslexer.ASYNC:     p.parseAsyncPrefix,
	}

	p.infixParseFns = map[jslexer.TokenType]infixParseFn{
		jslexer.PLUS:           p.parseBinaryExpression,
		jslexer.MINUS:          p.parseBinaryExpression,
		jslexer.STAR:           p.parseBinaryExpression,
		jslexer.SLASH:          p.parseBinaryExpression,
		jslexer.PERCENT:        p.parseBinaryExpression,
		jslexer.STARSTAR:       p.parseBinaryExpression,
		jslexer.EQ:             p.parseBinaryExpression,
		jslexer.NOT_EQ:         p.parseBinaryExpression,
		jslexer.STRICT_EQ:      p.parseBinaryExpression,
		jslexer.STRICT_NOT_EQ:  p.parseBinaryExpression,
		jslexer.LT:             p.parseBinaryExpression,
		jslexer.GT:             p.parseBinaryExpression,
		jslexer.LE:             p.parseBinaryExpression,
		jslexer.GE:             p.parseBinaryExpression,
		jslexer.INSTANCEOF:     p.parseBinaryExpression,
		jslexer.IN:             p.parseBinaryExpression,
		jslexer.BIT_AND:        p.parseBinaryExpression,
		jslexer.BIT_OR:         p.parseBinaryExpression,
		jslexer.BIT_XOR:        p.parseBinaryExpression,
		jslexer.AND:            p.parseLogicalExpression,
		jslexer.OR:             p.parseLogicalExpression,
		jslexer.NULLISH:        p.parseLogicalExpression,
		jslexer.ASSIGN:         p.parseAssignmentExpression,
		jslexer.PLUS_ASSIGN:    p.parseAssignmentExpression,
		jslexer.MINUS_ASSIGN:   p.parseAssignmentExpression,
		jslexer.STAR_ASSIGN:    p.parseAssignmentExpression,
		jslexer.SLASH_ASSIGN:   p.parseAssignmentExpression,
		jslexer.PERCENT_ASSIGN: p.parseAssignmentExpression,
		jslexer.QUESTION:       p.parseConditionalExpression,
		jslexer.LPAREN:         p.parseCallExpression,
		jslexer.DOT:            p.parseMemberExpression,
		jslexer.OPTIONAL_DOT:   p.parseMemberExpression,
		jslexer.LBRACKET:       p.parseComputedMemberExpression,
		jslexer.INC:            p.parsePostfixUpdateExpression,
		jslexer.DEC:            p.parsePostfixUpdateExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, &ParseError{
		Message: fmt.Sprintf(format, args...),
		Pos:     p.curToken.Pos,
	})
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) expectPeek(t jslexer.TokenType, desc string) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	p.addError("expected %s, got %q", desc, p.peekToken.Literal)
	return false
}

func (p *Parser) loc(start jsast.Position) jsast.SourceLocation {
	return jsast.SourceLocation{Start: start, End: p.curToken.Pos}
}

// consumeSemicolon implements a minimal automatic-semicolon-insertion
// rule: an explicit `;` is consumed if present; otherwise a statement
// boundary is accepted at a newline, `}`, or EOF.
func (p *Parser) consumeSemicolon() {
	if p.peekToken.Type == jslexer.SEMICOLON {
		p.nextToken()
		return
	}
	if p.peekToken.NewlineBefore || p.peekToken.Type == jslexer.RBRACE || p.peekToken.Type == jslexer.EOF {
		return
	}
	p.addError("expected ';', got %q", p.peekToken.Literal)
}

// ParseProgram parses the full input and returns the resulting AST
// together with every syntax error accumulated while parsing; a
// non-empty error list means the AST may be incomplete.
func ParseProgram(source string) (*jsast.Program, []*ParseError) {
	l := jslexer.New(source)
	p := New(l)
	prog := &jsast.Program{}
	start := p.curToken.Pos
	for p.curToken.Type != jslexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Body = append(prog.Body, stmt)
		}
		p.nextToken()
	}
	prog.Loc_ = jsast.SourceLocation{Start: start, End: p.curToken.Pos}
	return prog, p.errors
}
