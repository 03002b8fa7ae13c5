package jsparser

import (
	"strconv"

	"github.com/cwbudde/jsklve/internal/jsast"
	"github.com/cwbudde/jsklve/internal/jslexer"
)

func (p *Parser) parseExpression(precedence int) jsast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.addError("unexpected token %q", p.curToken.Literal)
		return nil
	}
	left := prefix()

	for p.peekToken.Type != jslexer.SEMICOLON && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

// parseSequenceOrExpression parses a comma-separated expression sequence and
// returns the resulting jsast.Expression — a lone Expression if there
// is only one, otherwise a SequenceExpression.
func (p *Parser) parseSequenceOrExpression() jsast.Expression {
	start := p.curToken.Pos
	first := p.parseExpression(LOWEST)
	if p.peekToken.Type != jslexer.COMMA {
		return first
	}
	exprs := []jsast.Expression{first}
	for p.peekToken.Type == jslexer.COMMA {
		p.nextToken()
		p.nextToken()
		exprs = append(exprs, p.parseExpression(LOWEST))
	}
	return &jsast.SequenceExpression{Loc_: p.loc(start), Expressions: exprs}
}

func (p *Parser) parseIdentifier() jsast.Expression {
	return &jsast.Identifier{Loc_: p.loc(p.curToken.Pos), Name: p.curToken.Literal}
}

func (p *Parser) parseNumericLiteral() jsast.Expression {
	val, _ := strconv.ParseFloat(p.curToken.Literal, 64)
	return &jsast.NumericLiteral{Loc_: p.loc(p.curToken.Pos), Value: val, Raw: p.curToken.Literal}
}

func (p *Parser) parseStringLiteral() jsast.Expression {
	return &jsast.StringLiteral{Loc_: p.loc(p.curToken.Pos), Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() jsast.Expression {
	return &jsast.BooleanLiteral{Loc_: p.loc(p.curToken.Pos), Value: p.curToken.Type == jslexer.TRUE}
}

func (p *Parser) parseNullLiteral() jsast.Expression {
	return &jsast.NullLiteral{Loc_: p.loc(p.curToken.Pos)}
}

func (p *Parser) parseUnaryExpression() jsast.Expression {
	start := p.curToken.Pos
	op := p.curToken.Literal
	p.nextToken()
	arg := p.parseExpression(PREFIX)
	return &jsast.UnaryExpression{Loc_: p.loc(start), Operator: op, Argument: arg}
}

func (p *Parser) parsePrefixUpdateExpression() jsast.Expression {
	start := p.curToken.Pos
	op := p.curToken.Literal
	p.nextToken()
	arg := p.parseExpression(PREFIX)
	return &jsast.UpdateExpression{Loc_: p.loc(start), Operator: op, Prefix: true, Argument: arg}
}

func (p *Parser) parsePostfixUpdateExpression(left jsast.Expression) jsast.Expression {
	return &jsast.UpdateExpression{
		Loc_:     jsast.SourceLocation{Start: left.Loc().Start, End: p.curToken.Pos},
		Operator: p.curToken.Literal,
		Prefix:   false,
		Argument: left,
	}
}

func (p *Parser) parseBinaryExpression(left jsast.Expression) jsast.Expression {
	start := left.Loc().Start
	op := p.curToken.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &jsast.BinaryExpression{Loc_: jsast.SourceLocation{Start: start, End: p.curToken.Pos}, Operator: op, Left: left, Right: right}
}

func (p *Parser) parseLogicalExpression(left jsast.Expression) jsast.Expression {
	start := left.Loc().Start
	op := p.curToken.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &jsast.LogicalExpression{Loc_: jsast.SourceLocation{Start: start, End: p.curToken.Pos}, Operator: op, Left: left, Right: right}
}

func (p *Parser) parseAssignmentExpression(left jsast.Expression) jsast.Expression {
	start := left.Loc().Start
	op := p.curToken.Literal
	p.nextToken()
	right := p.parseExpression(ASSIGN - 1) // right-associative
	return &jsast.AssignmentExpression{Loc_: jsast.SourceLocation{Start: start, End: p.curToken.Pos}, Operator: op, Left: left, Right: right}
}

func (p *Parser) parseConditionalExpression(test jsast.Expression) jsast.Expression {
	start := test.Loc().Start
	p.nextToken()
	cons := p.parseExpression(ASSIGN)
	if !p.expectPeek(jslexer.COLON, "':'") {
		return nil
	}
	p.nextToken()
	alt := p.parseExpression(ASSIGN)
	return &jsast.ConditionalExpression{Loc_: jsast.SourceLocation{Start: start, End: p.curToken.Pos}, Test: test, Consequent: cons, Alternate: alt}
}

func (p *Parser) parseMemberExpression(obj jsast.Expression) jsast.Expression {
	optional := p.curToken.Type == jslexer.OPTIONAL_DOT
	if !p.expectPeek(jslexer.IDENT, "property name") {
		return nil
	}
	prop := &jsast.Identifier{Loc_: p.loc(p.curToken.Pos), Name: p.curToken.Literal}
	return &jsast.MemberExpression{
		Loc_:     jsast.SourceLocation{Start: obj.Loc().Start, End: p.curToken.Pos},
		Object:   obj,
		Property: prop,
		Computed: false,
		Optional: optional,
	}
}

func (p *Parser) parseComputedMemberExpression(obj jsast.Expression) jsast.Expression {
	p.nextToken()
	prop := p.parseExpression(LOWEST)
	if !p.expectPeek(jslexer.RBRACKET, "']'") {
		return nil
	}
	return &jsast.MemberExpression{
		Loc_:     jsast.SourceLocation{Start: obj.Loc().Start, End: p.curToken.Pos},
		Object:   obj,
		Property: prop,
		Computed: true,
	}
}

func (p *Parser) parseCallExpression(callee jsast.Expression) jsast.Expression {
	start := callee.Loc().Start
	args := p.parseArgumentList()
	return &jsast.CallExpression{Loc_: jsast.SourceLocation{Start: start, End: p.curToken.Pos}, Callee: callee, Arguments: args}
}

func (p *Parser) parseArgumentList() []jsast.Expression {
	var args []jsast.Expression
	if p.peekToken.Type == jslexer.RPAREN {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.parseExpression(ASSIGN))
	for p.peekToken.Type == jslexer.COMMA {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(ASSIGN))
	}
	if !p.expectPeek(jslexer.RPAREN, "')'") {
		return args
	}
	return args
}

func (p *Parser) parseNewExpression() jsast.Expression {
	start := p.curToken.Pos
	p.nextToken()
	callee := p.parseExpression(CALL)
	// parseExpression(CALL) stops before a trailing `(`; consume that
	// argument list here so it belongs to the NewExpression.
	if p.peekToken.Type == jslexer.LPAREN {
		p.nextToken()
		args := p.parseArgumentList()
		return &jsast.NewExpression{Loc_: jsast.SourceLocation{Start: start, End: p.curToken.Pos}, Callee: callee, Arguments: args}
	}
	return &jsast.NewExpression{Loc_: jsast.SourceLocation{Start: start, End: p.curToken.Pos}, Callee: callee, Arguments: nil}
}

func (p *Parser) parseArrayExpression() jsast.Expression {
	start := p.curToken.Pos
	var elements []jsast.Expression
	if p.peekToken.Type == jslexer.RBRACKET {
		p.nextToken()
		return &jsast.ArrayExpression{Loc_: p.loc(start), Elements: elements}
	}
	p.nextToken()
	elements = append(elements, p.parseExpression(ASSIGN))
	for p.peekToken.Type == jslexer.COMMA {
		p.nextToken()
		p.nextToken()
		elements = append(elements, p.parseExpression(ASSIGN))
	}
	p.expectPeek(jslexer.RBRACKET, "']'")
	return &jsast.ArrayExpression{Loc_: p.loc(start), Elements: elements}
}

func (p *Parser) parseObjectExpression() jsast.Expression {
	start := p.curToken.Pos
	var props []jsast.Property
	if p.peekToken.Type == jslexer.RBRACE {
		p.nextToken()
		return &jsast.ObjectExpression{Loc_: p.loc(start), Properties: props}
	}
	for {
		p.nextToken()
		props = append(props, p.parseObjectProperty())
		if p.peekToken.Type != jslexer.COMMA {
			break
		}
		p.nextToken()
		if p.peekToken.Type == jslexer.RBRACE {
			break
		}
	}
	p.expectPeek(jslexer.RBRACE, "'}'")
	return &jsast.ObjectExpression{Loc_: p.loc(start), Properties: props}
}

func (p *Parser) parseObjectProperty() jsast.Property {
	if p.curToken.Type == jslexer.LBRACKET {
		p.nextToken()
		key := p.parseExpression(LOWEST)
		p.expectPeek(jslexer.RBRACKET, "']'")
		p.expectPeek(jslexer.COLON, "':'")
		p.nextToken()
		value := p.parseExpression(ASSIGN)
		return jsast.Property{Key: key, Value: value, Computed: true}
	}

	var key jsast.Expression
	switch p.curToken.Type {
	case jslexer.STRING:
		key = &jsast.StringLiteral{Loc_: p.loc(p.curToken.Pos), Value: p.curToken.Literal}
	case jslexer.NUMBER:
		val, _ := strconv.ParseFloat(p.curToken.Literal, 64)
		key = &jsast.NumericLiteral{Loc_: p.loc(p.curToken.Pos), Value: val, Raw: p.curToken.Literal}
	default:
		key = &jsast.Identifier{Loc_: p.loc(p.curToken.Pos), Name: p.curToken.Literal}
	}

	if p.peekToken.Type == jslexer.COLON {
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(ASSIGN)
		return jsast.Property{Key: key, Value: value}
	}

	// Shorthand { x } === { x: x }
	ident, _ := key.(*jsast.Identifier)
	return jsast.Property{Key: key, Value: ident, Shorthand: true}
}

// parseParenOrArrow disambiguates a parenthesized expression from an
// arrow function's parameter list by scanning ahead for `=>`.
func (p *Parser) parseParenOrArrow() jsast.Expression {
	if p.looksLikeArrowParams() {
		return p.parseArrowFunction(false)
	}
	start := p.curToken.Pos
	p.nextToken()
	expr := p.parseSequenceOrExpression()
	p.expectPeek(jslexer.RPAREN, "')'")
	if expr != nil {
		if id, ok := expr.(*jsast.Identifier); ok {
			_ = id
		}
	}
	_ = start
	return expr
}

// looksLikeArrowParams performs bounded lookahead over the current
// `(...)` group (curToken is LPAREN) to see whether it is followed by
// `=>`. It does not mutate parser state.
func (p *Parser) looksLikeArrowParams() bool {
	save := *p.l
	curTok, peekTok := p.curToken, p.peekToken
	depth := 0
	tok := p.curToken
	for {
		if tok.Type == jslexer.LPAREN {
			depth++
		} else if tok.Type == jslexer.RPAREN {
			depth--
			if depth == 0 {
				break
			}
		} else if tok.Type == jslexer.EOF {
			*p.l = save
			p.curToken, p.peekToken = curTok, peekTok
			return false
		}
		tok = p.peekToken
		p.nextToken()
	}
	// curToken is now the closing `)`, so peekToken is what follows it.
	result := p.peekToken.Type == jslexer.ARROW
	*p.l = save
	p.curToken, p.peekToken = curTok, peekTok
	return result
}

func (p *Parser) parseAsyncPrefix() jsast.Expression {
	if p.peekToken.Type == jslexer.FUNCTION {
		p.nextToken()
		fn := p.parseFunctionExpression().(*jsast.FunctionExpression)
		fn.Async = true
		return fn
	}
	p.nextToken()
	arrow := p.parseArrowFunction(true)
	return arrow
}

func (p *Parser) parseArrowFunction(async bool) jsast.Expression {
	start := p.curToken.Pos
	var params []*jsast.Identifier
	if p.curToken.Type == jslexer.IDENT {
		params = append(params, &jsast.Identifier{Loc_: p.loc(p.curToken.Pos), Name: p.curToken.Literal})
	} else {
		// curToken is LPAREN
		if p.peekToken.Type != jslexer.RPAREN {
			p.nextToken()
			params = append(params, &jsast.Identifier{Loc_: p.loc(p.curToken.Pos), Name: p.curToken.Literal})
			for p.peekToken.Type == jslexer.COMMA {
				p.nextToken()
				p.nextToken()
				params = append(params, &jsast.Identifier{Loc_: p.loc(p.curToken.Pos), Name: p.curToken.Literal})
			}
		}
		p.expectPeek(jslexer.RPAREN, "')'")
	}
	if !p.expectPeek(jslexer.ARROW, "'=>'") {
		return nil
	}
	p.nextToken()
	if p.curToken.Type == jslexer.LBRACE {
		body := p.parseBlockStatement()
		return &jsast.ArrowFunctionExpression{Loc_: p.loc(start), Params: params, Body: body, Async: async}
	}
	body := p.parseExpression(ASSIGN)
	return &jsast.ArrowFunctionExpression{Loc_: p.loc(start), Params: params, Body: body, ExpressionBody: true, Async: async}
}

func (p *Parser) parseFunctionExpression() jsast.Expression {
	start := p.curToken.Pos
	name := ""
	if p.peekToken.Type == jslexer.IDENT {
		p.nextToken()
		name = p.curToken.Literal
	}
	params := p.parseFunctionParams()
	p.expectPeek(jslexer.LBRACE, "'{'")
	body := p.parseBlockStatement()
	return &jsast.FunctionExpression{Loc_: p.loc(start), Name: name, Params: params, Body: body}
}

func (p *Parser) parseFunctionParams() []*jsast.Identifier {
	var params []*jsast.Identifier
	if !p.expectPeek(jslexer.LPAREN, "'('") {
		return params
	}
	if p.peekToken.Type == jslexer.RPAREN {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, &jsast.Identifier{Loc_: p.loc(p.curToken.Pos), Name: p.curToken.Literal})
	for p.peekToken.Type == jslexer.COMMA {
		p.nextToken()
		p.nextToken()
		params = append(params, &jsast.Identifier{Loc_: p.loc(p.curToken.Pos), Name: p.curToken.Literal})
	}
	p.expectPeek(jslexer.RPAREN, "')'")
	return params
}
