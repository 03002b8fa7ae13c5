package jsparser

import (
	"github.com/cwbudde/jsklve/internal/jsast"
	"github.com/cwbudde/jsklve/internal/jslexer"
)

func (p *Parser) parseStatement() jsast.Statement {
	switch p.curToken.Type {
	case jslexer.VAR, jslexer.LET, jslexer.CONST:
		return p.parseVariableDeclaration()
	case jslexer.LBRACE:
		return p.parseBlockStatement()
	case jslexer.IF:
		return p.parseIfStatement()
	case jslexer.FOR:
		return p.parseForStatement()
	case jslexer.WHILE:
		return p.parseWhileStatement()
	case jslexer.RETURN:
		return p.parseReturnStatement()
	case jslexer.THROW:
		return p.parseThrowStatement()
	case jslexer.TRY:
		return p.parseTryStatement()
	case jslexer.FUNCTION:
		return p.parseFunctionDeclaration()
	case jslexer.BREAK:
		return p.parseBreakStatement()
	case jslexer.SEMICOLON:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() jsast.Statement {
	start := p.curToken.Pos
	expr := p.parseSequenceOrExpression()
	stmt := &jsast.ExpressionStatement{Loc_: p.loc(start), Expression: expr}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseBlockStatement() *jsast.BlockStatement {
	start := p.curToken.Pos
	block := &jsast.BlockStatement{}
	p.nextToken()
	for p.curToken.Type != jslexer.RBRACE && p.curToken.Type != jslexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Body = append(block.Body, stmt)
		}
		p.nextToken()
	}
	block.Loc_ = p.loc(start)
	return block
}

func (p *Parser) parseVariableDeclaration() jsast.Statement {
	start := p.curToken.Pos
	kind := p.curToken.Literal
	decl := &jsast.VariableDeclaration{Kind: kind}

	for {
		if !p.expectPeek(jslexer.IDENT, "identifier") {
			break
		}
		id := &jsast.Identifier{Loc_: p.loc(p.curToken.Pos), Name: p.curToken.Literal}
		var init jsast.Expression
		if p.peekToken.Type == jslexer.ASSIGN {
			p.nextToken()
			p.nextToken()
			init = p.parseExpression(ASSIGN)
		}
		decl.Declarations = append(decl.Declarations, jsast.VariableDeclarator{Id: id, Init: init})
		if p.peekToken.Type != jslexer.COMMA {
			break
		}
		p.nextToken()
	}
	decl.Loc_ = p.loc(start)
	p.consumeSemicolon()
	return decl
}

func (p *Parser) parseIfStatement() jsast.Statement {
	start := p.curToken.Pos
	if !p.expectPeek(jslexer.LPAREN, "'('") {
		return nil
	}
	p.nextToken()
	test := p.parseExpression(LOWEST)
	if !p.expectPeek(jslexer.RPAREN, "')'") {
		return nil
	}
	p.nextToken()
	consequent := p.parseStatement()

	stmt := &jsast.IfStatement{Test: test, Consequent: consequent}
	if p.peekToken.Type == jslexer.ELSE {
		p.nextToken()
		p.nextToken()
		stmt.Alternate = p.parseStatement()
	}
	stmt.Loc_ = p.loc(start)
	return stmt
}

func (p *Parser) parseWhileStatement() jsast.Statement {
	start := p.curToken.Pos
	if !p.expectPeek(jslexer.LPAREN, "'('") {
		return nil
	}
	p.nextToken()
	test := p.parseExpression(LOWEST)
	if !p.expectPeek(jslexer.RPAREN, "')'") {
		return nil
	}
	p.nextToken()
	body := p.parseStatement()
	return &jsast.WhileStatement{Loc_: p.loc(start), Test: test, Body: body}
}

func (p *Parser) parseForStatement() jsast.Statement {
	start := p.curToken.Pos
	if !p.expectPeek(jslexer.LPAREN, "'('") {
		return nil
	}

	var init jsast.Node
	if p.peekToken.Type == jslexer.SEMICOLON {
		p.nextToken()
	} else {
		p.nextToken()
		if p.curToken.Type == jslexer.VAR || p.curToken.Type == jslexer.LET || p.curToken.Type == jslexer.CONST {
			init = p.parseVariableDeclaration()
		} else {
			initStart := p.curToken.Pos
			expr := p.parseExpression(LOWEST)
			init = &jsast.ExpressionStatement{Loc_: p.loc(initStart), Expression: expr}
			if !p.expectPeek(jslexer.SEMICOLON, "';'") {
				return nil
			}
		}
	}

	var test jsast.Expression
	if p.peekToken.Type != jslexer.SEMICOLON {
		p.nextToken()
		test = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(jslexer.SEMICOLON, "';'") {
		return nil
	}

	var update jsast.Expression
	if p.peekToken.Type != jslexer.RPAREN {
		p.nextToken()
		update = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(jslexer.RPAREN, "')'") {
		return nil
	}

	p.nextToken()
	body := p.parseStatement()
	return &jsast.ForStatement{Loc_: p.loc(start), Init: init, Test: test, Update: update, Body: body}
}

func (p *Parser) parseReturnStatement() jsast.Statement {
	start := p.curToken.Pos
	stmt := &jsast.ReturnStatement{}
	if p.peekToken.Type != jslexer.SEMICOLON && !p.peekToken.NewlineBefore && p.peekToken.Type != jslexer.RBRACE {
		p.nextToken()
		stmt.Argument = p.parseExpression(LOWEST)
	}
	stmt.Loc_ = p.loc(start)
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseThrowStatement() jsast.Statement {
	start := p.curToken.Pos
	p.nextToken()
	arg := p.parseExpression(LOWEST)
	stmt := &jsast.ThrowStatement{Loc_: p.loc(start), Argument: arg}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseTryStatement() jsast.Statement {
	start := p.curToken.Pos
	if !p.expectPeek(jslexer.LBRACE, "'{'") {
		return nil
	}
	block := p.parseBlockStatement()
	stmt := &jsast.TryStatement{Block: block}

	if p.peekToken.Type == jslexer.CATCH {
		p.nextToken()
		handler := &jsast.CatchClause{}
		if p.peekToken.Type == jslexer.LPAREN {
			p.nextToken()
			p.nextToken()
			handler.Param = &jsast.Identifier{Loc_: p.loc(p.curToken.Pos), Name: p.curToken.Literal}
			p.expectPeek(jslexer.RPAREN, "')'")
		}
		if !p.expectPeek(jslexer.LBRACE, "'{'") {
			return nil
		}
		handler.Body = p.parseBlockStatement()
		stmt.Handler = handler
	}

	if p.peekToken.Type == jslexer.FINALLY {
		p.nextToken()
		if !p.expectPeek(jslexer.LBRACE, "'{'") {
			return nil
		}
		stmt.Finalizer = p.parseBlockStatement()
	}

	stmt.Loc_ = p.loc(start)
	return stmt
}

func (p *Parser) parseBreakStatement() jsast.Statement {
	start := p.curToken.Pos
	stmt := &jsast.BreakStatement{Loc_: p.loc(start)}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseFunctionDeclaration() jsast.Statement {
	start := p.curToken.Pos
	if !p.expectPeek(jslexer.IDENT, "function name") {
		return nil
	}
	name := p.curToken.Literal
	params := p.parseFunctionParams()
	p.expectPeek(jslexer.LBRACE, "'{'")
	body := p.parseBlockStatement()
	return &jsast.FunctionDeclaration{Loc_: p.loc(start), Name: name, Params: params, Body: body}
}
