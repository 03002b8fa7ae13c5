package transform

import "github.com/cwbudde/jsklve/internal/jsast"

// transformStatement rewrites one source statement into the sequence
// of statements that replace it. Most node kinds return exactly
// [before, rewritten, after]; BlockStatement and FunctionDeclaration
// are never reported and return a single statement; Return/While/For
// bracket themselves internally (see their handlers) rather than
// through the generic wrap below.
func (t *transformer) transformStatement(stmt jsast.Statement) []jsast.Statement {
	switch s := stmt.(type) {
	case *jsast.BlockStatement:
		t.scopes.push(&scopeFrame{})
		t.declareHoisted(s.Body)
		body := t.transformStatements(s.Body)
		t.scopes.pop()
		return []jsast.Statement{&jsast.BlockStatement{Loc_: s.Loc_, Body: body}}

	case *jsast.FunctionDeclaration:
		newBody := t.transformFunctionBody(s.Params, s.Body)
		return []jsast.Statement{&jsast.FunctionDeclaration{
			Loc_: s.Loc_, Name: s.Name, Params: s.Params, Body: newBody, Async: s.Async,
		}}

	case *jsast.ReturnStatement:
		return t.transformReturn(s)
	case *jsast.WhileStatement:
		return t.transformWhile(s)
	case *jsast.ForStatement:
		return t.transformFor(s)

	case *jsast.BreakStatement:
		return []jsast.Statement{s}

	default:
		return t.transformGenericStatement(s)
	}
}

func (t *transformer) reportStmt(s jsast.Statement, time string, value jsast.Expression) jsast.Statement {
	meta := t.buildMeta(s.Type(), time, s.Loc(), detailFor(s))
	if value == nil {
		value = undefinedIdent()
	}
	return &jsast.ExpressionStatement{Expression: t.nsReportCall(value, meta)}
}

func (t *transformer) transformGenericStatement(stmt jsast.Statement) []jsast.Statement {
	before := t.reportStmt(stmt, "before", nil)
	var rewritten jsast.Statement

	switch s := stmt.(type) {
	case *jsast.ExpressionStatement:
		rewritten = &jsast.ExpressionStatement{Loc_: s.Loc_, Expression: t.transformExpression(s.Expression, false)}
	case *jsast.VariableDeclaration:
		decls := make([]jsast.VariableDeclarator, len(s.Declarations))
		for i, d := range s.Declarations {
			var init jsast.Expression
			if d.Init != nil {
				init = t.transformExpression(d.Init, false)
			}
			decls[i] = jsast.VariableDeclarator{Id: d.Id, Init: init}
		}
		rewritten = &jsast.VariableDeclaration{Loc_: s.Loc_, Kind: s.Kind, Declarations: decls}
	case *jsast.IfStatement:
		test := t.transformExpression(s.Test, false)
		cons := t.normalizeBodyToStatement(s.Consequent)
		alt := t.normalizeBodyToStatement(s.Alternate)
		rewritten = &jsast.IfStatement{Loc_: s.Loc_, Test: test, Consequent: cons, Alternate: alt}
	case *jsast.ThrowStatement:
		rewritten = &jsast.ThrowStatement{Loc_: s.Loc_, Argument: t.transformExpression(s.Argument, false)}
	case *jsast.TryStatement:
		rewritten = t.transformTry(s)
	default:
		// Unrecognized statement kind: pass through unreported rather
		// than risk emitting an unbalanced report pair.
		return []jsast.Statement{stmt}
	}

	after := t.reportStmt(stmt, "after", nil)
	return []jsast.Statement{before, rewritten, after}
}

func (t *transformer) transformTry(s *jsast.TryStatement) *jsast.TryStatement {
	out := &jsast.TryStatement{Loc_: s.Loc_}

	t.scopes.push(&scopeFrame{})
	t.declareHoisted(s.Block.Body)
	out.Block = &jsast.BlockStatement{Loc_: s.Block.Loc_, Body: t.transformStatements(s.Block.Body)}
	t.scopes.pop()

	if s.Handler != nil {
		t.scopes.push(&scopeFrame{})
		if s.Handler.Param != nil {
			t.scopes.declare(s.Handler.Param.Name)
		}
		t.declareHoisted(s.Handler.Body.Body)
		out.Handler = &jsast.CatchClause{
			Loc_:  s.Handler.Loc_,
			Param: s.Handler.Param,
			Body:  &jsast.BlockStatement{Loc_: s.Handler.Body.Loc_, Body: t.transformStatements(s.Handler.Body.Body)},
		}
		t.scopes.pop()
	}

	if s.Finalizer != nil {
		t.scopes.push(&scopeFrame{})
		t.declareHoisted(s.Finalizer.Body)
		out.Finalizer = &jsast.BlockStatement{Loc_: s.Finalizer.Loc_, Body: t.transformStatements(s.Finalizer.Body)}
		t.scopes.pop()
	}
	return out
}

// transformReturn implements spec.md §4.1's rewrite: `return E;`
// becomes `NS.return = E; <after-report of NS.return>; return
// NS.return;` so the value is observable before the stack unwinds.
// There is no separate "after" statement following the actual
// `return` (unreachable), so the generic before/after wrap is not
// used here.
func (t *transformer) transformReturn(s *jsast.ReturnStatement) []jsast.Statement {
	before := t.reportStmt(s, "before", nil)

	var arg jsast.Expression = undefinedIdent()
	if s.Argument != nil {
		arg = t.transformExpression(s.Argument, false)
	}
	assign := &jsast.ExpressionStatement{
		Expression: &jsast.AssignmentExpression{Operator: "=", Left: t.nsReturnMember(), Right: arg},
	}
	after := t.reportStmt(s, "after", t.nsReturnMember())
	ret := &jsast.ReturnStatement{Loc_: s.Loc_, Argument: t.nsReturnMember()}
	return []jsast.Statement{before, assign, after, ret}
}

const loopTempName = "__jsklve_tmp"

// transformWhile implements `while (T) B` -> `{ while (true) { let tmp
// = <report T>; if (!tmp) break; B } }`. The test is transformed with
// reportBefore=true so it reports both a before and after event on
// every iteration; the temp's own frame is marked synthetic. The
// WhileStatement itself is reported before and after the rewritten block.
func (t *transformer) transformWhile(s *jsast.WhileStatement) []jsast.Statement {
	before := t.reportStmt(s, "before", nil)
	t.scopes.push(&scopeFrame{synthetic: true})
	t.scopes.declare(loopTempName)

	testExpr := t.transformExpression(s.Test, true)
	decl := &jsast.VariableDeclaration{Kind: "let", Declarations: []jsast.VariableDeclarator{
		{Id: &jsast.Identifier{Name: loopTempName}, Init: testExpr},
	}}
	ifBreak := &jsast.IfStatement{
		Test:       &jsast.UnaryExpression{Operator: "!", Argument: &jsast.Identifier{Name: loopTempName}},
		Consequent: &jsast.BlockStatement{Body: []jsast.Statement{&jsast.BreakStatement{}}},
	}
	body := t.normalizeBodyToStatement(s.Body)

	t.scopes.pop()

	innerBlock := &jsast.BlockStatement{Body: []jsast.Statement{decl, ifBreak, body}}
	loop := &jsast.WhileStatement{Loc_: s.Loc_, Test: &jsast.BooleanLiteral{Value: true}, Body: innerBlock}
	after := t.reportStmt(s, "after", nil)
	return []jsast.Statement{before, &jsast.BlockStatement{Body: []jsast.Statement{loop}}, after}
}

// transformFor implements `for (I; T; U) B` -> `{ I; while (true) {
// let tmp = <report T>; if (!tmp) break; B; U } }`, a missing I or U
// slot becoming a `null;` no-op and a missing T becoming `true`. I is
// itself a statement and runs through the ordinary statement dispatch,
// so it gets its own before/after bracket like any non-block statement.
// The ForStatement itself is reported before and after the rewritten block.
func (t *transformer) transformFor(s *jsast.ForStatement) []jsast.Statement {
	before := t.reportStmt(s, "before", nil)
	var initStmts []jsast.Statement
	switch init := s.Init.(type) {
	case *jsast.VariableDeclaration:
		initStmts = t.transformStatement(init)
	case *jsast.ExpressionStatement:
		initStmts = t.transformStatement(init)
	default:
		initStmts = []jsast.Statement{&jsast.ExpressionStatement{Expression: &jsast.NullLiteral{}}}
	}

	t.scopes.push(&scopeFrame{synthetic: true})
	t.scopes.declare(loopTempName)

	test := s.Test
	if test == nil {
		test = &jsast.BooleanLiteral{Value: true}
	}
	testExpr := t.transformExpression(test, true)
	decl := &jsast.VariableDeclaration{Kind: "let", Declarations: []jsast.VariableDeclarator{
		{Id: &jsast.Identifier{Name: loopTempName}, Init: testExpr},
	}}
	ifBreak := &jsast.IfStatement{
		Test:       &jsast.UnaryExpression{Operator: "!", Argument: &jsast.Identifier{Name: loopTempName}},
		Consequent: &jsast.BlockStatement{Body: []jsast.Statement{&jsast.BreakStatement{}}},
	}

	body := t.normalizeBodyToStatement(s.Body)

	var updateStmt jsast.Statement
	if s.Update != nil {
		updateStmt = &jsast.ExpressionStatement{Expression: t.transformExpression(s.Update, true)}
	} else {
		updateStmt = &jsast.ExpressionStatement{Expression: &jsast.NullLiteral{}}
	}

	t.scopes.pop()

	innerBlock := &jsast.BlockStatement{Body: []jsast.Statement{decl, ifBreak, body, updateStmt}}
	loop := &jsast.WhileStatement{Loc_: s.Loc_, Test: &jsast.BooleanLiteral{Value: true}, Body: innerBlock}

	outerBody := append(initStmts, loop)
	after := t.reportStmt(s, "after", nil)
	return []jsast.Statement{before, &jsast.BlockStatement{Body: outerBody}, after}
}
