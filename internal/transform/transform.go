// Package transform rewrites a jsast.Program so that, once printed
// back to source and executed, every expression and statement reports
// itself through the injected NS reporter (spec.md §4.1). It never
// mutates the input tree; it builds a fresh one, node by node.
package transform

import "github.com/cwbudde/jsklve/internal/jsast"

// transformer carries the per-invocation state threaded through the
// recursive rewrite: the gensym'd NS identifier, the running counter
// for NS.cache temporaries, and the lexical scope stack consulted at
// every report site.
type transformer struct {
	ns           string
	cacheCounter int
	scopes       *scopeStack
}

// Result is the outcome of Transform: the rewritten program plus the
// NS identifier the generated source expects internal/exec's
// bootstrap to bind.
type Result struct {
	Program *jsast.Program
	NSName  string
}

// Transform rewrites prog into its instrumented form.
func Transform(prog *jsast.Program) *Result {
	t := &transformer{ns: newNSName(), scopes: &scopeStack{}}
	t.scopes.push(&scopeFrame{})
	t.declareHoisted(prog.Body)
	body := t.transformStatements(prog.Body)
	t.scopes.pop()
	return &Result{
		Program: &jsast.Program{Loc_: prog.Loc_, Body: body},
		NSName:  t.ns,
	}
}

// transformStatements transforms a flat statement list in place
// (order preserved, each statement expanding to 1+ output statements)
// without pushing its own frame: callers push/pop around the calls
// that open a new lexical block (Program, BlockStatement, function
// bodies).
func (t *transformer) transformStatements(stmts []jsast.Statement) []jsast.Statement {
	var out []jsast.Statement
	for _, s := range stmts {
		out = append(out, t.transformStatement(s)...)
	}
	return out
}

// transformFunctionBody pushes a fresh frame for a function (or arrow)
// body, declares its parameters and hoisted bindings, and transforms
// its statement list.
func (t *transformer) transformFunctionBody(params []*jsast.Identifier, body *jsast.BlockStatement) *jsast.BlockStatement {
	t.scopes.push(&scopeFrame{})
	for _, p := range params {
		t.scopes.declare(p.Name)
	}
	t.declareHoisted(body.Body)
	newBody := t.transformStatements(body.Body)
	t.scopes.pop()
	return &jsast.BlockStatement{Loc_: body.Loc_, Body: newBody}
}

// normalizeBodyToStatement transforms a statement appearing in a
// single-statement body position (if/else branches, for/while
// bodies). A block body gets its own frame and is transformed
// directly; a non-block body is wrapped in a synthetic block so its
// (possibly multi-statement, before/after-bracketed) expansion has
// somewhere to live.
func (t *transformer) normalizeBodyToStatement(s jsast.Statement) jsast.Statement {
	if s == nil {
		return nil
	}
	if block, ok := s.(*jsast.BlockStatement); ok {
		t.scopes.push(&scopeFrame{})
		t.declareHoisted(block.Body)
		newBody := t.transformStatements(block.Body)
		t.scopes.pop()
		return &jsast.BlockStatement{Loc_: block.Loc_, Body: newBody}
	}
	t.scopes.push(&scopeFrame{})
	stmts := t.transformStatement(s)
	t.scopes.pop()
	return &jsast.BlockStatement{Loc_: s.Loc(), Body: stmts}
}
