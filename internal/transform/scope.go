package transform

import "github.com/cwbudde/jsklve/internal/jsast"

// scopeFrame is one lexical frame tracked while walking the AST.
// synthetic frames (the loop-test temporary's block) are suffixed
// " (!)" in their snapshot and, when skip is set, omitted from
// snapshots entirely (see spec.md §4.1's "synthetic if-break scope").
type scopeFrame struct {
	names     []string
	synthetic bool
	skip      bool
}

func (f *scopeFrame) declare(name string) {
	for _, n := range f.names {
		if n == name {
			return
		}
	}
	f.names = append(f.names, name)
}

type scopeStack struct {
	frames []*scopeFrame
}

func (s *scopeStack) push(f *scopeFrame) { s.frames = append(s.frames, f) }

func (s *scopeStack) pop() { s.frames = s.frames[:len(s.frames)-1] }

func (s *scopeStack) declare(name string) {
	if len(s.frames) == 0 {
		return
	}
	s.frames[len(s.frames)-1].declare(name)
}

// snapshotExpr builds the array-of-object-literals expression the
// transformer embeds in every report call's meta.scopes field, one
// entry per non-skip frame, innermost last.
func (t *transformer) snapshotExpr() jsast.Expression {
	arr := &jsast.ArrayExpression{}
	for _, f := range t.scopes.frames {
		if f.skip {
			continue
		}
		obj := &jsast.ObjectExpression{}
		for _, name := range f.names {
			key := name
			if f.synthetic {
				key = name + " (!)"
			}
			obj.Properties = append(obj.Properties, jsast.Property{
				Key:   &jsast.StringLiteral{Value: key},
				Value: t.nsDescribeCall(guardedRead(name)),
			})
		}
		arr.Elements = append(arr.Elements, obj)
	}
	return arr
}

// guardedRead builds `(() => { try { return <name>; } catch { } })()`
// so a temporal-dead-zone or undeclared read produces no scope entry
// instead of throwing.
func guardedRead(name string) jsast.Expression {
	tryStmt := &jsast.TryStatement{
		Block: &jsast.BlockStatement{
			Body: []jsast.Statement{
				&jsast.ReturnStatement{Argument: &jsast.Identifier{Name: name}},
			},
		},
		Handler: &jsast.CatchClause{Body: &jsast.BlockStatement{}},
	}
	arrow := &jsast.ArrowFunctionExpression{
		Body: &jsast.BlockStatement{Body: []jsast.Statement{tryStmt}},
	}
	// A one-element SequenceExpression prints as `(<arrow>)`, giving the
	// call its required parentheses around the arrow.
	return &jsast.CallExpression{Callee: &jsast.SequenceExpression{Expressions: []jsast.Expression{arrow}}}
}

// declareHoisted scans a statement list (not descending into nested
// blocks/functions) for var/let/const and function-declaration names
// and declares them all into the current frame up front. Listing a
// name before its initializer runs is safe: guardedRead's try/catch
// simply produces no entry until the binding is live.
func (t *transformer) declareHoisted(stmts []jsast.Statement) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *jsast.VariableDeclaration:
			for _, d := range s.Declarations {
				t.scopes.declare(d.Id.Name)
			}
		case *jsast.FunctionDeclaration:
			t.scopes.declare(s.Name)
		}
	}
}
