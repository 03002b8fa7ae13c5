package transform

import "github.com/cwbudde/jsklve/internal/jsast"

// reportCallExpr builds a single `NS.report(value, meta)` call for
// node at the given time phase.
func (t *transformer) reportCallExpr(node jsast.Node, time string, value jsast.Expression) jsast.Expression {
	meta := t.buildMeta(node.Type(), time, node.Loc(), detailFor(node))
	return t.nsReportCall(value, meta)
}

// wrap is the generic expression-reporting combinator from spec.md
// §4.1: replace E with `(maybeBefore, ...extra, NS.report(value,
// meta_after))`. maybeBefore is a real before-report when reportBefore
// is set (loop tests/updates), otherwise a null literal placeholder.
// extra holds any side-effecting expressions (an assignment, a cache
// stash) that must run between the before report and the final after
// report.
func (t *transformer) wrap(node jsast.Node, reportBefore bool, extra []jsast.Expression, value jsast.Expression) jsast.Expression {
	var parts []jsast.Expression
	if reportBefore {
		parts = append(parts, t.reportCallExpr(node, "before", undefinedIdent()))
	} else {
		parts = append(parts, &jsast.NullLiteral{})
	}
	parts = append(parts, extra...)
	parts = append(parts, t.reportCallExpr(node, "after", value))
	return &jsast.SequenceExpression{Expressions: parts}
}

// transformExpression is the expression visitor. reportBefore is only
// ever true for the top-level call made on a while/for loop's test or
// a for loop's update (spec.md §4.1's `_reportBefore` marking); every
// recursive call on a sub-expression passes false.
func (t *transformer) transformExpression(expr jsast.Expression, reportBefore bool) jsast.Expression {
	switch e := expr.(type) {
	case nil:
		return nil

	case *jsast.Identifier:
		return t.wrap(e, reportBefore, nil, e)

	case *jsast.NumericLiteral, *jsast.StringLiteral:
		// Scalar literals are reportable leaves (literals.numeric,
		// literals.string in the node-type filter table) so a bare
		// `1;` or `"x";` statement still produces a step.
		return t.wrap(e, reportBefore, nil, expr)

	case *jsast.BooleanLiteral, *jsast.NullLiteral:
		// Unlike Numeric/StringLiteral, Boolean/Null have no filter
		// table entry (they default to "keep" and are never worth
		// gating); they carry no read/compute action worth reporting
		// on their own and surface only as sub-expressions of a
		// reported parent (e.g. a BinaryExpression's operands).
		return expr

	case *jsast.MemberExpression:
		obj := t.transformExpression(e.Object, false)
		var prop jsast.Expression = e.Property
		if e.Computed {
			prop = t.transformExpression(e.Property, false)
		}
		rebuilt := &jsast.MemberExpression{Object: obj, Property: prop, Computed: e.Computed, Optional: e.Optional}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.ArrayExpression:
		elems := make([]jsast.Expression, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = t.transformExpression(el, false)
		}
		rebuilt := &jsast.ArrayExpression{Elements: elems}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.ObjectExpression:
		props := make([]jsast.Property, len(e.Properties))
		for i, p := range e.Properties {
			key := p.Key
			if p.Computed {
				key = t.transformExpression(p.Key, false)
			}
			props[i] = jsast.Property{Key: key, Value: t.transformExpression(p.Value, false), Computed: p.Computed, Shorthand: p.Shorthand}
		}
		rebuilt := &jsast.ObjectExpression{Properties: props}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.UnaryExpression:
		arg := t.transformExpression(e.Argument, false)
		rebuilt := &jsast.UnaryExpression{Operator: e.Operator, Argument: arg}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.BinaryExpression:
		left := t.transformExpression(e.Left, false)
		right := t.transformExpression(e.Right, false)
		rebuilt := &jsast.BinaryExpression{Operator: e.Operator, Left: left, Right: right}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.LogicalExpression:
		left := t.transformExpression(e.Left, false)
		right := t.transformExpression(e.Right, false)
		rebuilt := &jsast.LogicalExpression{Operator: e.Operator, Left: left, Right: right}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.SequenceExpression:
		exprs := make([]jsast.Expression, len(e.Expressions))
		for i, x := range e.Expressions {
			exprs[i] = t.transformExpression(x, false)
		}
		rebuilt := &jsast.SequenceExpression{Expressions: exprs}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.ConditionalExpression:
		test := t.transformExpression(e.Test, false)
		cons := t.transformExpression(e.Consequent, false)
		alt := t.transformExpression(e.Alternate, false)
		rebuilt := &jsast.ConditionalExpression{Test: test, Consequent: cons, Alternate: alt}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.AssignmentExpression:
		left := t.transformAssignmentTarget(e.Left)
		right := t.transformExpression(e.Right, false)
		rebuilt := &jsast.AssignmentExpression{Operator: e.Operator, Left: left, Right: right}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.UpdateExpression:
		return t.transformUpdate(e, reportBefore)

	case *jsast.CallExpression:
		return t.transformCall(e, reportBefore)

	case *jsast.NewExpression:
		callee := t.transformExpression(e.Callee, false)
		args := make([]jsast.Expression, len(e.Arguments))
		for i, a := range e.Arguments {
			args[i] = t.transformExpression(a, false)
		}
		rebuilt := &jsast.NewExpression{Callee: callee, Arguments: args}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.FunctionExpression:
		newBody := t.transformFunctionBody(e.Params, e.Body)
		rebuilt := &jsast.FunctionExpression{Name: e.Name, Params: e.Params, Body: newBody, Async: e.Async, Generator: e.Generator}
		return t.wrap(e, reportBefore, nil, rebuilt)

	case *jsast.ArrowFunctionExpression:
		return t.transformArrow(e, reportBefore)

	default:
		return expr
	}
}

// repeatable reports whether printing e more than once is safe: it
// carries no embedded NS.report call and no side-effecting sub-read,
// so re-emitting its text costs nothing and reports nothing extra.
func repeatable(e jsast.Expression) bool {
	switch e.(type) {
	case *jsast.Identifier, *jsast.NumericLiteral, *jsast.StringLiteral, *jsast.BooleanLiteral, *jsast.NullLiteral:
		return true
	default:
		return false
	}
}

// cacheRepeatable returns an expression equivalent to value that is
// safe to reference from more than one scaffold position: value
// itself when already repeatable, or a fresh NS.cache slot (with the
// one-time stash appended to *setup) otherwise. This is what makes
// "evaluate the target exactly once, then read it again" possible
// without reprinting (and thus re-evaluating/re-reporting) whatever
// instrumentation value already embeds.
func (t *transformer) cacheRepeatable(value jsast.Expression, setup *[]jsast.Expression) jsast.Expression {
	if repeatable(value) {
		return value
	}
	slot := t.nsCacheSlot(t.nextCacheSlot())
	*setup = append(*setup, &jsast.AssignmentExpression{Operator: "=", Left: slot, Right: value})
	return slot
}

// materializeRepeatableTarget takes an already-instrumented assignment
// target (as produced by transformAssignmentTarget) and returns a
// structurally equivalent expression safe to print more than once,
// caching its object and (if computed) property exactly once via
// cacheRepeatable, plus the setup expressions that stash does.
func (t *transformer) materializeRepeatableTarget(target jsast.Expression) (jsast.Expression, []jsast.Expression) {
	member, ok := target.(*jsast.MemberExpression)
	if !ok {
		return target, nil
	}
	var setup []jsast.Expression
	obj := t.cacheRepeatable(member.Object, &setup)
	prop := member.Property
	if member.Computed {
		prop = t.cacheRepeatable(member.Property, &setup)
	}
	return &jsast.MemberExpression{Object: obj, Property: prop, Computed: member.Computed, Optional: member.Optional}, setup
}

// transformAssignmentTarget marks an assignment/update's left-hand
// side "done": the LHS itself is never reported as a read, but per
// spec.md §9's Open Question resolution, a *computed* property nested
// inside the chain remains reportable.
func (t *transformer) transformAssignmentTarget(left jsast.Expression) jsast.Expression {
	switch l := left.(type) {
	case *jsast.Identifier:
		return l
	case *jsast.MemberExpression:
		obj := l.Object
		if nested, ok := l.Object.(*jsast.MemberExpression); ok {
			obj = t.transformAssignmentTarget(nested)
		}
		prop := l.Property
		if l.Computed {
			prop = t.transformExpression(l.Property, false)
		}
		return &jsast.MemberExpression{Object: obj, Property: prop, Computed: l.Computed, Optional: l.Optional}
	default:
		return left
	}
}

// transformUpdate implements spec.md §4.1's prefix/postfix rewrite.
// The target's object and (if computed) property are evaluated and
// reported exactly once via materializeRepeatableTarget; every scaffold
// position below (assign.Left, the binary re-read, the stash/update
// pair) reuses that cached, side-effect-free form instead of reprinting
// the original, possibly report-embedding, target expression.
func (t *transformer) transformUpdate(e *jsast.UpdateExpression, reportBefore bool) jsast.Expression {
	instrumented := t.transformAssignmentTarget(e.Argument)
	target, setup := t.materializeRepeatableTarget(instrumented)
	delta := "+"
	if e.Operator == "--" {
		delta = "-"
	}

	if e.Prefix {
		assign := &jsast.AssignmentExpression{
			Operator: "=",
			Left:     target,
			Right:    &jsast.BinaryExpression{Operator: delta, Left: target, Right: &jsast.NumericLiteral{Value: 1, Raw: "1"}},
		}
		extra := append(setup, assign)
		return t.wrap(e, reportBefore, extra, target)
	}

	slot := t.nsCacheSlot(t.nextCacheSlot())
	stash := &jsast.AssignmentExpression{Operator: "=", Left: slot, Right: target}
	update := &jsast.AssignmentExpression{
		Operator: "=",
		Left:     target,
		Right:    &jsast.BinaryExpression{Operator: delta, Left: target, Right: &jsast.NumericLiteral{Value: 1, Raw: "1"}},
	}
	extra := append(setup, stash, update)
	return t.wrap(e, reportBefore, extra, slot)
}

// transformCall implements spec.md §4.1's receiver-identity trick: a
// method call `o.m(a, b)` caches `o` once into NS.cache so it is
// evaluated exactly once, reports the callee member access, and
// invokes `t.m.call(t, a, b)`.
func (t *transformer) transformCall(e *jsast.CallExpression, reportBefore bool) jsast.Expression {
	args := make([]jsast.Expression, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = t.transformExpression(a, false)
	}

	member, isMember := e.Callee.(*jsast.MemberExpression)
	if !isMember {
		calleeExpr := t.transformExpression(e.Callee, false)
		call := &jsast.CallExpression{
			Callee:    &jsast.MemberExpression{Object: calleeExpr, Property: &jsast.Identifier{Name: "call"}},
			Arguments: append([]jsast.Expression{undefinedIdent()}, args...),
		}
		return t.wrap(e, reportBefore, nil, call)
	}

	slot := t.nsCacheSlot(t.nextCacheSlot())
	objTransformed := t.transformExpression(member.Object, false)
	setup := []jsast.Expression{&jsast.AssignmentExpression{Operator: "=", Left: slot, Right: objTransformed}}

	// A computed method name (o[f()]()) may itself carry a reported
	// sub-expression; cache it once so calleeMember is safe to print
	// both in calleeReport's wrap() call and as call.Callee.Object
	// below without evaluating/reporting the property access twice.
	var prop jsast.Expression = member.Property
	if member.Computed {
		prop = t.cacheRepeatable(t.transformExpression(member.Property, false), &setup)
	}
	calleeMember := &jsast.MemberExpression{Object: slot, Property: prop, Computed: member.Computed, Optional: member.Optional}
	calleeReport := t.wrap(member, false, nil, calleeMember)
	setup = append(setup, calleeReport)

	call := &jsast.CallExpression{
		Callee:    &jsast.MemberExpression{Object: calleeMember, Property: &jsast.Identifier{Name: "call"}},
		Arguments: append([]jsast.Expression{slot}, args...),
	}
	return t.wrap(e, reportBefore, setup, call)
}

// transformArrow implements spec.md §4.1's arrow rewrite: `(params) =>
// body` becomes `NS.report((function(params){ body }).bind(this),
// meta_after)`, preserving lexical `this` via bind while giving the
// arrow's body the same statement-level instrumentation a regular
// function gets on invocation.
func (t *transformer) transformArrow(e *jsast.ArrowFunctionExpression, reportBefore bool) jsast.Expression {
	var block *jsast.BlockStatement
	if e.ExpressionBody {
		if bodyExpr, ok := e.Body.(jsast.Expression); ok {
			block = &jsast.BlockStatement{Body: []jsast.Statement{&jsast.ReturnStatement{Argument: bodyExpr}}}
		} else {
			block = &jsast.BlockStatement{}
		}
	} else if b, ok := e.Body.(*jsast.BlockStatement); ok {
		block = b
	} else {
		block = &jsast.BlockStatement{}
	}

	newBody := t.transformFunctionBody(e.Params, block)
	fn := &jsast.FunctionExpression{Params: e.Params, Body: newBody, Async: e.Async}
	bind := &jsast.CallExpression{
		Callee:    &jsast.MemberExpression{Object: fn, Property: &jsast.Identifier{Name: "bind"}},
		Arguments: []jsast.Expression{&jsast.Identifier{Name: "this"}},
	}
	return t.wrap(e, reportBefore, nil, bind)
}
