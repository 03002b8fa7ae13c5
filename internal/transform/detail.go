package transform

import (
	"strconv"

	"github.com/cwbudde/jsklve/internal/jsast"
)

func strProp(key, value string) jsast.Property {
	return jsast.Property{Key: &jsast.Identifier{Name: key}, Value: &jsast.StringLiteral{Value: value}}
}

func boolProp(key string, value bool) jsast.Property {
	return jsast.Property{Key: &jsast.Identifier{Name: key}, Value: &jsast.BooleanLiteral{Value: value}}
}

func numProp(key string, value int) jsast.Property {
	return jsast.Property{Key: &jsast.Identifier{Name: key}, Value: &jsast.NumericLiteral{Value: float64(value), Raw: strconv.Itoa(value)}}
}

func nameOrNullProp(key, value string) jsast.Property {
	if value == "" {
		return jsast.Property{Key: &jsast.Identifier{Name: key}, Value: &jsast.NullLiteral{}}
	}
	return strProp(key, value)
}

func detailObj(action string, extra ...jsast.Property) *jsast.ObjectExpression {
	props := append([]jsast.Property{strProp("action", action)}, extra...)
	return &jsast.ObjectExpression{Properties: props}
}

// detailFor builds the Detail literal for a node per spec.md §4.1's
// "Detail extraction" table. Computed once at transform time and
// embedded literally, never re-derived at runtime.
func detailFor(node jsast.Node) *jsast.ObjectExpression {
	switch n := node.(type) {
	case *jsast.Identifier:
		return detailObj("read", strProp("name", n.Name))
	case *jsast.MemberExpression:
		props := []jsast.Property{boolProp("computed", n.Computed)}
		if n.Computed {
			props = append(props, jsast.Property{Key: &jsast.Identifier{Name: "property"}, Value: &jsast.NullLiteral{}})
		} else {
			props = append(props, nameOrNullProp("property", memberPropertyName(n)))
		}
		if n.Optional {
			props = append(props, boolProp("optional", true))
		}
		return detailObj("access", props...)
	case *jsast.AssignmentExpression:
		return detailObj("assign", strProp("operator", n.Operator), nameOrNullProp("target", assignmentTargetName(n.Left)))
	case *jsast.UpdateExpression:
		return detailObj("update",
			strProp("operator", n.Operator),
			boolProp("prefix", n.Prefix),
			nameOrNullProp("target", assignmentTargetName(n.Argument)))
	case *jsast.VariableDeclaration:
		target := ""
		if len(n.Declarations) > 0 {
			target = n.Declarations[0].Id.Name
		}
		return detailObj("declare", strProp("kind", n.Kind), nameOrNullProp("target", target))
	case *jsast.CallExpression:
		callee, method := calleeName(n.Callee)
		return detailObj("call", numProp("arity", len(n.Arguments)), nameOrNullProp("callee", callee), boolProp("method", method))
	case *jsast.NewExpression:
		callee, method := calleeName(n.Callee)
		return detailObj("construct", numProp("arity", len(n.Arguments)), nameOrNullProp("callee", callee), boolProp("method", method))
	case *jsast.BinaryExpression:
		return detailObj("compute", strProp("operator", n.Operator))
	case *jsast.LogicalExpression:
		return detailObj("compute", strProp("operator", n.Operator))
	case *jsast.UnaryExpression:
		return detailObj("compute", strProp("operator", n.Operator), boolProp("prefix", true))
	case *jsast.SequenceExpression:
		return detailObj("compute")
	case *jsast.IfStatement:
		return detailObj("branch", boolProp("hasAlternate", n.Alternate != nil))
	case *jsast.ConditionalExpression:
		return detailObj("branch", boolProp("hasAlternate", true))
	case *jsast.ForStatement:
		return detailObj("loop",
			boolProp("hasInit", n.Init != nil),
			boolProp("hasTest", n.Test != nil),
			boolProp("hasUpdate", n.Update != nil))
	case *jsast.WhileStatement:
		return detailObj("loop")
	case *jsast.TryStatement:
		return detailObj("protect", boolProp("hasCatch", n.Handler != nil), boolProp("hasFinally", n.Finalizer != nil))
	case *jsast.ArrowFunctionExpression:
		props := []jsast.Property{numProp("arity", len(n.Params)), boolProp("expressionBody", n.ExpressionBody)}
		if n.Async {
			props = append(props, boolProp("async", true))
		}
		return detailObj("define", props...)
	case *jsast.FunctionExpression:
		props := []jsast.Property{nameOrNullProp("name", n.Name), numProp("arity", len(n.Params))}
		if n.Async {
			props = append(props, boolProp("async", true))
		}
		if n.Generator {
			props = append(props, boolProp("generator", true))
		}
		return detailObj("define", props...)
	case *jsast.NumericLiteral:
		return detailObj("literal", jsast.Property{Key: &jsast.Identifier{Name: "value"}, Value: n})
	case *jsast.StringLiteral:
		return detailObj("literal", jsast.Property{Key: &jsast.Identifier{Name: "value"}, Value: n})
	case *jsast.ArrayExpression:
		return detailObj("literal", numProp("elementCount", len(n.Elements)))
	case *jsast.ObjectExpression:
		return detailObj("literal", numProp("propertyCount", len(n.Properties)))
	case *jsast.ThrowStatement:
		return detailObj("evaluate")
	case *jsast.ReturnStatement:
		return detailObj("evaluate")
	default:
		return detailObj("unknown")
	}
}

func memberPropertyName(m *jsast.MemberExpression) string {
	if id, ok := m.Property.(*jsast.Identifier); ok {
		return id.Name
	}
	return ""
}

// assignmentTargetName extracts the detail "target" name for an
// assignment or update expression's left-hand side: the identifier
// name, or a non-computed member's property name, or "" (-> null) for
// anything else (computed members, destructuring).
func assignmentTargetName(left jsast.Expression) string {
	switch l := left.(type) {
	case *jsast.Identifier:
		return l.Name
	case *jsast.MemberExpression:
		if !l.Computed {
			return memberPropertyName(l)
		}
	}
	return ""
}

// calleeName extracts the detail "callee"/"method" pair for a call or
// construct expression: a bare identifier, or the property name of a
// non-computed member (method=true), else null/false.
func calleeName(callee jsast.Expression) (string, bool) {
	switch c := callee.(type) {
	case *jsast.Identifier:
		return c.Name, false
	case *jsast.MemberExpression:
		if !c.Computed {
			return memberPropertyName(c), true
		}
		return "", true
	}
	return "", false
}

func locObj(loc jsast.SourceLocation) *jsast.ObjectExpression {
	pos := func(p jsast.Position) *jsast.ObjectExpression {
		return &jsast.ObjectExpression{Properties: []jsast.Property{
			numProp("line", p.Line),
			numProp("column", p.Column),
		}}
	}
	return &jsast.ObjectExpression{Properties: []jsast.Property{
		{Key: &jsast.Identifier{Name: "start"}, Value: pos(loc.Start)},
		{Key: &jsast.Identifier{Name: "end"}, Value: pos(loc.End)},
	}}
}

// buildMeta assembles the literal object passed as the second
// argument to NS.report: {type, time, loc, scopes, detail}. The
// reporter (internal/exec's injected runtime) adds step/value/logs/dt
// at call time.
func (t *transformer) buildMeta(nodeType, time string, loc jsast.SourceLocation, detail *jsast.ObjectExpression) *jsast.ObjectExpression {
	return &jsast.ObjectExpression{Properties: []jsast.Property{
		strProp("type", nodeType),
		strProp("time", time),
		{Key: &jsast.Identifier{Name: "loc"}, Value: locObj(loc)},
		{Key: &jsast.Identifier{Name: "scopes"}, Value: t.snapshotExpr()},
		{Key: &jsast.Identifier{Name: "detail"}, Value: detail},
	}}
}
