package jsast

import (
	"strconv"
	"strings"
)

// Identifier is a bare name reference: a variable, parameter, or
// property shorthand.
type Identifier struct {
	Loc_ SourceLocation
	Name string
}

func (i *Identifier) expressionNode()     {}
func (i *Identifier) Type() string        { return "Identifier" }
func (i *Identifier) Loc() SourceLocation { return i.Loc_ }
func (i *Identifier) String() string      { return i.Name }

// NumericLiteral is a numeric constant, e.g. 1, 3.14, 1e10.
type NumericLiteral struct {
	Loc_  SourceLocation
	Value float64
	Raw   string
}

func (n *NumericLiteral) expressionNode()     {}
func (n *NumericLiteral) Type() string        { return "NumericLiteral" }
func (n *NumericLiteral) Loc() SourceLocation { return n.Loc_ }
func (n *NumericLiteral) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringLiteral is a quoted string constant.
type StringLiteral struct {
	Loc_  SourceLocation
	Value string
}

func (s *StringLiteral) expressionNode()     {}
func (s *StringLiteral) Type() string        { return "StringLiteral" }
func (s *StringLiteral) Loc() SourceLocation { return s.Loc_ }
func (s *StringLiteral) String() string {
	escaped := strings.ReplaceAll(s.Value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	return `"` + escaped + `"`
}

// BooleanLiteral is `true` or `false`. It is not one of the filterable
// types (see DESIGN.md); the filter keeps it unconditionally.
type BooleanLiteral struct {
	Loc_  SourceLocation
	Value bool
}

func (b *BooleanLiteral) expressionNode()     {}
func (b *BooleanLiteral) Type() string        { return "BooleanLiteral" }
func (b *BooleanLiteral) Loc() SourceLocation { return b.Loc_ }
func (b *BooleanLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NullLiteral is the `null` keyword.
type NullLiteral struct {
	Loc_ SourceLocation
}

func (n *NullLiteral) expressionNode()     {}
func (n *NullLiteral) Type() string        { return "NullLiteral" }
func (n *NullLiteral) Loc() SourceLocation { return n.Loc_ }
func (n *NullLiteral) String() string      { return "null" }

// ArrayExpression is an array literal: [a, b, c].
type ArrayExpression struct {
	Loc_     SourceLocation
	Elements []Expression
}

func (a *ArrayExpression) expressionNode()     {}
func (a *ArrayExpression) Type() string        { return "ArrayExpression" }
func (a *ArrayExpression) Loc() SourceLocation { return a.Loc_ }
func (a *ArrayExpression) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		if e == nil {
			continue
		}
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Property is a single key/value entry of an ObjectExpression.
type Property struct {
	Key      Expression
	Value    Expression
	Computed bool
	Shorthand bool
}

// ObjectExpression is an object literal: { a: 1, [b]: c }.
type ObjectExpression struct {
	Loc_       SourceLocation
	Properties []Property
}

func (o *ObjectExpression) expressionNode()     {}
func (o *ObjectExpression) Type() string        { return "ObjectExpression" }
func (o *ObjectExpression) Loc() SourceLocation { return o.Loc_ }
func (o *ObjectExpression) String() string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		if p.Shorthand {
			parts[i] = p.Key.String()
			continue
		}
		key := p.Key.String()
		if p.Computed {
			key = "[" + key + "]"
		}
		parts[i] = key + ": " + p.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
