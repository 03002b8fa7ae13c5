package jsast

import "strings"

// UnaryExpression is a prefix unary operator: !x, -x, typeof x, void x.
type UnaryExpression struct {
	Loc_     SourceLocation
	Operator string
	Argument Expression
}

func (u *UnaryExpression) expressionNode()     {}
func (u *UnaryExpression) Type() string        { return "UnaryExpression" }
func (u *UnaryExpression) Loc() SourceLocation { return u.Loc_ }
func (u *UnaryExpression) String() string {
	if len(u.Operator) > 1 {
		return u.Operator + " " + u.Argument.String()
	}
	return u.Operator + u.Argument.String()
}

// UpdateExpression is ++x, x++, --x, or x--.
type UpdateExpression struct {
	Loc_     SourceLocation
	Operator string
	Prefix   bool
	Argument Expression
}

func (u *UpdateExpression) expressionNode()     {}
func (u *UpdateExpression) Type() string        { return "UpdateExpression" }
func (u *UpdateExpression) Loc() SourceLocation { return u.Loc_ }
func (u *UpdateExpression) String() string {
	if u.Prefix {
		return u.Operator + u.Argument.String()
	}
	return u.Argument.String() + u.Operator
}

// BinaryExpression is an arithmetic/relational/bitwise binary op.
type BinaryExpression struct {
	Loc_     SourceLocation
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) expressionNode()     {}
func (b *BinaryExpression) Type() string        { return "BinaryExpression" }
func (b *BinaryExpression) Loc() SourceLocation { return b.Loc_ }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// LogicalExpression is &&, ||, or ??.
type LogicalExpression struct {
	Loc_     SourceLocation
	Operator string
	Left     Expression
	Right    Expression
}

func (l *LogicalExpression) expressionNode()     {}
func (l *LogicalExpression) Type() string        { return "LogicalExpression" }
func (l *LogicalExpression) Loc() SourceLocation { return l.Loc_ }
func (l *LogicalExpression) String() string {
	return "(" + l.Left.String() + " " + l.Operator + " " + l.Right.String() + ")"
}

// AssignmentExpression is x = y, x += y, etc.
type AssignmentExpression struct {
	Loc_     SourceLocation
	Operator string
	Left     Expression
	Right    Expression
}

func (a *AssignmentExpression) expressionNode()     {}
func (a *AssignmentExpression) Type() string        { return "AssignmentExpression" }
func (a *AssignmentExpression) Loc() SourceLocation { return a.Loc_ }
func (a *AssignmentExpression) String() string {
	return a.Left.String() + " " + a.Operator + " " + a.Right.String()
}

// SequenceExpression is the comma operator: a, b, c.
type SequenceExpression struct {
	Loc_        SourceLocation
	Expressions []Expression
}

func (s *SequenceExpression) expressionNode()     {}
func (s *SequenceExpression) Type() string        { return "SequenceExpression" }
func (s *SequenceExpression) Loc() SourceLocation { return s.Loc_ }
func (s *SequenceExpression) String() string {
	parts := make([]string, len(s.Expressions))
	for i, e := range s.Expressions {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ConditionalExpression is the ternary a ? b : c.
type ConditionalExpression struct {
	Loc_       SourceLocation
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (c *ConditionalExpression) expressionNode()     {}
func (c *ConditionalExpression) Type() string        { return "ConditionalExpression" }
func (c *ConditionalExpression) Loc() SourceLocation { return c.Loc_ }
func (c *ConditionalExpression) String() string {
	return c.Test.String() + " ? " + c.Consequent.String() + " : " + c.Alternate.String()
}

// MemberExpression is o.p or o[p].
type MemberExpression struct {
	Loc_     SourceLocation
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

func (m *MemberExpression) expressionNode()     {}
func (m *MemberExpression) Type() string        { return "MemberExpression" }
func (m *MemberExpression) Loc() SourceLocation { return m.Loc_ }
func (m *MemberExpression) String() string {
	dot := "."
	if m.Optional {
		dot = "?."
	}
	if m.Computed {
		if m.Optional {
			dot = "?."
		} else {
			dot = ""
		}
		return m.Object.String() + dot + "[" + m.Property.String() + "]"
	}
	return m.Object.String() + dot + m.Property.String()
}

// CallExpression is f(a, b) or o.m(a, b).
type CallExpression struct {
	Loc_      SourceLocation
	Callee    Expression
	Arguments []Expression
	Optional  bool
}

func (c *CallExpression) expressionNode()     {}
func (c *CallExpression) Type() string        { return "CallExpression" }
func (c *CallExpression) Loc() SourceLocation { return c.Loc_ }
func (c *CallExpression) String() string {
	parts := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		parts[i] = a.String()
	}
	mark := "("
	if c.Optional {
		mark = "?.("
	}
	return c.Callee.String() + mark + strings.Join(parts, ", ") + ")"
}

// NewExpression is `new Callee(args)`.
type NewExpression struct {
	Loc_      SourceLocation
	Callee    Expression
	Arguments []Expression
}

func (n *NewExpression) expressionNode()     {}
func (n *NewExpression) Type() string        { return "NewExpression" }
func (n *NewExpression) Loc() SourceLocation { return n.Loc_ }
func (n *NewExpression) String() string {
	parts := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		parts[i] = a.String()
	}
	return "new " + n.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// FunctionExpression is `function name(params) { body }`, anonymous or
// named, used both as a declaration's value and as an expression.
type FunctionExpression struct {
	Loc_      SourceLocation
	Name      string
	Params    []*Identifier
	Body      *BlockStatement
	Async     bool
	Generator bool
}

func (f *FunctionExpression) expressionNode()     {}
func (f *FunctionExpression) Type() string        { return "FunctionExpression" }
func (f *FunctionExpression) Loc() SourceLocation { return f.Loc_ }
func (f *FunctionExpression) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name
	}
	prefix := "function"
	if f.Async {
		prefix = "async " + prefix
	}
	if f.Generator {
		prefix += "*"
	}
	if f.Name != "" {
		prefix += " " + f.Name
	}
	return prefix + "(" + strings.Join(params, ", ") + ") " + f.Body.String()
}

// ArrowFunctionExpression is `(params) => body`, where body is either
// an Expression (ExpressionBody true) or a *BlockStatement.
type ArrowFunctionExpression struct {
	Loc_           SourceLocation
	Params         []*Identifier
	Body           Node
	ExpressionBody bool
	Async          bool
}

func (a *ArrowFunctionExpression) expressionNode()     {}
func (a *ArrowFunctionExpression) Type() string        { return "ArrowFunctionExpression" }
func (a *ArrowFunctionExpression) Loc() SourceLocation { return a.Loc_ }
func (a *ArrowFunctionExpression) String() string {
	params := make([]string, len(a.Params))
	for i, p := range a.Params {
		params[i] = p.Name
	}
	prefix := ""
	if a.Async {
		prefix = "async "
	}
	return prefix + "(" + strings.Join(params, ", ") + ") => " + a.Body.String()
}
