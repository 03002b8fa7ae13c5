package jsast

import "strings"

// ExpressionStatement wraps an expression evaluated for its side
// effects: `E;`.
type ExpressionStatement struct {
	Loc_       SourceLocation
	Expression Expression
}

func (e *ExpressionStatement) statementNode()     {}
func (e *ExpressionStatement) Type() string        { return "ExpressionStatement" }
func (e *ExpressionStatement) Loc() SourceLocation { return e.Loc_ }
func (e *ExpressionStatement) String() string      { return e.Expression.String() + ";" }

// BlockStatement is a brace-delimited statement list. It is never
// itself reported (only the statements/expressions inside it are).
type BlockStatement struct {
	Loc_ SourceLocation
	Body []Statement
}

func (b *BlockStatement) statementNode()     {}
func (b *BlockStatement) Type() string        { return "BlockStatement" }
func (b *BlockStatement) Loc() SourceLocation { return b.Loc_ }
func (b *BlockStatement) String() string {
	var out strings.Builder
	out.WriteString("{\n")
	for _, s := range b.Body {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// VariableDeclarator is a single `name = init` binding within a
// VariableDeclaration.
type VariableDeclarator struct {
	Id   *Identifier
	Init Expression
}

// VariableDeclaration is `var|let|const a = 1, b = 2;`.
type VariableDeclaration struct {
	Loc_         SourceLocation
	Kind         string
	Declarations []VariableDeclarator
}

func (v *VariableDeclaration) statementNode()     {}
func (v *VariableDeclaration) Type() string        { return "VariableDeclaration" }
func (v *VariableDeclaration) Loc() SourceLocation { return v.Loc_ }
func (v *VariableDeclaration) String() string {
	parts := make([]string, len(v.Declarations))
	for i, d := range v.Declarations {
		if d.Init != nil {
			parts[i] = d.Id.Name + " = " + d.Init.String()
		} else {
			parts[i] = d.Id.Name
		}
	}
	return v.Kind + " " + strings.Join(parts, ", ") + ";"
}

// IfStatement is `if (test) consequent else alternate`. Alternate may
// be nil.
type IfStatement struct {
	Loc_        SourceLocation
	Test        Expression
	Consequent  Statement
	Alternate   Statement
}

func (s *IfStatement) statementNode()     {}
func (s *IfStatement) Type() string        { return "IfStatement" }
func (s *IfStatement) Loc() SourceLocation { return s.Loc_ }
func (s *IfStatement) String() string {
	out := "if (" + s.Test.String() + ") " + s.Consequent.String()
	if s.Alternate != nil {
		out += " else " + s.Alternate.String()
	}
	return out
}

// ForStatement is the classic three-clause `for (init; test; update) body`.
// Init may be a *VariableDeclaration, an Expression, or nil. Test and
// Update may be nil.
type ForStatement struct {
	Loc_   SourceLocation
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

func (f *ForStatement) statementNode()     {}
func (f *ForStatement) Type() string        { return "ForStatement" }
func (f *ForStatement) Loc() SourceLocation { return f.Loc_ }
func (f *ForStatement) String() string {
	initStr, testStr, updateStr := "", "", ""
	if f.Init != nil {
		initStr = strings.TrimSuffix(f.Init.String(), ";")
	}
	if f.Test != nil {
		testStr = f.Test.String()
	}
	if f.Update != nil {
		updateStr = f.Update.String()
	}
	return "for (" + initStr + "; " + testStr + "; " + updateStr + ") " + f.Body.String()
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Loc_ SourceLocation
	Test Expression
	Body Statement
}

func (w *WhileStatement) statementNode()     {}
func (w *WhileStatement) Type() string        { return "WhileStatement" }
func (w *WhileStatement) Loc() SourceLocation { return w.Loc_ }
func (w *WhileStatement) String() string {
	return "while (" + w.Test.String() + ") " + w.Body.String()
}

// ReturnStatement is `return argument;`. Argument may be nil.
type ReturnStatement struct {
	Loc_     SourceLocation
	Argument Expression
}

func (r *ReturnStatement) statementNode()     {}
func (r *ReturnStatement) Type() string        { return "ReturnStatement" }
func (r *ReturnStatement) Loc() SourceLocation { return r.Loc_ }
func (r *ReturnStatement) String() string {
	if r.Argument == nil {
		return "return;"
	}
	return "return " + r.Argument.String() + ";"
}

// ThrowStatement is `throw argument;`.
type ThrowStatement struct {
	Loc_     SourceLocation
	Argument Expression
}

func (t *ThrowStatement) statementNode()     {}
func (t *ThrowStatement) Type() string        { return "ThrowStatement" }
func (t *ThrowStatement) Loc() SourceLocation { return t.Loc_ }
func (t *ThrowStatement) String() string      { return "throw " + t.Argument.String() + ";" }

// CatchClause is the `catch (param) { body }` part of a TryStatement.
// Param may be nil (optional catch binding).
type CatchClause struct {
	Loc_  SourceLocation
	Param *Identifier
	Body  *BlockStatement
}

// TryStatement is `try { } catch (e) { } finally { }`. Handler and
// Finalizer may independently be nil (but not both, by grammar).
type TryStatement struct {
	Loc_      SourceLocation
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

func (t *TryStatement) statementNode()     {}
func (t *TryStatement) Type() string        { return "TryStatement" }
func (t *TryStatement) Loc() SourceLocation { return t.Loc_ }
func (t *TryStatement) String() string {
	out := "try " + t.Block.String()
	if t.Handler != nil {
		if t.Handler.Param != nil {
			out += " catch (" + t.Handler.Param.Name + ") " + t.Handler.Body.String()
		} else {
			out += " catch " + t.Handler.Body.String()
		}
	}
	if t.Finalizer != nil {
		out += " finally " + t.Finalizer.String()
	}
	return out
}

// BreakStatement is the bare `break;` keyword. It is synthesized by
// the transformer's loop desugaring and also accepted directly from
// source; it carries no filterable detail of its own.
type BreakStatement struct {
	Loc_ SourceLocation
}

func (b *BreakStatement) statementNode()     {}
func (b *BreakStatement) Type() string        { return "BreakStatement" }
func (b *BreakStatement) Loc() SourceLocation { return b.Loc_ }
func (b *BreakStatement) String() string      { return "break;" }

// FunctionDeclaration is `function name(params) { body }` at statement
// position. Per spec.md §4.1 its own declaration is never reported
// (only invocations of its body are instrumented).
type FunctionDeclaration struct {
	Loc_   SourceLocation
	Name   string
	Params []*Identifier
	Body   *BlockStatement
	Async  bool
}

func (f *FunctionDeclaration) statementNode()     {}
func (f *FunctionDeclaration) Type() string        { return "FunctionDeclaration" }
func (f *FunctionDeclaration) Loc() SourceLocation { return f.Loc_ }
func (f *FunctionDeclaration) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name
	}
	prefix := "function"
	if f.Async {
		prefix = "async " + prefix
	}
	return prefix + " " + f.Name + "(" + strings.Join(params, ", ") + ") " + f.Body.String()
}
