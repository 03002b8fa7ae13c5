package jsast

// Node is the base interface for every AST node. Every node can report
// the source text it came from and the span it covers.
type Node interface {
	// Type returns the node's AST type name, e.g. "BinaryExpression".
	// This is the string reported on Step.type and consulted by the
	// node-type filter.
	Type() string
	// Loc returns the node's source span.
	Loc() SourceLocation
	// String renders the node back to JavaScript source text. Used by
	// the printer to serialize transformed programs.
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself
// producing a value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the tree: a sequence of top-level statements.
type Program struct {
	Loc_ SourceLocation
	Body []Statement
}

func (p *Program) Type() string         { return "Program" }
func (p *Program) Loc() SourceLocation  { return p.Loc_ }
func (p *Program) String() string {
	out := ""
	for _, s := range p.Body {
		out += s.String()
	}
	return out
}
