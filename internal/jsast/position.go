// Package jsast defines the Abstract Syntax Tree node types for the
// JavaScript subset understood by the tracer.
package jsast

import "fmt"

// Position is a single point in source text. Line is 1-indexed, Column
// is 0-indexed, matching spec.md's SourceLocation.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceLocation brackets a node's text between two Positions.
type SourceLocation struct {
	Start Position
	End   Position
}
