// Package printer serializes a jsast.Program back to JavaScript source
// text. Every jsast node already carries a String() method producing
// valid (if unindented) JS, grounded on the teacher's ast.Node.String()
// convention (see _examples/CWBudde-go-dws/ast/ast.go); Print exists
// as the single, stable entrypoint the rest of the pipeline calls
// rather than having callers reach into jsast directly.
package printer

import (
	"strings"

	"github.com/cwbudde/jsklve/internal/jsast"
)

// Print renders prog as a single JS source string, one statement per
// line.
func Print(prog *jsast.Program) string {
	var out strings.Builder
	for _, stmt := range prog.Body {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}
