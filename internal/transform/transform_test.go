package transform

import (
	"strings"
	"testing"

	"github.com/cwbudde/jsklve/internal/jsast"
	"github.com/cwbudde/jsklve/internal/jsparser"
	"github.com/cwbudde/jsklve/internal/printer"
)

func transformSource(t *testing.T, src string) (string, *Result) {
	t.Helper()
	prog, errs := jsparser.ParseProgram(src)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	res := Transform(prog)
	return printer.Print(res.Program), res
}

func TestTransformEmitsNSReportsForExpressionStatement(t *testing.T) {
	out, res := transformSource(t, `1 + 2;`)
	if !strings.Contains(out, res.NSName+".report(") {
		t.Errorf("output missing NS.report call:\n%s", out)
	}
	if !strings.Contains(out, `type: "BinaryExpression"`) {
		t.Errorf("output missing BinaryExpression detail:\n%s", out)
	}
}

func TestTransformDesugarsWhileLoop(t *testing.T) {
	out, _ := transformSource(t, `while (x) { y; }`)
	if !strings.Contains(out, "while (true)") {
		t.Errorf("expected desugared while(true) wrapper:\n%s", out)
	}
	if !strings.Contains(out, loopTempName) {
		t.Errorf("expected loop temp %s in output:\n%s", loopTempName, out)
	}
}

func TestTransformMarksAssignmentTargetDone(t *testing.T) {
	out, _ := transformSource(t, `x = 1;`)
	// The assignment's left-hand identifier must not itself get a
	// separate Identifier-type report (it is marked done), only the
	// AssignmentExpression as a whole is reported.
	if strings.Count(out, `type: "Identifier"`) != 0 {
		t.Errorf("assignment target should not be independently reported:\n%s", out)
	}
	if !strings.Contains(out, `type: "AssignmentExpression"`) {
		t.Errorf("expected AssignmentExpression detail:\n%s", out)
	}
}

func TestTransformReportsScalarLiterals(t *testing.T) {
	out, _ := transformSource(t, `1 + 2;`)
	if !strings.Contains(out, `type: "NumericLiteral"`) {
		t.Errorf("expected each numeric literal operand to be independently reported:\n%s", out)
	}
	if strings.Count(out, `type: "NumericLiteral"`) != 2 {
		t.Errorf("expected exactly 2 NumericLiteral reports (one per operand), got %d:\n%s",
			strings.Count(out, `type: "NumericLiteral"`), out)
	}
}

func TestTransformCallArgumentsReparseToOriginalCount(t *testing.T) {
	out, _ := transformSource(t, `f(x, y);`)

	reparsed, errs := jsparser.ParseProgram(out)
	if len(errs) != 0 {
		t.Fatalf("printed output failed to reparse: %v\noutput:\n%s", errs, out)
	}
	// transformGenericStatement emits [before, rewritten, after]; the
	// rewritten ExpressionStatement carrying the instrumented call is
	// the middle statement.
	exprStmt, ok := reparsed.Body[1].(*jsast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected ExpressionStatement, got %T", reparsed.Body[1])
	}
	seq, ok := exprStmt.Expression.(*jsast.SequenceExpression)
	if !ok {
		t.Fatalf("expected top-level SequenceExpression, got %T", exprStmt.Expression)
	}
	// The last element of the outer report sequence is the NS.report(...)
	// call whose value argument is the instrumented f.call(undefined, x, y).
	lastReport, ok := seq.Expressions[len(seq.Expressions)-1].(*jsast.CallExpression)
	if !ok {
		t.Fatalf("expected final NS.report call, got %T", seq.Expressions[len(seq.Expressions)-1])
	}
	innerCall, ok := lastReport.Arguments[0].(*jsast.CallExpression)
	if !ok {
		t.Fatalf("expected f.call(...) as NS.report's value argument, got %T", lastReport.Arguments[0])
	}
	// undefined receiver + the two original arguments: a missing
	// enclosing-paren bug around a non-literal argument's sequence
	// would leak its commas and inflate this count.
	if len(innerCall.Arguments) != 3 {
		t.Fatalf("expected f.call to carry 3 arguments (undefined, x, y), got %d: %s", len(innerCall.Arguments), out)
	}
}

func TestTransformUpdateEvaluatesComputedIndexOnce(t *testing.T) {
	for _, src := range []string{`arr[i()]++;`, `++arr[i()];`, `arr[i()]--;`} {
		out, _ := transformSource(t, src)
		// The callee identifier is itself wrapped in a report, so the
		// instrumented call prints as `(null, NS.report(i, ...)).call(undefined)`;
		// i() is the only non-method call in the source.
		count := strings.Count(out, ".call(undefined)")
		if count != 1 {
			t.Errorf("%s: expected computed index i() evaluated exactly once, got %d occurrences:\n%s", src, count, out)
		}
	}
}

func TestTransformMethodCallEvaluatesComputedNameOnce(t *testing.T) {
	out, _ := transformSource(t, `o[f()]();`)
	count := strings.Count(out, "f.call(undefined)")
	if count != 1 {
		t.Errorf("expected computed method name f() evaluated exactly once, got %d occurrences:\n%s", count, out)
	}
}

func TestTransformNonMutating(t *testing.T) {
	prog, errs := jsparser.ParseProgram(`1 + 2;`)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	before := printer.Print(prog)
	Transform(prog)
	after := printer.Print(prog)
	if before != after {
		t.Errorf("Transform mutated its input:\nbefore=%q\nafter=%q", before, after)
	}
}
