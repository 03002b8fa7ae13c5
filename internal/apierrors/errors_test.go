package apierrors

import (
	"strings"
	"testing"

	"github.com/cwbudde/jsklve/internal/jsast"
)

func TestFormatIncludesCaretAtColumn(t *testing.T) {
	src := "let x = 1;\nlet y = ;\n"
	pos := &jsast.Position{Line: 2, Column: 8}
	err := NewParseError("unexpected token", pos, src)

	out := err.Format(false)
	lines := strings.Split(out, "\n")

	var sourceLineIdx int
	for i, l := range lines {
		if strings.Contains(l, "let y = ;") {
			sourceLineIdx = i
			break
		}
	}
	if sourceLineIdx == 0 {
		t.Fatalf("source line not found in output:\n%s", out)
	}
	caretLine := lines[sourceLineIdx+1]
	if !strings.Contains(caretLine, "^") {
		t.Errorf("expected a caret line after the source line, got %q", caretLine)
	}
}

func TestNewLimitExceededCarriesMagnitude(t *testing.T) {
	err := NewLimitExceeded(LimitSteps, 5000)
	if err.Kind != LimitExceeded {
		t.Errorf("Kind = %v, want %v", err.Kind, LimitExceeded)
	}
	if !strings.Contains(err.Format(false), "kind=steps") {
		t.Errorf("Format output missing limit kind: %s", err.Format(false))
	}
}

func TestErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = NewRuntimeError("boom", "x();")
	if err.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
