package jsparser

import "testing"

func TestParseProgramSimple(t *testing.T) {
	prog, errs := ParseProgram(`let x = 1 + 2; x++;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Body) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Body))
	}
}

func TestParseProgramBreakInLoop(t *testing.T) {
	prog, errs := ParseProgram(`while (true) { break; }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Body))
	}
}

func TestParseProgramReportsSyntaxError(t *testing.T) {
	_, errs := ParseProgram(`let x = ;`)
	if len(errs) == 0 {
		t.Fatal("expected a syntax error, got none")
	}
}
