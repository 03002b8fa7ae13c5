package filter

import (
	"encoding/json"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func rawSteps(t *testing.T, items ...string) []Step {
	t.Helper()
	raw := make([]json.RawMessage, len(items))
	for i, s := range items {
		raw[i] = json.RawMessage(s)
	}
	steps, err := ParseRawSteps(raw)
	if err != nil {
		t.Fatalf("ParseRawSteps: %v", err)
	}
	return steps
}

func TestApplyTimingFilter(t *testing.T) {
	steps := rawSteps(t,
		`{"step":1,"category":"init"}`,
		`{"step":2,"category":"step","type":"Identifier","time":"before"}`,
		`{"step":3,"category":"step","type":"Identifier","time":"after"}`,
	)
	out := Apply(steps, Options{Timing: TimingOptions{Before: boolPtr(false)}})
	if len(out) != 2 {
		t.Fatalf("got %d steps, want 2", len(out))
	}
	if out[1].Time != "after" {
		t.Errorf("surviving step has time %q, want after", out[1].Time)
	}
}

func TestApplyNodeTypeFilter(t *testing.T) {
	steps := rawSteps(t,
		`{"step":1,"category":"init"}`,
		`{"step":2,"category":"step","type":"CallExpression","time":"after"}`,
		`{"step":3,"category":"step","type":"Identifier","time":"after"}`,
	)
	out := Apply(steps, Options{Expressions: ExpressionToggles{Call: boolPtr(false)}})
	if len(out) != 2 {
		t.Fatalf("got %d steps, want 2", len(out))
	}
	if out[1].Type != "Identifier" {
		t.Errorf("surviving step has type %q, want Identifier", out[1].Type)
	}
}

func TestApplyNameFilterIncludeWins(t *testing.T) {
	steps := rawSteps(t,
		`{"step":1,"category":"init"}`,
		`{"step":2,"category":"step","type":"Identifier","time":"after","detail":{"name":"x"}}`,
		`{"step":3,"category":"step","type":"Identifier","time":"after","detail":{"name":"y"}}`,
	)
	out := Apply(steps, Options{Names: NameOptions{Include: []string{"x"}, Exclude: []string{"x"}}})
	// Exclude is ignored whenever Include is non-empty, per resolution order.
	if len(out) != 2 {
		t.Fatalf("got %d steps, want 2", len(out))
	}
	if out[1].Detail["name"] != "x" {
		t.Errorf("surviving step name = %v, want x", out[1].Detail["name"])
	}
}

func TestApplyDataStripRemovesScopes(t *testing.T) {
	steps := rawSteps(t,
		`{"step":1,"category":"init"}`,
		`{"step":2,"category":"step","type":"Identifier","time":"after","scopes":[{"x":1}]}`,
	)
	out := Apply(steps, Options{Data: DataOptions{Scopes: boolPtr(false)}})
	if out[1].Scopes != nil {
		t.Errorf("Scopes = %s, want nil", out[1].Scopes)
	}
}

func TestApplyRenumbersSequentially(t *testing.T) {
	steps := rawSteps(t,
		`{"step":1,"category":"init"}`,
		`{"step":2,"category":"step","type":"CallExpression","time":"after"}`,
		`{"step":3,"category":"step","type":"Identifier","time":"after"}`,
	)
	out := Apply(steps, Options{Expressions: ExpressionToggles{Call: boolPtr(false)}})
	for i, s := range out {
		if s.Step != i+1 {
			t.Errorf("step[%d].Step = %d, want %d", i, s.Step, i+1)
		}
	}
}

func TestVerifyOptionsRejectsConflictingNames(t *testing.T) {
	err := VerifyOptions(Options{Names: NameOptions{Include: []string{"a"}, Exclude: []string{"b"}}})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestVerifyOptionsAllowsEitherAlone(t *testing.T) {
	if err := VerifyOptions(Options{Names: NameOptions{Include: []string{"a"}}}); err != nil {
		t.Errorf("include-only options rejected: %v", err)
	}
	if err := VerifyOptions(Options{Names: NameOptions{Exclude: []string{"a"}}}); err != nil {
		t.Errorf("exclude-only options rejected: %v", err)
	}
}
