package config

import "testing"

func TestParseYAML(t *testing.T) {
	input := `
meta:
  max:
    steps: 1000
    time: 5000
options:
  statements:
    declare: false
  names:
    include:
      - x
`
	rec, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Meta.Max.Steps == nil || *rec.Meta.Max.Steps != 1000 {
		t.Errorf("meta.max.steps = %v, want 1000", rec.Meta.Max.Steps)
	}
	if rec.Meta.Max.Time == nil || *rec.Meta.Max.Time != 5000 {
		t.Errorf("meta.max.time = %v, want 5000", rec.Meta.Max.Time)
	}
	if rec.Options.Statements.Declare == nil || *rec.Options.Statements.Declare {
		t.Errorf("options.statements.declare = %v, want false", rec.Options.Statements.Declare)
	}
	if len(rec.Options.Names.Include) != 1 || rec.Options.Names.Include[0] != "x" {
		t.Errorf("options.names.include = %v, want [x]", rec.Options.Names.Include)
	}
}

func TestParseEmpty(t *testing.T) {
	rec, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Meta.Max.Steps != nil {
		t.Errorf("meta.max.steps = %v, want nil", rec.Meta.Max.Steps)
	}
}

func TestParseJSONAppliesDefaultsWithoutExplicitCall(t *testing.T) {
	rec, err := Parse([]byte(`{"options":{"statements":{"declare":false}}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Options.Statements.Declare == nil || *rec.Options.Statements.Declare {
		t.Errorf("statements.declare should remain false, got %v", rec.Options.Statements.Declare)
	}
	if rec.Options.Statements.Expr == nil || !*rec.Options.Statements.Expr {
		t.Errorf("Parse should have run ApplyJSONDefaults internally: statements.expr = %v, want true", rec.Options.Statements.Expr)
	}
	if rec.Options.Literals.Numeric == nil || !*rec.Options.Literals.Numeric {
		t.Errorf("literals.numeric should default to true, got %v", rec.Options.Literals.Numeric)
	}
}

func TestApplyJSONDefaults(t *testing.T) {
	out, err := ApplyJSONDefaults([]byte(`{"options":{"statements":{"declare":false}}}`))
	if err != nil {
		t.Fatalf("ApplyJSONDefaults: %v", err)
	}

	rec, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse patched: %v", err)
	}
	if rec.Options.Statements.Declare == nil || *rec.Options.Statements.Declare {
		t.Errorf("statements.declare should remain false after defaulting, got %v", rec.Options.Statements.Declare)
	}
	if rec.Options.Statements.Expr == nil || !*rec.Options.Statements.Expr {
		t.Errorf("statements.expr should default to true, got %v", rec.Options.Statements.Expr)
	}
	if rec.Options.Data.Logs == nil || !*rec.Options.Data.Logs {
		t.Errorf("data.logs should default to true, got %v", rec.Options.Data.Logs)
	}
}
