package jsast

import "testing"

func TestSequenceExpressionStringIsParenthesized(t *testing.T) {
	seq := &SequenceExpression{Expressions: []Expression{
		&Identifier{Name: "a"},
		&Identifier{Name: "b"},
	}}
	got := seq.String()
	want := "(a, b)"
	if got != want {
		t.Errorf("SequenceExpression.String() = %q, want %q", got, want)
	}
}

func TestCallExpressionArgumentSequenceStaysGrouped(t *testing.T) {
	// A sequence-expression argument must stay enclosed in its own
	// parens, otherwise its comma leaks into the call's own argument
	// list and misbinds the arguments that follow it.
	call := &CallExpression{
		Callee: &Identifier{Name: "f"},
		Arguments: []Expression{
			&SequenceExpression{Expressions: []Expression{&Identifier{Name: "a"}, &Identifier{Name: "b"}}},
			&Identifier{Name: "c"},
		},
	}
	got := call.String()
	want := `f((a, b), c)`
	if got != want {
		t.Errorf("CallExpression.String() = %q, want %q", got, want)
	}
}

func TestBinaryExpressionSequenceOperandStaysGrouped(t *testing.T) {
	bin := &BinaryExpression{
		Operator: "+",
		Left:     &SequenceExpression{Expressions: []Expression{&Identifier{Name: "a"}, &Identifier{Name: "b"}}},
		Right:    &NumericLiteral{Value: 1, Raw: "1"},
	}
	got := bin.String()
	want := `((a, b) + 1)`
	if got != want {
		t.Errorf("BinaryExpression.String() = %q, want %q", got, want)
	}
}
