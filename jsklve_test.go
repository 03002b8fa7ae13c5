package jsklve

import (
	"context"
	"testing"

	"github.com/cwbudde/jsklve/internal/apierrors"
	"github.com/cwbudde/jsklve/internal/config"
	"github.com/cwbudde/jsklve/internal/filter"
)

func TestRecordRejectsConflictingNameFilters(t *testing.T) {
	rec := config.Record{
		Options: filter.Options{
			Names: filter.NameOptions{Include: []string{"x"}, Exclude: []string{"y"}},
		},
	}

	_, err := Record(context.Background(), "1 + 1;", rec)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	traceErr, ok := err.(*apierrors.TraceError)
	if !ok {
		t.Fatalf("expected *apierrors.TraceError, got %T", err)
	}
	if traceErr.Kind != apierrors.OptionsSemanticInvalid {
		t.Errorf("Kind = %v, want %v", traceErr.Kind, apierrors.OptionsSemanticInvalid)
	}
}

func TestRecordSurfacesParseErrors(t *testing.T) {
	_, err := Record(context.Background(), "let x = ;", config.Record{})
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}

	traceErr, ok := err.(*apierrors.TraceError)
	if !ok {
		t.Fatalf("expected *apierrors.TraceError, got %T", err)
	}
	if traceErr.Kind != apierrors.ParseError {
		t.Errorf("Kind = %v, want %v", traceErr.Kind, apierrors.ParseError)
	}
}
