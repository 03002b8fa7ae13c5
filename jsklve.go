// Package jsklve implements the js:klve execution tracer described by
// spec.md §§1-7: a deterministic parse → transform → execute → filter
// pipeline that turns a JavaScript program into an ordered Step list.
package jsklve

import (
	"context"
	"fmt"

	"github.com/cwbudde/jsklve/internal/apierrors"
	"github.com/cwbudde/jsklve/internal/config"
	"github.com/cwbudde/jsklve/internal/exec"
	"github.com/cwbudde/jsklve/internal/filter"
	"github.com/cwbudde/jsklve/internal/jsparser"
	"github.com/cwbudde/jsklve/internal/printer"
	"github.com/cwbudde/jsklve/internal/transform"
)

// Record runs the full trace pipeline over source under the supplied
// config record (spec.md §6's `record(source, config)`), returning the
// filtered, renumbered step list or a classified *apierrors.TraceError.
func Record(ctx context.Context, source string, rec config.Record) ([]filter.Step, error) {
	if err := filter.VerifyOptions(rec.Options); err != nil {
		return nil, err
	}

	prog, parseErrs := jsparser.ParseProgram(source)
	if len(parseErrs) > 0 {
		first := parseErrs[0]
		return nil, apierrors.NewParseError(first.Message, &first.Pos, source)
	}

	result := transform.Transform(prog)
	instrumented := printer.Print(result.Program)

	executor := exec.NewExecutor()
	limits := exec.Limits{MaxSteps: rec.Meta.Max.Steps, MaxTime: rec.Meta.Max.Time}

	raw, failure, err := executor.Run(ctx, result.NSName, instrumented, limits)
	if err != nil {
		return nil, fmt.Errorf("jsklve: %w", err)
	}
	if failure != nil {
		switch failure.Kind {
		case exec.FailureLimitExceeded:
			return nil, apierrors.NewLimitExceeded(apierrors.LimitKind(failure.LimitKind), failure.Magnitude)
		default:
			return nil, apierrors.NewRuntimeError(failure.Message, source)
		}
	}

	steps, err := filter.ParseRawSteps(raw.Steps)
	if err != nil {
		return nil, fmt.Errorf("jsklve: decoding step list: %w", err)
	}

	return filter.Apply(steps, rec.Options), nil
}
