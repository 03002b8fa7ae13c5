// Package exec evaluates an instrumented program produced by
// internal/transform inside a real JavaScript engine (headless
// Chrome, via chromedp) and collects the raw step list its injected
// reporter accumulates.
package exec

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chromedp/chromedp"
)

// Limits mirrors the record entrypoint's meta.max fields (spec §6).
// A nil field disables that limit.
type Limits struct {
	MaxSteps *int
	MaxTime  *int // milliseconds
}

// FailureKind classifies why Run did not return a full step list.
type FailureKind string

const (
	FailureNone           FailureKind = ""
	FailureLimitExceeded  FailureKind = "limit-exceeded"
	FailureRuntimeError   FailureKind = "runtime-error"
)

// Failure describes a classified in-page failure (as opposed to an
// infrastructure error from the browser itself, which Run returns as
// a plain Go error).
type Failure struct {
	Kind      FailureKind
	LimitKind string // "time" | "steps", set when Kind == FailureLimitExceeded
	Magnitude float64
	Message   string // set when Kind == FailureRuntimeError
}

func (f *Failure) Error() string {
	if f.Kind == FailureLimitExceeded {
		return fmt.Sprintf("limit exceeded: %s (%v)", f.LimitKind, f.Magnitude)
	}
	return f.Message
}

// Result is the raw, not-yet-filtered evaluation outcome: a list of
// step objects still shaped exactly as the injected reporter produced
// them (JSON object per step, matching spec §3's Step fields modulo
// the describe/renumber post-processing owned by internal/filter).
type Result struct {
	Steps []json.RawMessage
}

type evalResult struct {
	Steps []json.RawMessage `json:"steps"`
	Error *struct {
		Kind      string  `json:"kind"`
		LimitKind string  `json:"limitKind"`
		Magnitude float64 `json:"magnitude"`
		Message   string  `json:"message"`
	} `json:"error"`
}

// Executor runs instrumented programs in headless Chrome; each Run
// creates its own allocator and browser context and discards them when
// it returns.
type Executor struct {
	// AllocatorOptions overrides chromedp.DefaultExecAllocatorOptions
	// when set; nil uses the defaults (headless, sandboxed).
	AllocatorOptions []chromedp.ExecAllocatorOption
}

// NewExecutor builds an Executor with headless defaults.
func NewExecutor() *Executor {
	return &Executor{}
}

// Run wraps instrumentedSource in the NS bootstrap (via buildRuntime),
// evaluates the result in a fresh page and returns its raw step list.
// A non-nil *Failure means the page-side program raised a classified
// tracer failure (limit-exceeded or runtime-error); a non-nil error
// means the browser/protocol itself failed.
func (e *Executor) Run(ctx context.Context, nsName, instrumentedSource string, limits Limits) (*Result, *Failure, error) {
	opts := e.AllocatorOptions
	if opts == nil {
		opts = chromedp.DefaultExecAllocatorOptions[:]
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	script := buildRuntime(nsName, instrumentedSource, limits.MaxSteps, limits.MaxTime)

	var raw evalResult
	tasks := chromedp.Tasks{
		chromedp.Navigate("about:blank"),
		chromedp.Evaluate(script, &raw),
	}
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return nil, nil, fmt.Errorf("exec: evaluating instrumented program: %w", err)
	}

	if raw.Error != nil {
		f := &Failure{
			Kind:      FailureKind(raw.Error.Kind),
			LimitKind: raw.Error.LimitKind,
			Magnitude: raw.Error.Magnitude,
			Message:   raw.Error.Message,
		}
		return nil, f, nil
	}

	return &Result{Steps: raw.Steps}, nil, nil
}
