// Package apierrors classifies every way a trace can fail into the
// three kinds spec.md §4.5/§7 exposes to callers, and formats them
// with source context and a caret indicator in the style of the
// teacher's internal/errors.CompilerError.
package apierrors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/jsklve/internal/jsast"
)

// Kind is one of the surfaced failure categories (spec.md §7).
// OptionsSemanticInvalid is raised by the external validator, not by
// this package, but is listed here for completeness per the spec.
type Kind string

const (
	ParseError             Kind = "parse-error"
	RuntimeError            Kind = "runtime-error"
	LimitExceeded           Kind = "limit-exceeded"
	OptionsSemanticInvalid  Kind = "options-semantic-invalid"
)

// LimitKind distinguishes which ceiling a LimitExceeded error hit.
type LimitKind string

const (
	LimitTime  LimitKind = "time"
	LimitSteps LimitKind = "steps"
)

var defaultLoc = jsast.Position{Line: 1, Column: 0}

// TraceError is the single error type the record entrypoint returns.
type TraceError struct {
	Kind      Kind
	Message   string
	Loc       jsast.Position
	LimitKind LimitKind // set when Kind == LimitExceeded
	Magnitude float64   // set when Kind == LimitExceeded

	Source string // the traced program, for caret-formatted output
}

func (e *TraceError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source-line and caret indicator,
// matching the teacher's CompilerError.Format convention.
func (e *TraceError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s at line %d:%d\n", e.Kind, e.Loc.Line, e.Loc.Column))

	if line := sourceLine(e.Source, e.Loc.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Loc.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Loc.Column))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if e.Kind == LimitExceeded {
		sb.WriteString(fmt.Sprintf(" (kind=%s, magnitude=%v)", e.LimitKind, e.Magnitude))
	}
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// NewParseError lifts a parser syntax error, substituting the default
// location when the parser could not attribute one.
func NewParseError(message string, pos *jsast.Position, source string) *TraceError {
	loc := defaultLoc
	if pos != nil {
		loc = *pos
	}
	return &TraceError{Kind: ParseError, Message: message, Loc: loc, Source: source}
}

// NewRuntimeError rewraps any exception the instrumented program
// raised during execution; the executor rarely has a precise AST
// location for an arbitrary thrown value, so it defaults.
func NewRuntimeError(message string, source string) *TraceError {
	return &TraceError{Kind: RuntimeError, Message: message, Loc: defaultLoc, Source: source}
}

// NewLimitExceeded passes a reporter-raised ceiling violation through
// unchanged (kind + observed magnitude), per spec.md §4.5.
func NewLimitExceeded(kind LimitKind, magnitude float64) *TraceError {
	return &TraceError{
		Kind:      LimitExceeded,
		Message:   fmt.Sprintf("%s limit exceeded", kind),
		Loc:       defaultLoc,
		LimitKind: kind,
		Magnitude: magnitude,
	}
}

// NewOptionsSemanticInvalid reports a semantic options conflict
// (spec.md §6's verifyOptions). Listed for completeness: this package
// is the shared error shape the host-side validator returns too, even
// though the validator itself is out of scope (spec.md §1).
func NewOptionsSemanticInvalid(message string) *TraceError {
	return &TraceError{Kind: OptionsSemanticInvalid, Message: message, Loc: defaultLoc}
}
