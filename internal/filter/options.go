package filter

import "github.com/cwbudde/jsklve/internal/apierrors"

// Options mirrors the JsKlveOptions shape described by
// internal/identity's JSON Schema (spec.md §6): per-node-type toggles,
// timing toggles, a name include/exclude list, and data-field strip
// toggles. All fields default to "include/keep".
type Options struct {
	Statements  StatementToggles  `json:"statements"`
	Loops       LoopToggles       `json:"loops"`
	Expressions ExpressionToggles `json:"expressions"`
	Literals    LiteralToggles    `json:"literals"`
	Timing      TimingOptions     `json:"timing"`
	Names       NameOptions       `json:"names"`
	Data        DataOptions       `json:"data"`
}

type StatementToggles struct {
	Expr    *bool `json:"expr,omitempty"`
	Declare *bool `json:"declare,omitempty"`
	If      *bool `json:"if,omitempty"`
	Return  *bool `json:"return,omitempty"`
	Throw   *bool `json:"throw,omitempty"`
	Try     *bool `json:"try,omitempty"`
}

type LoopToggles struct {
	For   *bool `json:"for,omitempty"`
	While *bool `json:"while,omitempty"`
}

type ExpressionToggles struct {
	Identifier  *bool `json:"identifier,omitempty"`
	Member      *bool `json:"member,omitempty"`
	Assign      *bool `json:"assign,omitempty"`
	Update      *bool `json:"update,omitempty"`
	Call        *bool `json:"call,omitempty"`
	New         *bool `json:"new,omitempty"`
	Binary      *bool `json:"binary,omitempty"`
	Logical     *bool `json:"logical,omitempty"`
	Unary       *bool `json:"unary,omitempty"`
	Sequence    *bool `json:"sequence,omitempty"`
	Conditional *bool `json:"conditional,omitempty"`
	Arrow       *bool `json:"arrow,omitempty"`
	Function    *bool `json:"function,omitempty"`
}

type LiteralToggles struct {
	Array   *bool `json:"array,omitempty"`
	Object  *bool `json:"object,omitempty"`
	Numeric *bool `json:"numeric,omitempty"`
	String  *bool `json:"string,omitempty"`
}

type TimingOptions struct {
	Before *bool `json:"before,omitempty"`
	After  *bool `json:"after,omitempty"`
}

type NameOptions struct {
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

type DataOptions struct {
	Scopes *bool `json:"scopes,omitempty"`
	Value  *bool `json:"value,omitempty"`
	Logs   *bool `json:"logs,omitempty"`
	Dt     *bool `json:"dt,omitempty"`
	Loc    *bool `json:"loc,omitempty"`
}

func boolOrDefault(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// flattenNodeTypes resolves every nodeTypeTable config path to a
// concrete bool, filling absent fields with "keep" (true).
func (o Options) flattenNodeTypes() map[string]bool {
	s, l, e, lit := o.Statements, o.Loops, o.Expressions, o.Literals
	return map[string]bool{
		"statements.expr":    boolOrDefault(s.Expr, true),
		"statements.declare": boolOrDefault(s.Declare, true),
		"statements.if":      boolOrDefault(s.If, true),
		"statements.return":  boolOrDefault(s.Return, true),
		"statements.throw":   boolOrDefault(s.Throw, true),
		"statements.try":     boolOrDefault(s.Try, true),

		"loops.for":   boolOrDefault(l.For, true),
		"loops.while": boolOrDefault(l.While, true),

		"expressions.identifier":  boolOrDefault(e.Identifier, true),
		"expressions.member":      boolOrDefault(e.Member, true),
		"expressions.assign":      boolOrDefault(e.Assign, true),
		"expressions.update":      boolOrDefault(e.Update, true),
		"expressions.call":        boolOrDefault(e.Call, true),
		"expressions.new":         boolOrDefault(e.New, true),
		"expressions.binary":      boolOrDefault(e.Binary, true),
		"expressions.logical":     boolOrDefault(e.Logical, true),
		"expressions.unary":       boolOrDefault(e.Unary, true),
		"expressions.sequence":    boolOrDefault(e.Sequence, true),
		"expressions.conditional": boolOrDefault(e.Conditional, true),
		"expressions.arrow":       boolOrDefault(e.Arrow, true),
		"expressions.function":    boolOrDefault(e.Function, true),

		"literals.array":   boolOrDefault(lit.Array, true),
		"literals.object":  boolOrDefault(lit.Object, true),
		"literals.numeric": boolOrDefault(lit.Numeric, true),
		"literals.string":  boolOrDefault(lit.String, true),
	}
}

// NameMode is the resolved name-filter mode (spec.md §4.4).
type NameMode string

const (
	NameModeNone    NameMode = "none"
	NameModeInclude NameMode = "include"
	NameModeExclude NameMode = "exclude"
)

// Mode resolves include/exclude precedence: a non-empty include list
// wins, else a non-empty exclude list, else no filtering.
func (n NameOptions) Mode() (NameMode, map[string]bool) {
	if len(n.Include) > 0 {
		return NameModeInclude, toSet(n.Include)
	}
	if len(n.Exclude) > 0 {
		return NameModeExclude, toSet(n.Exclude)
	}
	return NameModeNone, nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// VerifyOptions implements spec.md §6's sole semantic constraint.
func VerifyOptions(o Options) error {
	if len(o.Names.Include) > 0 && len(o.Names.Exclude) > 0 {
		return apierrors.NewOptionsSemanticInvalid("filter.names.include and filter.names.exclude cannot both be non-empty")
	}
	return nil
}
