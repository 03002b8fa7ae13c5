// Package filter applies spec.md §4.4's post-processing pipeline to a
// raw step list: timing filter, node-type filter, name filter, data
// strip, renumber.
package filter

import (
	"encoding/json"

	"github.com/cwbudde/jsklve/internal/describe"
)

// Step is the output entity described in spec.md §3.
type Step struct {
	Step     int                        `json:"step"`
	Category string                     `json:"category"`
	Type     string                     `json:"type,omitempty"`
	Time     string                     `json:"time,omitempty"`
	Dt       *float64                   `json:"dt,omitempty"`
	Loc      json.RawMessage            `json:"loc,omitempty"`
	Scopes   json.RawMessage            `json:"scopes,omitempty"`
	Value    *describe.DescribedValue   `json:"value,omitempty"`
	Logs     []json.RawMessage          `json:"logs,omitempty"`
	Detail   map[string]interface{}     `json:"detail,omitempty"`
}

// rawStep mirrors the wire shape the injected reporter actually
// produces (§4.2's meta object), decoded once per step before the
// typed pipeline below runs over it.
type rawStep struct {
	Step     int                    `json:"step"`
	Category string                 `json:"category"`
	Type     string                 `json:"type"`
	Time     string                 `json:"time"`
	Dt       float64                `json:"dt"`
	Loc      json.RawMessage        `json:"loc"`
	Scopes   json.RawMessage        `json:"scopes"`
	Value    json.RawMessage        `json:"value"`
	Logs     []json.RawMessage      `json:"logs"`
	Detail   map[string]interface{} `json:"detail"`
}

// ParseRawSteps decodes the executor's raw JSON step list into Step
// values, prior to filtering. The lone init step (category "init") has
// only {step, category} and decodes with every other field zero.
func ParseRawSteps(raw []json.RawMessage) ([]Step, error) {
	steps := make([]Step, 0, len(raw))
	for _, r := range raw {
		var rs rawStep
		if err := json.Unmarshal(r, &rs); err != nil {
			return nil, err
		}
		s := Step{
			Step:     rs.Step,
			Category: rs.Category,
			Type:     rs.Type,
			Time:     rs.Time,
			Loc:      rs.Loc,
			Scopes:   rs.Scopes,
			Logs:     rs.Logs,
			Detail:   rs.Detail,
		}
		if rs.Category != "init" {
			dt := rs.Dt
			s.Dt = &dt
		}
		if len(rs.Value) > 0 {
			var dv describe.DescribedValue
			if err := json.Unmarshal(rs.Value, &dv); err == nil {
				s.Value = &dv
			}
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Apply runs the full pipeline over raw steps and returns the final,
// renumbered, field-stripped sequence.
func Apply(steps []Step, opts Options) []Step {
	steps = applyTiming(steps, opts.Timing)
	steps = applyNodeType(steps, opts)
	steps = applyNames(steps, opts.Names)
	steps = applyDataStrip(steps, opts.Data)
	return renumber(steps)
}

func applyTiming(steps []Step, t TimingOptions) []Step {
	before := boolOrDefault(t.Before, true)
	after := boolOrDefault(t.After, true)
	if before && after {
		return steps
	}
	out := steps[:0:0]
	for _, s := range steps {
		if s.Category == "init" {
			out = append(out, s)
			continue
		}
		if s.Time == "before" && !before {
			continue
		}
		if s.Time == "after" && !after {
			continue
		}
		out = append(out, s)
	}
	return out
}

func applyNodeType(steps []Step, opts Options) []Step {
	flat := opts.flattenNodeTypes()
	out := steps[:0:0]
	for _, s := range steps {
		if s.Category == "init" {
			out = append(out, s)
			continue
		}
		path, known := NodeTypePath(s.Type)
		if known && !flat[path] {
			continue
		}
		out = append(out, s)
	}
	return out
}

func applyNames(steps []Step, names NameOptions) []Step {
	mode, set := names.Mode()
	if mode == NameModeNone {
		return steps
	}
	out := steps[:0:0]
	for _, s := range steps {
		if s.Category == "init" {
			out = append(out, s)
			continue
		}
		candidates := nameCandidates(s.Detail)
		if len(candidates) == 0 {
			out = append(out, s)
			continue
		}
		anyIn := false
		for _, c := range candidates {
			if set[c] {
				anyIn = true
				break
			}
		}
		keep := anyIn
		if mode == NameModeExclude {
			keep = !anyIn
		}
		if keep {
			out = append(out, s)
		}
	}
	return out
}

func nameCandidates(detail map[string]interface{}) []string {
	var out []string
	for _, key := range []string{"name", "target", "callee", "property"} {
		if v, ok := detail[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func applyDataStrip(steps []Step, d DataOptions) []Step {
	keepScopes := boolOrDefault(d.Scopes, true)
	keepValue := boolOrDefault(d.Value, true)
	keepLogs := boolOrDefault(d.Logs, true)
	keepDt := boolOrDefault(d.Dt, true)
	keepLoc := boolOrDefault(d.Loc, true)
	if keepScopes && keepValue && keepLogs && keepDt && keepLoc {
		return steps
	}
	out := make([]Step, len(steps))
	for i, s := range steps {
		if !keepScopes {
			s.Scopes = nil
		}
		if !keepValue {
			s.Value = nil
		}
		if !keepLogs {
			s.Logs = nil
		}
		if !keepDt {
			s.Dt = nil
		}
		if !keepLoc {
			s.Loc = nil
		}
		out[i] = s
	}
	return out
}

func renumber(steps []Step) []Step {
	for i := range steps {
		steps[i].Step = i + 1
	}
	return steps
}
