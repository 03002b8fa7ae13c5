// Package identity exposes the static tracer identity tuple described
// in spec.md §6: the tracer id, supported source extensions, and the
// JSON Schema (draft-07) describing the options record. The host
// framework (out of scope per spec.md §1) reads this to validate
// caller-supplied options before invoking the core.
package identity

import "github.com/cwbudde/jsklve/internal/filter"

// ID is the tracer's static identifier.
const ID = "js:klve"

// Langs is the frozen list of supported source-file extensions.
var Langs = []string{"js", "mjs", "cjs"}

// OptionsSchema is a JSON Schema draft-07 document describing every
// field of filter.Options. All fields are optional; absent fields
// default to "include/keep" (see filter.Options's boolOrDefault).
var OptionsSchema = map[string]interface{}{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title":   "JsKlveOptions",
	"type":    "object",
	"properties": map[string]interface{}{
		"statements": toggleGroupSchema("expr", "declare", "if", "return", "throw", "try"),
		"loops":      toggleGroupSchema("for", "while"),
		"expressions": toggleGroupSchema(
			"identifier", "member", "assign", "update", "call", "new",
			"binary", "logical", "unary", "sequence", "conditional", "arrow", "function",
		),
		"literals": toggleGroupSchema("array", "object", "numeric", "string"),
		"timing": toggleGroupSchema("before", "after"),
		"names": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"include": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
				"exclude": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
			},
			"additionalProperties": false,
		},
		"data": toggleGroupSchema("scopes", "value", "logs", "dt", "loc"),
	},
	"additionalProperties": false,
}

func toggleGroupSchema(fields ...string) map[string]interface{} {
	props := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		props[f] = map[string]interface{}{"type": "boolean"}
	}
	return map[string]interface{}{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

// VerifyOptions re-exports filter.VerifyOptions as part of the
// identity boundary spec.md §6 describes (`verifyOptions(opts)`).
func VerifyOptions(opts filter.Options) error {
	return filter.VerifyOptions(opts)
}
