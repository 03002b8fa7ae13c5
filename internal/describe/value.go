// Package describe holds the wire-format value types used to carry
// arbitrary runtime values across the executor boundary (see
// internal/exec's injected NS.describe, which builds these shapes
// inside the traced page) and the Go-side inverse that reconstructs
// opaque placeholders from them.
package describe

import "encoding/json"

// ValueDescriptor is the tagged sum described in spec §3: either a
// primitive carried inline, or a compound value that indexes into a
// sibling heap.
type ValueDescriptor struct {
	Category string `json:"category"` // "primitive" | "compound"

	// Primitive fields.
	PrimType string      `json:"type,omitempty"`
	Value    interface{} `json:"value,omitempty"`
	Str      string      `json:"str,omitempty"` // symbols carry only their toString() form

	// Compound field.
	At int `json:"at,omitempty"`
}

// HeapEntry is one (key, value) pair of a HeapObject's enumerable own
// properties.
type HeapEntry struct {
	Key   string          `json:"key"`
	Value ValueDescriptor `json:"value"`
}

// HeapObject is a single compound value recorded in a DescribedValue's
// heap. Length is only meaningful for arrays; CName only for plain
// objects with a named constructor.
type HeapObject struct {
	Type    string      `json:"type"` // "object" | "array" | "function" | "promise"
	Entries []HeapEntry `json:"entries"`
	Length  *int        `json:"length,omitempty"`
	CName   string      `json:"cname,omitempty"`
}

// DescribedValue pairs a descriptor with the heap it may index into.
// The heap is self-contained: every `at` reference in Descriptor or in
// any HeapObject's entries resolves within this same Heap slice.
type DescribedValue struct {
	Descriptor ValueDescriptor `json:"descriptor"`
	Heap       []HeapObject    `json:"heap"`
}

// UnmarshalJSON accepts either the full {descriptor, heap} envelope or
// a bare descriptor object, which decodes with an empty heap. The
// injected runtime's describe always emits the full envelope.
func (d *DescribedValue) UnmarshalJSON(data []byte) error {
	type envelope struct {
		Descriptor *ValueDescriptor `json:"descriptor"`
		Heap       []HeapObject     `json:"heap"`
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Descriptor != nil {
		d.Descriptor = *env.Descriptor
		d.Heap = env.Heap
		return nil
	}
	var desc ValueDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return err
	}
	d.Descriptor = desc
	return nil
}
