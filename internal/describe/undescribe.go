package describe

import "fmt"

// FunctionPlaceholder stands in for a described function value; the
// original closure cannot cross the process boundary, so Undescribe
// reconstructs an opaque marker carrying only its observed name.
type FunctionPlaceholder struct {
	Name string
}

// PromisePlaceholder stands in for a described promise; promises never
// settle across the boundary so only the marker survives.
type PromisePlaceholder struct{}

// ClassInstance stands in for a described plain object whose
// constructor name (cname) was recorded.
type ClassInstance struct {
	CName  string
	Fields map[string]interface{}
}

// Undescribe inverts Describe, reconstructing a Go-native tree of
// opaque placeholders from a DescribedValue. Compound values sharing
// the same heap index in the input are memoized so the reconstructed
// tree preserves sharing and cycles (see spec §8's round-trip
// property), one of the two testable-property round-trip guarantees
// the filter/describe pipeline must uphold.
func Undescribe(dv DescribedValue) (interface{}, error) {
	r := &reviver{heap: dv.Heap, seen: make(map[int]interface{})}
	return r.revive(dv.Descriptor)
}

type reviver struct {
	heap []HeapObject
	seen map[int]interface{}
}

func (r *reviver) revive(desc ValueDescriptor) (interface{}, error) {
	switch desc.Category {
	case "primitive":
		switch desc.PrimType {
		case "string":
			if s, ok := desc.Value.(string); ok {
				return s, nil
			}
			return "", nil
		case "number":
			if f, ok := desc.Value.(float64); ok {
				return f, nil
			}
			return float64(0), nil
		case "boolean":
			if b, ok := desc.Value.(bool); ok {
				return b, nil
			}
			return false, nil
		case "null":
			return nil, nil
		case "undefined":
			return nil, nil
		case "symbol":
			return desc.Str, nil
		default:
			return desc.Value, nil
		}
	case "compound":
		if v, ok := r.seen[desc.At]; ok {
			return v, nil
		}
		return r.reviveHeapObject(desc.At)
	default:
		return nil, fmt.Errorf("describe: unknown category %q", desc.Category)
	}
}

func (r *reviver) reviveHeapObject(at int) (interface{}, error) {
	if at < 0 || at >= len(r.heap) {
		return nil, fmt.Errorf("describe: heap index %d out of range", at)
	}
	obj := r.heap[at]

	switch obj.Type {
	case "function":
		ph := &FunctionPlaceholder{}
		r.seen[at] = ph
		for _, e := range obj.Entries {
			if e.Key == "name" {
				if s, ok := e.Value.Value.(string); ok {
					ph.Name = s
				}
			}
		}
		return ph, nil
	case "promise":
		ph := &PromisePlaceholder{}
		r.seen[at] = ph
		return ph, nil
	case "array":
		length := 0
		if obj.Length != nil {
			length = *obj.Length
		}
		arr := make([]interface{}, length)
		r.seen[at] = arr
		for _, e := range obj.Entries {
			idx := 0
			if _, err := fmt.Sscanf(e.Key, "%d", &idx); err != nil {
				continue
			}
			if idx < 0 || idx >= length {
				continue
			}
			v, err := r.revive(e.Value)
			if err != nil {
				return nil, err
			}
			arr[idx] = v
		}
		return arr, nil
	default: // "object"
		fields := make(map[string]interface{}, len(obj.Entries))
		var out interface{}
		if obj.CName != "" {
			inst := &ClassInstance{CName: obj.CName, Fields: fields}
			out = inst
		} else {
			out = fields
		}
		r.seen[at] = out
		for _, e := range obj.Entries {
			v, err := r.revive(e.Value)
			if err != nil {
				return nil, err
			}
			fields[e.Key] = v
		}
		return out, nil
	}
}
