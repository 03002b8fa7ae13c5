package describe

import (
	"encoding/json"
	"testing"
)

func TestUndescribePrimitives(t *testing.T) {
	tests := []struct {
		name string
		json string
		want interface{}
	}{
		{"string", `{"category":"primitive","type":"string","value":"hi"}`, "hi"},
		{"number", `{"category":"primitive","type":"number","value":3}`, float64(3)},
		{"boolean", `{"category":"primitive","type":"boolean","value":true}`, true},
		{"null", `{"category":"primitive","type":"null"}`, nil},
		{"undefined", `{"category":"primitive","type":"undefined"}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dv DescribedValue
			if err := json.Unmarshal([]byte(tt.json), &dv); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			got, err := Undescribe(dv)
			if err != nil {
				t.Fatalf("Undescribe: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestUndescribeArray(t *testing.T) {
	raw := `{
		"descriptor": {"category":"compound","at":0},
		"heap": [
			{"type":"array","length":2,"entries":[
				{"key":"0","value":{"category":"primitive","type":"number","value":1}},
				{"key":"1","value":{"category":"primitive","type":"number","value":2}}
			]}
		]
	}`
	var dv DescribedValue
	if err := json.Unmarshal([]byte(raw), &dv); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got, err := Undescribe(dv)
	if err != nil {
		t.Fatalf("Undescribe: %v", err)
	}
	arr, ok := got.([]interface{})
	if !ok {
		t.Fatalf("got %T, want []interface{}", got)
	}
	if len(arr) != 2 || arr[0] != float64(1) || arr[1] != float64(2) {
		t.Errorf("got %#v", arr)
	}
}

func TestUndescribeCyclicObjectPreservesSharing(t *testing.T) {
	raw := `{
		"descriptor": {"category":"compound","at":0},
		"heap": [
			{"type":"object","entries":[
				{"key":"self","value":{"category":"compound","at":0}}
			]}
		]
	}`
	var dv DescribedValue
	if err := json.Unmarshal([]byte(raw), &dv); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got, err := Undescribe(dv)
	if err != nil {
		t.Fatalf("Undescribe: %v", err)
	}
	obj, ok := got.(map[string]interface{})
	if !ok {
		t.Fatalf("got %T, want map[string]interface{}", got)
	}
	self, ok := obj["self"].(map[string]interface{})
	if !ok {
		t.Fatalf("obj[self] = %#v, want the same map", obj["self"])
	}
	if self["self"].(map[string]interface{})["self"] == nil {
		t.Error("cycle did not round-trip: self.self.self is nil")
	}
}

func TestUndescribeFunctionPlaceholder(t *testing.T) {
	raw := `{
		"descriptor": {"category":"compound","at":0},
		"heap": [
			{"type":"function","entries":[
				{"key":"name","value":{"category":"primitive","type":"string","value":"f"}}
			]}
		]
	}`
	var dv DescribedValue
	if err := json.Unmarshal([]byte(raw), &dv); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got, err := Undescribe(dv)
	if err != nil {
		t.Fatalf("Undescribe: %v", err)
	}
	fn, ok := got.(*FunctionPlaceholder)
	if !ok {
		t.Fatalf("got %T, want *FunctionPlaceholder", got)
	}
	if fn.Name != "f" {
		t.Errorf("Name = %q, want %q", fn.Name, "f")
	}
}
