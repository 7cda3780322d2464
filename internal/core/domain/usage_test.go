package domain

import (
	"encoding/json"
	"testing"
)

func TestLooseInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int64
	}{
		{"number", `42`, 42},
		{"numeric string", `"42"`, 42},
		{"string with spaces", `" 42 "`, 42},
		{"zero", `0`, 0},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"banana"`, 0},
		{"float truncates", `3.9`, 3},
		{"negative", `-5`, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l LooseInt
			if err := json.Unmarshal([]byte(tt.json), &l); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if int64(l) != tt.want {
				t.Errorf("input %s: expected %d, got %d", tt.json, tt.want, int64(l))
			}
		})
	}
}

func TestLooseBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want bool
	}{
		{"true", `true`, true},
		{"false", `false`, false},
		{"one", `1`, true},
		{"zero", `0`, false},
		{"string one", `"1"`, true},
		{"string true", `"true"`, true},
		{"string TRUE", `"TRUE"`, true},
		{"string on", `"on"`, true},
		{"string yes", `"yes"`, true},
		{"string false", `"false"`, false},
		{"string off", `"off"`, false},
		{"string garbage", `"banana"`, false},
		{"empty string", `""`, false},
		{"null", `null`, false},
		{"other number", `2`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l LooseBool
			if err := json.Unmarshal([]byte(tt.json), &l); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bool(l) != tt.want {
				t.Errorf("input %s: expected %v, got %v", tt.json, tt.want, bool(l))
			}
		})
	}
}

func TestLooseInt_InStruct(t *testing.T) {
	// The picker serialises IDs as strings in some code paths
	var payload struct {
		ID *LooseInt `json:"id"`
	}
	if err := json.Unmarshal([]byte(`{"id":"123"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.ID == nil || int64(*payload.ID) != 123 {
		t.Errorf("expected pointer to 123, got %v", payload.ID)
	}

	payload.ID = nil
	if err := json.Unmarshal([]byte(`{}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.ID != nil {
		t.Error("expected absent field to leave pointer nil")
	}
}
