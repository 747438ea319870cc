package jsonutil

import (
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	var v struct {
		ID string `json:"id"`
	}
	if err := UnmarshalWithContext([]byte(`{"id":"c-1"}`), &v, "parse consent"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID != "c-1" {
		t.Errorf("ID = %q, want c-1", v.ID)
	}

	err := UnmarshalWithContext([]byte(`{bad`), &v, "parse consent")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "parse consent") {
		t.Errorf("error %q missing context", err)
	}
}

func TestDecodeWithContext(t *testing.T) {
	var v struct {
		Total int `json:"total"`
	}
	if err := DecodeWithContext(strings.NewReader(`{"total":42}`), &v, "decode page"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Total != 42 {
		t.Errorf("Total = %d, want 42", v.Total)
	}

	err := DecodeWithContext(strings.NewReader("nope"), &v, "decode page")
	if err == nil || !strings.Contains(err.Error(), "decode page") {
		t.Errorf("expected contextual error, got %v", err)
	}
}

func TestGetString(t *testing.T) {
	m := map[string]interface{}{"name": "Ada", "age": 37.0}
	if got := GetString(m, "name"); got != "Ada" {
		t.Errorf("GetString(name) = %q", got)
	}
	if got := GetString(m, "age"); got != "" {
		t.Errorf("GetString(age) = %q, want empty for non-string", got)
	}
	if got := GetString(m, "missing"); got != "" {
		t.Errorf("GetString(missing) = %q, want empty", got)
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{"x", "x"},
		{42.0, "42"},
		{4.5, "4.5"},
		{true, "true"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := ToString(tt.in); got != tt.want {
			t.Errorf("ToString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
