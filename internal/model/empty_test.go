package model

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	filled := NewRecord(1)
	filled.Set("a", 1)
	var nilRecord *Record

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: true},
		{name: "empty string", value: "", want: true},
		{name: "string", value: "a", want: false},
		{name: "zero int", value: 0, want: true},
		{name: "int", value: 1, want: false},
		{name: "zero int8", value: int8(0), want: true},
		{name: "zero uint", value: uint(0), want: true},
		{name: "zero float", value: 0.0, want: true},
		{name: "float32", value: float32(0.5), want: false},
		{name: "zero complex", value: complex(0, 0), want: true},
		{name: "false", value: false, want: true},
		{name: "true", value: true, want: false},
		{name: "nil slice", value: []int(nil), want: true},
		{name: "empty slice", value: []int{}, want: true},
		{name: "slice", value: []int{1}, want: false},
		{name: "empty map", value: map[string]int{}, want: true},
		{name: "zero length array", value: [0]int{}, want: true},
		{name: "array", value: [1]int{}, want: false},
		{name: "struct", value: struct{}{}, want: false},
		{name: "zero time", value: time.Time{}, want: false},
		{name: "nil pointer", value: (*int)(nil), want: true},
		{name: "pointer", value: new(int), want: false},
		{name: "empty record", value: NewRecord(0), want: true},
		{name: "record", value: filled, want: false},
		{name: "nil record pointer", value: nilRecord, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.value); got != tt.want {
				t.Fatalf("IsEmpty(%#v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
