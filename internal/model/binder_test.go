package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type node struct {
	Name string
}

func (n node) Serialize() any {
	return map[string]any{"name": n.Name}
}

type blank struct {
	ID int
}

func (blank) Serialize() any { return "" }

type nilNode struct{}

func (nilNode) Serialize() any { return nil }

type nested struct {
	Keys []string
}

func (n *nested) Serialize(exclude ...string) Record {
	record := NewRecord(len(n.Keys))
	for _, key := range n.Keys {
		record.Set(key, key)
	}
	return record
}

func TestBinderSerialize(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "plain string", value: "foo", want: "foo"},
		{name: "nil", value: nil, want: nil},
		{name: "serializable", value: node{Name: "a"}, want: map[string]any{"name": "a"}},
		{
			name:  "slice of serializable",
			value: []node{{Name: "a"}, {Name: "b"}},
			want:  []any{map[string]any{"name": "a"}, map[string]any{"name": "b"}},
		},
		{
			name:  "array of serializable",
			value: [2]node{{Name: "a"}, {Name: "b"}},
			want:  []any{map[string]any{"name": "a"}, map[string]any{"name": "b"}},
		},
		{
			name:  "any slice of serializable",
			value: []any{node{Name: "a"}},
			want:  []any{map[string]any{"name": "a"}},
		},
		{
			name:  "mixed slice expands serializable elements",
			value: []any{node{Name: "a"}, "b", 3},
			want:  []any{map[string]any{"name": "a"}, "b", 3},
		},
		{
			name:  "nested sequences",
			value: [][]node{{{Name: "a"}}, {}},
			want:  []any{[]any{map[string]any{"name": "a"}}, []node{}},
		},
		{
			name:  "nil element becomes nil",
			value: []any{(*nested)(nil), "x"},
			want:  []any{nil, "x"},
		},
		{
			name:  "empty element serialization is kept",
			value: []blank{{ID: 1}},
			want:  []any{""},
		},
		{name: "plain slice stays raw", value: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "bytes stay raw", value: []byte("ab"), want: []byte("ab")},
		{name: "map stays raw", value: map[string]any{"k": node{Name: "a"}}, want: map[string]any{"k": node{Name: "a"}}},
		{name: "empty serialization falls back to raw", value: blank{ID: 7}, want: blank{ID: 7}},
		{name: "empty sequence falls back to raw", value: []node{}, want: []node{}},
		{name: "nil serializable pointer becomes nil", value: (*nested)(nil), want: nil},
		{name: "nil serialization falls back to raw", value: nilNode{}, want: nilNode{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBinder("field", tt.value, false, nil).Serialize()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("serialize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBinderSerializeRecordSerializer(t *testing.T) {
	got := NewBinder("field", &nested{Keys: []string{"b", "a"}}, false, nil).Serialize()

	record, ok := got.(Record)
	if !ok {
		t.Fatalf("expected Record, got %T", got)
	}
	if diff := cmp.Diff([]string{"b", "a"}, record.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	list := NewBinder("field", []*nested{{Keys: []string{"x"}}}, false, nil).Serialize()
	items, ok := list.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one serialized item, got %#v", list)
	}
	if diff := cmp.Diff(map[string]any{"x": "x"}, items[0].(Record).Map()); diff != "" {
		t.Fatalf("item mismatch (-want +got):\n%s", diff)
	}
}

func TestBinderSerializeLeavesNoSerializers(t *testing.T) {
	values := []any{
		[]any{&nested{Keys: []string{"a"}}, "x", []any{node{Name: "b"}, 1}},
		[2]any{(*nested)(nil), &nested{Keys: []string{"c"}}},
	}
	for _, value := range values {
		assertPlain(t, NewBinder("field", value, false, nil).Serialize())
	}
}

func assertPlain(t *testing.T, value any) {
	t.Helper()
	switch v := value.(type) {
	case RecordSerializer, Serializable:
		t.Fatalf("serialized output still holds %T", value)
	case []any:
		for _, item := range v {
			assertPlain(t, item)
		}
	case Record:
		for _, item := range v.All() {
			assertPlain(t, item)
		}
	}
}

func TestBinderValidate(t *testing.T) {
	if err := NewBinder("foo", "", false, nil).Validate(); err != nil {
		t.Fatalf("expected nil without hook, got %v", err)
	}

	boom := errors.New("boom")
	var seen any
	binder := NewBinder("foo", "value", false, func(value any) error {
		seen = value
		return boom
	})
	if !binder.HasValidator() {
		t.Fatalf("expected validator to be bound")
	}
	if err := binder.Validate(); err != boom {
		t.Fatalf("expected hook error to propagate unchanged, got %v", err)
	}
	if seen != "value" {
		t.Fatalf("expected hook to receive the bound value, got %#v", seen)
	}
}

func TestCheck(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	hook := func(any) error {
		calls++
		return boom
	}

	err := Check(NewBinder("foo", "", false, hook))
	if err == nil || !err.Empty() {
		t.Fatalf("expected empty field error, got %v", err)
	}
	if !errors.Is(err, ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField, got %v", err)
	}
	if got := err.Error(); got != "foo field cannot be empty" {
		t.Fatalf("unexpected message %q", got)
	}
	if calls != 0 {
		t.Fatalf("expected hook to be skipped for empty required field")
	}

	err = Check(NewBinder("foo", "", true, hook))
	if !errors.Is(err, ErrFieldValidation) || !errors.Is(err, boom) {
		t.Fatalf("expected hook failure for allowed empty value, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected hook to run once, ran %d times", calls)
	}
	if got := err.Error(); got != "foo: boom" {
		t.Fatalf("unexpected message %q", got)
	}

	if err := Check(NewBinder("foo", "x", false, nil)); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
