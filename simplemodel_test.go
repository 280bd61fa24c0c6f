package simplemodel

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-simplemodel/pkg/model"
)

func TestDefineAndSerialize(t *testing.T) {
	def, err := Define("Pair", model.WithFields("left", "right"), model.WithAllowEmpty("right"))
	if err != nil {
		t.Fatalf("define: %v", err)
	}

	m := New(def, Values{"left": "a"})
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid model, got %v", err)
	}

	got := m.Serialize()
	if diff := cmp.Diff([]string{"left", "right"}, got.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"left": "a", "right": nil}, got.Map()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestDefineWithoutFields(t *testing.T) {
	if _, err := Define("Nothing"); !errors.Is(err, model.ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
}

func TestValidationErrorAlias(t *testing.T) {
	def := MustDefine("Pair", model.WithFields("left", "right"))

	err := New(def, nil).Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected two field failures, got %d", len(verr.Fields))
	}
}
