package testsupport

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-simplemodel/pkg/model"
)

// SampleFields is the field set shared by the model fixtures.
var SampleFields = []string{"foo", "bar", "baz", "qux"}

// ErrFooTooShort is returned by the sample definition's foo validator.
var ErrFooTooShort = errors.New("foo must have at least 3 characters")

// SampleDefinition declares foo, bar, baz and qux with baz and qux optional
// and a length validator on foo.
func SampleDefinition(options ...model.Option) *model.Definition {
	base := []model.Option{
		model.WithFields(SampleFields...),
		model.WithAllowEmpty("baz", "qux"),
		model.WithValidator("foo", model.ValidatorOf(func(value string) error {
			if utf8.RuneCountInString(value) < 3 {
				return ErrFooTooShort
			}
			return nil
		})),
	}
	return model.MustDefine("MyModel", append(base, options...)...)
}

// OptionalDefinition declares the sample fields with every field optional.
func OptionalDefinition() *model.Definition {
	return model.MustDefine("MyEmptyModel",
		model.WithFields(SampleFields...),
		model.WithAllowEmptyAll(),
	)
}

// SampleModel returns a valid instance of SampleDefinition.
func SampleModel() *model.Model {
	return SampleDefinition().New(model.Values{
		"foo": "foo",
		"bar": "bar",
		"baz": "",
		"qux": "",
	})
}

// SecondSampleModel returns another valid instance with different values.
func SecondSampleModel() *model.Model {
	return SampleDefinition().New(model.Values{
		"foo": "foo2",
		"bar": "bar2",
		"baz": "baz2",
		"qux": "qux2",
	})
}

// AssertRecord fails the test when got does not hold exactly want's keys in
// the given order with matching values. Nested records are compared through
// Record.Map.
func AssertRecord(t *testing.T, keys []string, want map[string]any, got model.Record) {
	t.Helper()

	if diff := cmp.Diff(keys, got.Keys()); diff != "" {
		t.Fatalf("record keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, got.Map()); diff != "" {
		t.Fatalf("record values mismatch (-want +got):\n%s", diff)
	}
}

// UpdateGoldens reports whether golden files should be rewritten, which is
// requested by setting UPDATE_GOLDENS.
func UpdateGoldens() bool {
	return os.Getenv("UPDATE_GOLDENS") != ""
}

// CompareGolden diffs got against the golden file at path and returns the
// diff, empty on a match. With update set the file is rewritten from got
// first, so the comparison always passes.
func CompareGolden(t testing.TB, path string, got []byte, update bool) string {
	t.Helper()

	if update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("golden %s: %v", path, err)
		}
		if err := os.WriteFile(path, got, 0o644); err != nil {
			t.Fatalf("golden %s: %v", path, err)
		}
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("golden %s: %v", path, err)
	}
	return cmp.Diff(string(want), string(got))
}
