// Package cleaners provides ready-made field cleaners for model definitions.
// String cleaners leave values of other types untouched, so they are safe to
// bind to fields that may be unset.
package cleaners

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/goliatone/go-simplemodel/pkg/model"
)

// TrimSpace removes leading and trailing white space.
func TrimSpace() model.CleanerFunc {
	return model.CleanerOf(strings.TrimSpace)
}

// Lower lower-cases strings using Unicode rules.
func Lower() model.CleanerFunc {
	return model.CleanerOf(func(value string) string {
		return cases.Lower(language.Und).String(value)
	})
}

// Upper upper-cases strings using Unicode rules.
func Upper() model.CleanerFunc {
	return model.CleanerOf(func(value string) string {
		return cases.Upper(language.Und).String(value)
	})
}

// NFC normalises strings to Unicode normalization form C.
func NFC() model.CleanerFunc {
	return model.CleanerOf(norm.NFC.String)
}

// CanonicalUUID rewrites parseable UUIDs (braced, URN or upper-case forms) to
// the lower-case hyphenated form. Unparseable strings are kept.
func CanonicalUUID() model.CleanerFunc {
	return model.CleanerOf(func(value string) string {
		parsed, err := uuid.Parse(strings.TrimSpace(value))
		if err != nil {
			return value
		}
		return parsed.String()
	})
}

// DefaultTo replaces empty values with fallback.
func DefaultTo(fallback any) model.CleanerFunc {
	return func(value any) any {
		if model.IsEmpty(value) {
			return fallback
		}
		return value
	}
}

// Each applies fn to every element of a []string or []any and returns a new
// slice. For []string, results that are no longer strings keep the original
// element. Other values are passed to fn directly.
func Each(fn model.CleanerFunc) model.CleanerFunc {
	return func(value any) any {
		switch items := value.(type) {
		case []string:
			out := make([]string, len(items))
			for i, item := range items {
				cleaned, ok := fn(item).(string)
				if !ok {
					cleaned = item
				}
				out[i] = cleaned
			}
			return out
		case []any:
			out := make([]any, len(items))
			for i, item := range items {
				out[i] = fn(item)
			}
			return out
		default:
			return fn(value)
		}
	}
}

// Chain runs cleaners in order, feeding each the previous result.
func Chain(cleaners ...model.CleanerFunc) model.CleanerFunc {
	return func(value any) any {
		for _, clean := range cleaners {
			if clean != nil {
				value = clean(value)
			}
		}
		return value
	}
}
