package model

import internalmodel "github.com/goliatone/go-simplemodel/internal/model"

// Serializable marks nested values that expand into plain structures when the
// owning model is serialized.
type Serializable = internalmodel.Serializable

// RecordSerializer is satisfied by *Model so models nest inside each other.
type RecordSerializer = internalmodel.RecordSerializer

// ValidatorFunc rejects a field value by returning an error.
type ValidatorFunc = internalmodel.ValidatorFunc

// CleanerFunc returns the normalised replacement for a field value.
type CleanerFunc = internalmodel.CleanerFunc

// FieldSpec describes one declared field and its hooks.
type FieldSpec = internalmodel.FieldSpec

// Record is the ordered, model-free result of Serialize.
type Record = internalmodel.Record

// FieldError is a single field failure inside a ValidationError.
type FieldError = internalmodel.FieldError

// Values carries keyword-style constructor arguments.
type Values map[string]any

// NewRecord returns an empty record sized for n keys.
func NewRecord(n int) Record {
	return internalmodel.NewRecord(n)
}

// IsEmpty reports whether value counts as empty for the allow-empty check.
func IsEmpty(value any) bool {
	return internalmodel.IsEmpty(value)
}
