package model

import (
	"errors"
	"fmt"
	"strings"

	internalmodel "github.com/goliatone/go-simplemodel/internal/model"
)

// Declaration errors are returned by Define and Extend.
var (
	ErrNoFields         = errors.New("model: definition should include at least one field")
	ErrDuplicateField   = errors.New("model: duplicate field")
	ErrInvalidFieldName = errors.New("model: field name is required")
	ErrUnknownField     = errors.New("model: hook registered for undeclared field")
)

// Validation failure kinds, matched with errors.Is against a ValidationError
// or one of its FieldErrors.
var (
	ErrEmptyField      = internalmodel.ErrEmptyField
	ErrFieldValidation = internalmodel.ErrFieldValidation
)

// ErrTypeMismatch is returned by typed validators when the field holds a value
// of another type.
var ErrTypeMismatch = errors.New("model: unexpected value type")

// ValidationError aggregates every field failure from one Validate call.
type ValidationError struct {
	Model  string
	Fields []*FieldError
}

func newValidationError(model string, fields []*FieldError) *ValidationError {
	return &ValidationError{Model: model, Fields: fields}
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Fields))
	for i, field := range e.Fields {
		messages[i] = field.Error()
	}
	return fmt.Sprintf("model: %s validation failed: %s", e.Model, strings.Join(messages, "; "))
}

// Unwrap returns the individual field failures.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, len(e.Fields))
	for i, field := range e.Fields {
		out[i] = field
	}
	return out
}

// Field returns the failure recorded for name, or nil.
func (e *ValidationError) Field(name string) *FieldError {
	for _, field := range e.Fields {
		if field.Field == name {
			return field
		}
	}
	return nil
}
