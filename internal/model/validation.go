package model

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyField      = errors.New("model: field cannot be empty")
	ErrFieldValidation = errors.New("model: field validation failed")
)

// FieldError records why a single field failed validation. Err is either
// ErrEmptyField or the error returned by the field's validate hook.
type FieldError struct {
	Field string
	Err   error
}

// Error keeps the "<field> field cannot be empty" wording for empty fields and
// prefixes hook messages with the field name.
func (e *FieldError) Error() string {
	if e.Empty() {
		return fmt.Sprintf("%s field cannot be empty", e.Field)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap exposes the failure kind and the underlying hook error.
func (e *FieldError) Unwrap() []error {
	if e.Empty() {
		return []error{e.Err}
	}
	return []error{ErrFieldValidation, e.Err}
}

// Empty reports whether the failure comes from the allow-empty check of this
// field. Hook errors that merely wrap ErrEmptyField, such as nested model
// failures, do not count.
func (e *FieldError) Empty() bool {
	return e.Err == ErrEmptyField
}

// Check applies the allow-empty policy and then the validate hook to one
// bound field. It returns nil when the field is acceptable.
func Check(b Binder) *FieldError {
	if b.Empty() && !b.AllowEmpty {
		return &FieldError{Field: b.Name, Err: ErrEmptyField}
	}
	if err := b.Validate(); err != nil {
		return &FieldError{Field: b.Name, Err: err}
	}
	return nil
}
