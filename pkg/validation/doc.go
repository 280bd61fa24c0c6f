// Package validation provides ready-made field validators for model
// definitions. Most of them delegate to go-playground/validator tag
// expressions; every failure wraps ErrInvalid.
package validation
