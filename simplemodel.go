package simplemodel

import "github.com/goliatone/go-simplemodel/pkg/model"

// Definition aliases model.Definition for callers importing the module root.
type Definition = model.Definition

// Model aliases model.Model.
type Model = model.Model

// Values carries keyword-style constructor arguments.
type Values = model.Values

// Record is the ordered result of Model.Serialize.
type Record = model.Record

// Option configures a Definition.
type Option = model.Option

// ValidationError aggregates the field failures of one Validate call.
type ValidationError = model.ValidationError

// Define exposes the definition constructor from the top-level module.
func Define(name string, options ...Option) (*Definition, error) {
	return model.Define(name, options...)
}

// MustDefine is Define that panics on declaration errors, intended for
// package-level variables.
func MustDefine(name string, options ...Option) *Definition {
	return model.MustDefine(name, options...)
}

// New creates an instance of def populated from values.
func New(def *Definition, values Values) *Model {
	return model.New(def, values)
}
