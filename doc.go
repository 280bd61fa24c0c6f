// Package simplemodel is a small declarative data-modelling layer. Record
// types are declared as a list of named fields with optional allow-empty,
// validate and clean hooks; instances validate all fields at once and
// serialize to ordered, model-free records. The full API lives in pkg/model;
// pkg/validation, pkg/cleaners and pkg/openapi provide ready-made hooks and
// schema export.
package simplemodel
