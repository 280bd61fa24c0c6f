package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-simplemodel/pkg/model"
)

// FieldOrderExtension lists the declared field order, which the properties
// map cannot carry.
const FieldOrderExtension = "x-field-order"

// Option customises schema generation.
type Option func(*options)

type options struct {
	labeler func(string) string
}

// WithLabeler overrides Label as the function deriving property titles from
// field names.
func WithLabeler(labeler func(string) string) Option {
	return func(opts *options) {
		if labeler != nil {
			opts.labeler = labeler
		}
	}
}

// Schema describes def as an OpenAPI object schema. Every declared field
// becomes an untyped property titled by the labeler; fields that may not be
// empty are listed as required and allow-empty fields are nullable.
func Schema(def *model.Definition, opts ...Option) *openapi3.Schema {
	cfg := options{labeler: Label}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	schema := openapi3.NewObjectSchema()
	schema.Title = def.Name()

	fields := def.Fields()
	order := make([]any, 0, len(fields))
	for _, name := range fields {
		property := openapi3.NewSchema()
		property.Title = cfg.labeler(name)
		if def.AllowsEmpty(name) {
			property.Nullable = true
		} else {
			schema.Required = append(schema.Required, name)
		}
		schema.WithProperty(name, property)
		order = append(order, name)
	}
	schema.Extensions = map[string]any{FieldOrderExtension: order}
	return schema
}

// Components returns a components object holding one schema per definition,
// keyed by definition name.
func Components(defs ...*model.Definition) openapi3.Components {
	components := openapi3.NewComponents()
	components.Schemas = make(openapi3.Schemas, len(defs))
	for _, def := range defs {
		if def == nil {
			continue
		}
		components.Schemas[def.Name()] = openapi3.NewSchemaRef("", Schema(def))
	}
	return components
}
