package model

// Serializable is implemented by values that know how to turn themselves into
// a plain, model-free structure. Field binders expand these recursively.
type Serializable interface {
	Serialize() any
}

// RecordSerializer is implemented by model instances. The variadic argument
// lists field names to leave out; binders always call it with none.
type RecordSerializer interface {
	Serialize(exclude ...string) Record
}

// ValidatorFunc rejects a field value by returning an error. The return value
// is otherwise ignored.
type ValidatorFunc func(value any) error

// CleanerFunc normalises a field value and returns the replacement. Cleaners
// must not fail; values they do not understand are returned unchanged.
type CleanerFunc func(value any) any

// FieldSpec declares one field of a model definition together with its
// optional hooks. Struct fields are exported so definitions can be inspected
// by describers such as the OpenAPI exporter.
type FieldSpec struct {
	Name      string
	Validator ValidatorFunc
	Cleaner   CleanerFunc
}
