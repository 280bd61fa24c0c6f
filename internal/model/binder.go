package model

import "reflect"

// Binder wraps one field of one model instance for the duration of a single
// Validate or Serialize pass. Value is a snapshot taken when the binder is
// built; binders are never cached across mutations.
type Binder struct {
	Name       string
	Value      any
	AllowEmpty bool

	validate ValidatorFunc
}

// NewBinder binds name to value. A nil hook means the field has no custom
// validation.
func NewBinder(name string, value any, allowEmpty bool, hook ValidatorFunc) Binder {
	return Binder{
		Name:       name,
		Value:      value,
		AllowEmpty: allowEmpty,
		validate:   hook,
	}
}

// HasValidator reports whether a validate hook is bound.
func (b Binder) HasValidator() bool {
	return b.validate != nil
}

// Empty reports whether the bound value is empty.
func (b Binder) Empty() bool {
	return IsEmpty(b.Value)
}

// Validate runs the bound hook against the value. Errors are returned as is;
// aggregation is the caller's job.
func (b Binder) Validate() error {
	if b.validate == nil {
		return nil
	}
	return b.validate(b.Value)
}

// Serialize returns the plain form of the bound value. Serializable values
// are expanded once. Slices and arrays holding serializable elements, at any
// depth, are expanded element by element with plain elements passed through.
// A nil pointer to a serializable type becomes nil. Anything else is returned
// raw.
//
// An empty serialized result is replaced by the raw value, so an empty slice
// of models comes back as the original slice and a nested value serializing
// to "" or 0 comes back as itself. Callers relying on the expanded form of an
// empty result must not depend on this.
func (b Binder) Serialize() any {
	serialized, ok := serializeValue(b.Value)
	if !ok {
		return b.Value
	}
	if isNilPointer(b.Value) {
		return nil
	}
	if IsEmpty(serialized) {
		return b.Value
	}
	return serialized
}

func serializeValue(value any) (any, bool) {
	if items, ok := serializeSequence(value); ok {
		return items, true
	}
	return serializeOne(value)
}

func serializeOne(value any) (any, bool) {
	switch v := value.(type) {
	case RecordSerializer:
		if isNilPointer(value) {
			return nil, true
		}
		return v.Serialize(), true
	case Serializable:
		if isNilPointer(value) {
			return nil, true
		}
		return v.Serialize(), true
	default:
		return nil, false
	}
}

// serializeSequence expands slices and arrays containing at least one
// serializable element. Strings, byte slices and maps are never sequences.
func serializeSequence(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	if _, ok := value.([]byte); ok {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	expanded := false
	for i := range items {
		item := rv.Index(i).Interface()
		if serialized, ok := serializeValue(item); ok {
			items[i] = serialized
			expanded = true
			continue
		}
		items[i] = item
	}
	if !expanded {
		return nil, false
	}
	return items, true
}

func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
