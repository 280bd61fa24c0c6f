package model

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"go.uber.org/zap"

	internalmodel "github.com/goliatone/go-simplemodel/internal/model"
)

// Model is one instance of a Definition. Declared fields hold their current
// value (nil when unset); any other names given to New or Set are kept as
// extras that are neither validated nor serialized.
//
// A Model is not safe for concurrent use.
type Model struct {
	def    *Definition
	values map[string]any
	extra  map[string]any
}

// New creates an instance of def from keyword-style values. It panics with
// ErrNoFields when def is nil or declares no fields.
func New(def *Definition, values Values) *Model {
	if def == nil || len(def.fields) == 0 {
		panic(ErrNoFields)
	}

	m := &Model{
		def:    def,
		values: make(map[string]any, len(def.fields)),
	}
	for _, spec := range def.fields {
		m.values[spec.Name] = values[spec.Name]
	}
	for name, value := range values {
		if !def.Has(name) {
			m.setExtra(name, value)
		}
	}
	return m
}

func (m *Model) setExtra(name string, value any) {
	if m.extra == nil {
		m.extra = make(map[string]any)
	}
	m.extra[name] = value
}

// Definition returns the definition the model was built from.
func (m *Model) Definition() *Definition {
	return m.def
}

// Fields returns the declared field names in order.
func (m *Model) Fields() []string {
	return m.def.Fields()
}

// Has reports whether name is a declared field.
func (m *Model) Has(name string) bool {
	return m.def.Has(name)
}

// Get returns the value of a declared field or an extra.
func (m *Model) Get(name string) (any, bool) {
	if m.def.Has(name) {
		return m.values[name], true
	}
	value, ok := m.extra[name]
	return value, ok
}

// Value returns the value stored under name, or nil.
func (m *Model) Value(name string) any {
	value, _ := m.Get(name)
	return value
}

// Set assigns a field value. Undeclared names are stored as extras.
func (m *Model) Set(name string, value any) {
	if m.def.Has(name) {
		m.values[name] = value
		return
	}
	m.setExtra(name, value)
}

// Extra returns a value stored under an undeclared name.
func (m *Model) Extra(name string) (any, bool) {
	value, ok := m.extra[name]
	return value, ok
}

// All yields (field, value) pairs in declaration order. Each call starts a
// fresh pass over the current values.
func (m *Model) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, spec := range m.def.fields {
			if !yield(spec.Name, m.values[spec.Name]) {
				return
			}
		}
	}
}

// String renders the model as Name(field=value, ...) for diagnostics.
func (m *Model) String() string {
	var b strings.Builder
	b.WriteString(m.def.name)
	b.WriteByte('(')
	for i, spec := range m.def.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(spec.Name)
		b.WriteByte('=')
		b.WriteString(formatValue(m.values[spec.Name]))
	}
	b.WriteByte(')')
	return b.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Clean replaces every field that has a cleaner with the cleaner's result, in
// declaration order. Fields without a cleaner are left untouched.
func (m *Model) Clean() {
	for _, spec := range m.def.fields {
		if spec.Cleaner == nil {
			continue
		}
		m.values[spec.Name] = spec.Cleaner(m.values[spec.Name])
		m.def.logger.Debug("model field cleaned",
			zap.String("model", m.def.name),
			zap.String("field", spec.Name))
	}
}

// Validate checks every declared field: required fields must not be empty and
// bound validators must accept the value. All fields are checked; failures
// are returned together as a *ValidationError. A nil return means the model
// is valid.
func (m *Model) Validate() error {
	var failures []*FieldError
	for _, spec := range m.def.fields {
		if failure := internalmodel.Check(m.bind(spec)); failure != nil {
			m.def.logger.Debug("model field rejected",
				zap.String("model", m.def.name),
				zap.String("field", spec.Name),
				zap.Error(failure))
			failures = append(failures, failure)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return newValidationError(m.def.name, failures)
}

// Valid runs the same checks as Validate and reports success instead of
// returning the failures.
func (m *Model) Valid() bool {
	return m.Validate() == nil
}

// Serialize applies the cleaners and returns every declared field not listed
// in exclude, in declaration order. Nested models, Serializable values and
// sequences of them are expanded recursively.
func (m *Model) Serialize(exclude ...string) Record {
	m.Clean()

	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	record := NewRecord(len(m.def.fields))
	for _, spec := range m.def.fields {
		if _, excluded := skip[spec.Name]; excluded {
			continue
		}
		record.Set(spec.Name, m.bind(spec).Serialize())
	}
	return record
}

func (m *Model) bind(spec FieldSpec) internalmodel.Binder {
	return internalmodel.NewBinder(spec.Name, m.values[spec.Name], m.def.AllowsEmpty(spec.Name), spec.Validator)
}
