package model

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Definition declares the fields of a model type, which of them may stay
// empty, and the validate/clean hooks bound to each. Definitions are immutable
// once built and may be shared between goroutines.
type Definition struct {
	name     string
	fields   []FieldSpec
	index    map[string]int
	allow    map[string]struct{}
	allowAll bool
	logger   *zap.Logger
}

// Option configures a Definition under construction.
type Option func(*draft)

// FieldOption configures a single field declared with WithField.
type FieldOption func(d *draft, field string)

type draft struct {
	fields     []string
	declared   map[string]struct{}
	allow      map[string]struct{}
	allowAll   bool
	validators map[string]ValidatorFunc
	cleaners   map[string]CleanerFunc
	logger     *zap.Logger
	err        error
}

func newDraft() *draft {
	return &draft{
		declared:   make(map[string]struct{}),
		allow:      make(map[string]struct{}),
		validators: make(map[string]ValidatorFunc),
		cleaners:   make(map[string]CleanerFunc),
		logger:     zap.NewNop(),
	}
}

func (d *draft) declare(name string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		d.err = multierr.Append(d.err, ErrInvalidFieldName)
		return
	}
	if _, exists := d.declared[trimmed]; exists {
		d.err = multierr.Append(d.err, fmt.Errorf("%w: %q", ErrDuplicateField, trimmed))
		return
	}
	d.declared[trimmed] = struct{}{}
	d.fields = append(d.fields, trimmed)
}

// WithFields declares fields in order.
func WithFields(names ...string) Option {
	return func(d *draft) {
		for _, name := range names {
			d.declare(name)
		}
	}
}

// WithField declares one field and applies per-field options to it.
func WithField(name string, options ...FieldOption) Option {
	return func(d *draft) {
		d.declare(name)
		trimmed := strings.TrimSpace(name)
		for _, opt := range options {
			if opt != nil {
				opt(d, trimmed)
			}
		}
	}
}

// WithAllowEmpty exempts the named fields from the non-empty requirement.
// Names that are not declared are kept so extensions declaring them later
// inherit the exemption.
func WithAllowEmpty(names ...string) Option {
	return func(d *draft) {
		for _, name := range names {
			d.allow[strings.TrimSpace(name)] = struct{}{}
		}
	}
}

// WithAllowEmptyAll makes every field optional.
func WithAllowEmptyAll() Option {
	return func(d *draft) {
		d.allowAll = true
	}
}

// WithValidator binds a validate hook to a declared field, replacing any
// previous hook.
func WithValidator(name string, fn ValidatorFunc) Option {
	return func(d *draft) {
		d.validators[strings.TrimSpace(name)] = fn
	}
}

// WithCleaner binds a clean hook to a declared field, replacing any previous
// hook.
func WithCleaner(name string, fn CleanerFunc) Option {
	return func(d *draft) {
		d.cleaners[strings.TrimSpace(name)] = fn
	}
}

// WithLogger routes validation and cleaning diagnostics to logger at debug
// level. A nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(d *draft) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// AllowEmpty marks the field as optional.
func AllowEmpty() FieldOption {
	return func(d *draft, field string) {
		d.allow[field] = struct{}{}
	}
}

// Validator binds a validate hook to the field.
func Validator(fn ValidatorFunc) FieldOption {
	return func(d *draft, field string) {
		d.validators[field] = fn
	}
}

// Cleaner binds a clean hook to the field.
func Cleaner(fn CleanerFunc) FieldOption {
	return func(d *draft, field string) {
		d.cleaners[field] = fn
	}
}

// Define builds a Definition named name from options. A definition without
// fields, with duplicate or blank names, or with hooks for undeclared fields
// is rejected.
func Define(name string, options ...Option) (*Definition, error) {
	return build(name, newDraft(), options)
}

// MustDefine is Define for package-level declarations; it panics on error.
func MustDefine(name string, options ...Option) *Definition {
	def, err := Define(name, options...)
	if err != nil {
		panic(err)
	}
	return def
}

// Extend derives a new Definition from d: the parent's fields, allow-empty
// names and hooks are copied, then options append to them. d is not modified.
func (d *Definition) Extend(name string, options ...Option) (*Definition, error) {
	if d == nil {
		return Define(name, options...)
	}
	base := newDraft()
	base.logger = d.logger
	base.allowAll = d.allowAll
	for allowed := range d.allow {
		base.allow[allowed] = struct{}{}
	}
	for _, spec := range d.fields {
		base.declared[spec.Name] = struct{}{}
		base.fields = append(base.fields, spec.Name)
		if spec.Validator != nil {
			base.validators[spec.Name] = spec.Validator
		}
		if spec.Cleaner != nil {
			base.cleaners[spec.Name] = spec.Cleaner
		}
	}
	return build(name, base, options)
}

// MustExtend is Extend that panics on error.
func (d *Definition) MustExtend(name string, options ...Option) *Definition {
	def, err := d.Extend(name, options...)
	if err != nil {
		panic(err)
	}
	return def
}

func build(name string, d *draft, options []Option) (*Definition, error) {
	for _, opt := range options {
		if opt != nil {
			opt(d)
		}
	}

	if len(d.fields) == 0 {
		d.err = multierr.Append(d.err, ErrNoFields)
	}
	for _, field := range sortedKeys(d.validators) {
		if _, ok := d.declared[field]; !ok {
			d.err = multierr.Append(d.err, fmt.Errorf("%w: validator for %q", ErrUnknownField, field))
		}
	}
	for _, field := range sortedKeys(d.cleaners) {
		if _, ok := d.declared[field]; !ok {
			d.err = multierr.Append(d.err, fmt.Errorf("%w: cleaner for %q", ErrUnknownField, field))
		}
	}
	if d.err != nil {
		return nil, fmt.Errorf("model %s: %w", name, d.err)
	}

	def := &Definition{
		name:     name,
		fields:   make([]FieldSpec, len(d.fields)),
		index:    make(map[string]int, len(d.fields)),
		allow:    d.allow,
		allowAll: d.allowAll,
		logger:   d.logger,
	}
	for i, field := range d.fields {
		def.fields[i] = FieldSpec{
			Name:      field,
			Validator: d.validators[field],
			Cleaner:   d.cleaners[field],
		}
		def.index[field] = i
	}
	return def, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Name returns the display name of the definition.
func (d *Definition) Name() string {
	return d.name
}

// Fields returns the declared field names in order.
func (d *Definition) Fields() []string {
	names := make([]string, len(d.fields))
	for i, spec := range d.fields {
		names[i] = spec.Name
	}
	return names
}

// Specs returns a copy of the declared fields with their hooks.
func (d *Definition) Specs() []FieldSpec {
	return append([]FieldSpec(nil), d.fields...)
}

// Spec returns the declaration of name.
func (d *Definition) Spec(name string) (FieldSpec, bool) {
	i, ok := d.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return d.fields[i], true
}

// Has reports whether name is a declared field.
func (d *Definition) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// AllowEmpty returns the explicitly exempted names, sorted. It does not
// reflect WithAllowEmptyAll; use AllowsAllEmpty for that.
func (d *Definition) AllowEmpty() []string {
	return sortedKeys(d.allow)
}

// AllowsAllEmpty reports whether every field is optional.
func (d *Definition) AllowsAllEmpty() bool {
	return d.allowAll
}

// AllowsEmpty reports whether name may hold an empty value.
func (d *Definition) AllowsEmpty(name string) bool {
	if d.allowAll {
		return true
	}
	_, ok := d.allow[name]
	return ok
}

// New is shorthand for New(d, values).
func (d *Definition) New(values Values) *Model {
	return New(d, values)
}
