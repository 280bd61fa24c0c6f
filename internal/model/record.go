package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Record is the serialized form of a model: a mapping from field name to a
// plain value that remembers insertion order. The zero value is an empty
// record ready to use.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record sized for n keys.
func NewRecord(n int) Record {
	return Record{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// Set stores value under key. New keys are appended; existing keys keep their
// position.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (r Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of keys.
func (r Record) Len() int {
	return len(r.keys)
}

// All yields key/value pairs in insertion order.
func (r Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range r.keys {
			if !yield(key, r.values[key]) {
				return
			}
		}
	}
}

// Map converts the record into a plain map, descending into nested records
// and []any slices so the result holds no Record values.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.keys))
	for _, key := range r.keys {
		out[key] = plain(r.values[key])
	}
	return out
}

func plain(value any) any {
	switch v := value.(type) {
	case Record:
		return v.Map()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plain(item)
		}
		return out
	default:
		return value
	}
}

// MarshalJSON encodes the record as a JSON object with keys in insertion
// order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("record: encode key %q: %w", key, err)
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		encodedValue, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("record: encode %q: %w", key, err)
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a YAML mapping node with keys in insertion
// order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range r.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(r.values[key]); err != nil {
			return nil, fmt.Errorf("record: encode %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
