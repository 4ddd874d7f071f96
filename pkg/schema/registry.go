// Package schema holds the per-resource payload contracts and checks
// incoming documents against them before anything touches the store.
package schema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Violation describes a single failed schema rule.
type Violation struct {
	Field       string
	Description string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Description)
}

// Registry maps resource kinds to their compiled contracts. It is built once
// at startup and read-only afterwards.
type Registry struct {
	schemas map[string]*gojsonschema.Schema
}

func New() (*Registry, error) {
	r := &Registry{schemas: make(map[string]*gojsonschema.Schema, len(documents))}
	for kind, doc := range documents {
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", kind, err)
		}
		r.schemas[kind] = compiled
	}
	return r, nil
}

// Validate checks a raw JSON document against the named contract. A nil
// Violation means the document is acceptable. When several rules fail only
// the first reported one is surfaced; callers never need more than one.
// The returned error is reserved for unknown kinds and undecodable input
// that got past the caller, not for contract failures.
func (r *Registry) Validate(kind string, document []byte) (*Violation, error) {
	compiled, ok := r.schemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}

	first := result.Errors()[0]
	return &Violation{
		Field:       first.Field(),
		Description: first.Description(),
	}, nil
}
