package metadata

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/nutridex/model"
)

// Schema is the ordered list of numeric attributes a store indexes.
type Schema []string

// DefaultSchema returns the nutrient schema.
func DefaultSchema() Schema {
	return slices.Clone(Schema(model.DefaultAttributes))
}

// NewSchema builds a schema from attribute names. Names are lowercased and
// must be non-empty and unique.
func NewSchema(attrs ...string) (Schema, error) {
	if len(attrs) == 0 {
		return nil, fmt.Errorf("%w: no attributes", ErrInvalidSchema)
	}

	s := make(Schema, 0, len(attrs))
	for _, a := range attrs {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			return nil, fmt.Errorf("%w: empty attribute name", ErrInvalidSchema)
		}
		if strings.ContainsAny(a, " \t,") {
			return nil, fmt.Errorf("%w: attribute %q contains a separator", ErrInvalidSchema, a)
		}
		if s.Has(a) {
			return nil, fmt.Errorf("%w: duplicate attribute %q", ErrInvalidSchema, a)
		}
		s = append(s, a)
	}
	return s, nil
}

// Has reports whether attr is part of the schema.
func (s Schema) Has(attr string) bool {
	return slices.Contains(s, attr)
}

// Validate checks that every attribute the record declares is part of the
// schema.
func (s Schema) Validate(rec *model.Record) error {
	for _, attr := range rec.Attributes() {
		if !s.Has(attr) {
			return &UnknownAttributeError{Attribute: attr}
		}
	}
	return nil
}
