package model

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// RowID is a dense, store-local identifier for a record.
// It is assigned in insertion order and never reused.
type RowID uint32

// Attribute names of the default nutrient schema.
const (
	Calories     = "calories"
	Fat          = "fat"
	Carbohydrate = "carbohydrate"
	Fiber        = "fiber"
	Protein      = "protein"
)

// DefaultAttributes is the nutrient vocabulary, in serialization order.
var DefaultAttributes = []string{Calories, Fat, Carbohydrate, Fiber, Protein}

// Record is a single food item.
//
// Records handed to a store must not be modified afterwards.
type Record struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Nutrients map[string]float64 `json:"nutrients"`
}

// Value returns the value of the given attribute.
func (r *Record) Value(attr string) (float64, bool) {
	v, ok := r.Nutrients[attr]
	return v, ok
}

// ValueOrZero returns the value of the given attribute, or 0 if the record
// does not declare it.
func (r *Record) ValueOrZero(attr string) float64 {
	return r.Nutrients[attr]
}

// Attributes returns the declared attribute names in sorted order.
func (r *Record) Attributes() []string {
	return slices.Sorted(maps.Keys(r.Nutrients))
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	return &Record{
		ID:        r.ID,
		Name:      r.Name,
		Nutrients: maps.Clone(r.Nutrients),
	}
}

// String returns a short representation of the record.
func (r *Record) String() string {
	return fmt.Sprintf("Record(%s:%s)", r.ID, r.Name)
}

// RecordBuilder builds a Record.
type RecordBuilder struct {
	rec *Record
}

// NewRecord starts building a record with the given identifier and name.
func NewRecord(id, name string) *RecordBuilder {
	return &RecordBuilder{rec: &Record{
		ID:        id,
		Name:      name,
		Nutrients: make(map[string]float64),
	}}
}

// WithNutrient sets a nutrient value. Names are lowercased; a repeated name
// overwrites the earlier value.
func (b *RecordBuilder) WithNutrient(name string, value float64) *RecordBuilder {
	b.rec.Nutrients[strings.ToLower(name)] = value
	return b
}

// WithNutrients sets several nutrient values.
func (b *RecordBuilder) WithNutrients(values map[string]float64) *RecordBuilder {
	for k, v := range values {
		b.WithNutrient(k, v)
	}
	return b
}

// Build returns the record.
func (b *RecordBuilder) Build() *Record {
	return b.rec
}
