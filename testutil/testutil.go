package testutil

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/go-faker/faker/v4"

	"github.com/hupe1980/nutridex/bptree"
	"github.com/hupe1980/nutridex/metadata"
	"github.com/hupe1980/nutridex/model"
)

// ValueSteps is the number of distinct values RNG.Value produces. A small
// grid makes duplicate keys common.
const ValueSteps = 200

// RNG encapsulates a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewPCG(r.seed, r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Value returns a nutrient value on a half-unit grid in [0, ValueSteps/2).
func (r *RNG) Value() float64 {
	return float64(r.IntN(ValueSteps)) / 2
}

// Comparator returns one of the three comparators.
func (r *RNG) Comparator() bptree.Comparator {
	return bptree.Comparators[r.IntN(len(bptree.Comparators))]
}

// Records returns n records with unique IDs, faker-generated names and a
// random value for every attribute.
func (r *RNG) Records(n int, attrs []string) []*model.Record {
	recs := make([]*model.Record, n)
	for i := range recs {
		b := model.NewRecord(fmt.Sprintf("rec-%06d", i), faker.Word()+" "+faker.Word())
		for _, attr := range attrs {
			b.WithNutrient(attr, r.Value())
		}
		recs[i] = b.Build()
	}
	return recs
}

// Rules returns n random rules over attrs.
func (r *RNG) Rules(n int, attrs []string) []metadata.Rule {
	rules := make([]metadata.Rule, n)
	for i := range rules {
		rules[i] = metadata.Rule{
			Attribute: attrs[r.IntN(len(attrs))],
			Op:        r.Comparator(),
			Threshold: r.Value(),
		}
	}
	return rules
}

// ExpectedFilter returns the records matching every rule, in input order,
// by evaluating each rule against each record.
func ExpectedFilter(recs []*model.Record, rules []metadata.Rule) []*model.Record {
	var out []*model.Record
	for _, rec := range recs {
		ok := true
		for _, rule := range rules {
			if !rule.Matches(rec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out
}

// ExpectedName returns the records whose name contains substr, ignoring
// case, in input order.
func ExpectedName(recs []*model.Record, substr string) []*model.Record {
	substr = strings.ToLower(substr)

	var out []*model.Record
	for _, rec := range recs {
		if strings.Contains(strings.ToLower(rec.Name), substr) {
			out = append(out, rec)
		}
	}
	return out
}

// IDs returns the IDs of recs in order.
func IDs(recs []*model.Record) []string {
	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
	}
	return ids
}
