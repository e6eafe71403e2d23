package imetadata

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/nutridex/model"
)

// DefaultChunkSizes are the window lengths indexed by default.
var DefaultChunkSizes = []int{3, 5}

// ChunkIndex maps fixed-length name fragments to the rows whose lowercased
// name contains them.
type ChunkIndex struct {
	sizes   []int // ascending, unique
	buckets map[string]*RowSet
}

// NewChunkIndex creates an index over the given window sizes. With no sizes,
// DefaultChunkSizes is used.
func NewChunkIndex(sizes ...int) (*ChunkIndex, error) {
	if len(sizes) == 0 {
		sizes = DefaultChunkSizes
	}

	sorted := slices.Clone(sizes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if sorted[0] <= 0 {
		return nil, fmt.Errorf("invalid chunk size %d", sorted[0])
	}

	return &ChunkIndex{
		sizes:   sorted,
		buckets: make(map[string]*RowSet),
	}, nil
}

// Sizes returns the indexed window sizes in ascending order.
func (ci *ChunkIndex) Sizes() []int {
	return slices.Clone(ci.sizes)
}

// MinSize returns the smallest indexed window size. Queries shorter than
// this cannot be narrowed.
func (ci *ChunkIndex) MinSize() int {
	return ci.sizes[0]
}

// Len returns the number of distinct chunks.
func (ci *ChunkIndex) Len() int {
	return len(ci.buckets)
}

// Add indexes every window of every size of the lowercased name.
func (ci *ChunkIndex) Add(name string, id model.RowID) {
	name = strings.ToLower(name)
	for _, size := range ci.sizes {
		for i := 0; i+size <= len(name); i++ {
			chunk := name[i : i+size]
			b, ok := ci.buckets[chunk]
			if !ok {
				b = NewRowSet()
				ci.buckets[chunk] = b
			}
			b.Add(id)
		}
	}
}

// Bucket returns the rows containing chunk. The result must not be modified.
func (ci *ChunkIndex) Bucket(chunk string) (*RowSet, bool) {
	b, ok := ci.buckets[strings.ToLower(chunk)]
	return b, ok
}

// Narrow intersects candidates with the bucket of each window of query,
// using the largest size that fits, and stops early once at most one
// candidate remains.
//
// It returns false, leaving candidates untouched, when query is shorter
// than MinSize.
func (ci *ChunkIndex) Narrow(query string, candidates *RowSet) bool {
	query = strings.ToLower(query)

	size := ci.sizeFor(len(query))
	if size == 0 {
		return false
	}

	for i := 0; i+size <= len(query); i++ {
		b, ok := ci.buckets[query[i:i+size]]
		if !ok {
			candidates.Reset()
			return true
		}
		candidates.Intersect(b)
		if candidates.Len() <= 1 {
			break
		}
	}
	return true
}

// sizeFor returns the largest size <= n, or 0.
func (ci *ChunkIndex) sizeFor(n int) int {
	for i := len(ci.sizes) - 1; i >= 0; i-- {
		if ci.sizes[i] <= n {
			return ci.sizes[i]
		}
	}
	return 0
}
