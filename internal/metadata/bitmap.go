package imetadata

import (
	"iter"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/nutridex/model"
)

// RowSet is a compressed set of RowIDs backed by a roaring bitmap.
type RowSet struct {
	rb *roaring.Bitmap
}

// scratch holds RowSets used for one rule and then discarded.
var scratch = sync.Pool{
	New: func() any { return NewRowSet() },
}

// NewRowSet returns an empty set.
func NewRowSet() *RowSet {
	return &RowSet{rb: roaring.New()}
}

// RowSetOf returns a set holding ids.
func RowSetOf(ids ...model.RowID) *RowSet {
	s := NewRowSet()
	s.AddMany(ids)
	return s
}

// AcquireRowSet takes an empty set from the pool. Hand it back with
// ReleaseRowSet once it is no longer referenced.
func AcquireRowSet() *RowSet {
	s := scratch.Get().(*RowSet)
	s.Reset()
	return s
}

// ReleaseRowSet returns s to the pool. A nil set is ignored.
func ReleaseRowSet(s *RowSet) {
	if s == nil {
		return
	}
	s.Reset()
	scratch.Put(s)
}

// Add inserts id.
func (s *RowSet) Add(id model.RowID) { s.rb.Add(uint32(id)) }

// AddMany inserts every id in ids. Range search results arrive grouped by
// key, not by RowID, so they are added one at a time.
func (s *RowSet) AddMany(ids []model.RowID) {
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}
}

// Contains reports whether id is in the set.
func (s *RowSet) Contains(id model.RowID) bool { return s.rb.Contains(uint32(id)) }

// IsEmpty reports whether the set has no members.
func (s *RowSet) IsEmpty() bool { return s.rb.IsEmpty() }

// Len returns the number of members.
func (s *RowSet) Len() int { return int(s.rb.GetCardinality()) }

// Reset removes every member.
func (s *RowSet) Reset() { s.rb.Clear() }

// Clone returns an independent copy.
func (s *RowSet) Clone() *RowSet {
	return &RowSet{rb: s.rb.Clone()}
}

// Intersect keeps only the members also present in other.
func (s *RowSet) Intersect(other *RowSet) { s.rb.And(other.rb) }

// Retain keeps only the members for which keep returns true.
func (s *RowSet) Retain(keep func(model.RowID) bool) {
	kept := roaring.New()
	it := s.rb.Iterator()
	for it.HasNext() {
		if v := it.Next(); keep(model.RowID(v)) {
			kept.Add(v)
		}
	}
	s.rb = kept
}

// All iterates the members in ascending order.
func (s *RowSet) All() iter.Seq[model.RowID] {
	return func(yield func(model.RowID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(model.RowID(it.Next())) {
				return
			}
		}
	}
}

// Rows returns the members in ascending order.
func (s *RowSet) Rows() []model.RowID {
	out := make([]model.RowID, 0, s.Len())
	for id := range s.All() {
		out = append(out, id)
	}
	return out
}
