package imetadata

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/nutridex/model"
)

func TestRowSet(t *testing.T) {
	a := RowSetOf(1, 2, 3, 10)
	b := RowSetOf(2, 10, 11)

	assert.Equal(t, 4, a.Len())
	assert.True(t, a.Contains(10))
	assert.False(t, a.Contains(11))

	both := a.Clone()
	both.Intersect(b)
	assert.Equal(t, []model.RowID{2, 10}, both.Rows())
	assert.Equal(t, 4, a.Len(), "clone is independent")

	even := a.Clone()
	even.Retain(func(id model.RowID) bool { return id%2 == 0 })
	assert.Equal(t, []model.RowID{2, 10}, slices.Collect(even.All()))

	even.Reset()
	assert.True(t, even.IsEmpty())
	assert.Empty(t, even.Rows())
}

func TestRowSetAllStopsEarly(t *testing.T) {
	s := RowSetOf(5, 1, 3)

	var seen []model.RowID
	for id := range s.All() {
		seen = append(seen, id)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []model.RowID{1, 3}, seen)
}

func TestRowSetPool(t *testing.T) {
	s := AcquireRowSet()
	s.Add(7)
	ReleaseRowSet(s)
	ReleaseRowSet(nil)

	again := AcquireRowSet()
	assert.True(t, again.IsEmpty())
	ReleaseRowSet(again)
}
