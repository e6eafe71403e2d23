package imetadata

import (
	"testing"

	"github.com/hupe1980/nutridex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChunkIndex(t *testing.T) {
	ci, err := NewChunkIndex()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, ci.Sizes())
	assert.Equal(t, 3, ci.MinSize())

	ci, err = NewChunkIndex(4, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, ci.Sizes())

	_, err = NewChunkIndex(0, 3)
	assert.Error(t, err)
}

func TestChunkIndex_Add(t *testing.T) {
	ci, err := NewChunkIndex()
	require.NoError(t, err)

	ci.Add("Peach", 1)

	// 3 windows of size 3, 1 window of size 5.
	assert.Equal(t, 4, ci.Len())
	for _, chunk := range []string{"pea", "eac", "ach", "peach", "PEACH"} {
		b, ok := ci.Bucket(chunk)
		require.True(t, ok, chunk)
		assert.True(t, b.Contains(1))
	}

	// The trailing window is indexed.
	_, ok := ci.Bucket("ach")
	assert.True(t, ok)

	_, ok = ci.Bucket("xyz")
	assert.False(t, ok)

	ci.Add("ab", 2)
	assert.Equal(t, 4, ci.Len(), "names shorter than every size add nothing")
}

func TestChunkIndex_Narrow(t *testing.T) {
	ci, err := NewChunkIndex()
	require.NoError(t, err)

	names := []string{"Peach Smoothie", "Peach Rhubarb", "Rhubarb Pie", "Apple Pie", "Tea"}
	all := NewRowSet()
	for i, name := range names {
		id := model.RowID(i)
		ci.Add(name, id)
		all.Add(id)
	}

	tests := []struct {
		name     string
		query    string
		narrowed bool
		want     []model.RowID
	}{
		{"short query", "pi", false, []model.RowID{0, 1, 2, 3, 4}},
		{"size 3", "pie", true, []model.RowID{2, 3}},
		{"size 4 uses 3-windows", "each", true, []model.RowID{0, 1}},
		{"size 5 exact", "rhuba", true, []model.RowID{1, 2}},
		{"size 5 windows", "peach rh", true, []model.RowID{1}},
		{"missing chunk", "zzzzz", true, nil},
		{"case insensitive", "TEA", true, []model.RowID{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := all.Clone()
			narrowed := ci.Narrow(tt.query, candidates)
			assert.Equal(t, tt.narrowed, narrowed)
			if tt.want == nil {
				assert.True(t, candidates.IsEmpty())
				return
			}
			assert.Equal(t, tt.want, candidates.Rows())
		})
	}
}

func TestChunkIndex_NarrowIsNecessaryNotSufficient(t *testing.T) {
	ci, err := NewChunkIndex(3)
	require.NoError(t, err)

	// Both windows of "abcd" occur in "abc-bcd", but not the whole query.
	ci.Add("abc-bcd", 0)
	ci.Add("xabcdx", 1)

	candidates := RowSetOf(0, 1)
	require.True(t, ci.Narrow("abcd", candidates))
	assert.Equal(t, []model.RowID{0, 1}, candidates.Rows())
}
