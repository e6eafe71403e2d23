// Package imetadata provides the internal set and text indexes used by the
// store's filters.
//
// It is separate from the public metadata package to keep roaring bitmaps
// out of the public API.
//
// # Architecture
//
//	Membership: *RowSet                 - every RowID in the store
//	Chunks:     map[chunk]*RowSet       - rows whose name contains chunk
//
// # Substring Narrowing
//
// Names are lowercased and cut into fixed-length sliding windows (3 and 5
// bytes by default). A query is narrowed by intersecting the candidate set
// with the bucket of every window of the query, using the largest chunk
// size that fits:
//
//	query "peach" (size 5)  → candidates ∧ rows("peach")
//	query "rhubar" (size 5) → candidates ∧ rows("rhuba") ∧ rows("hubar")
//	query "tea" (size 3)    → candidates ∧ rows("tea")
//
// Chunk membership is necessary but not sufficient: callers still verify
// that each surviving name contains the whole query. Queries shorter than
// the smallest chunk size cannot be narrowed.
//
// # Thread Safety
//
// ChunkIndex is not safe for concurrent mutation.
package imetadata
