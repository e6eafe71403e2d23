package nutridex

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/nutridex/bptree"
	imetadata "github.com/hupe1980/nutridex/internal/metadata"
	"github.com/hupe1980/nutridex/metadata"
	"github.com/hupe1980/nutridex/model"
)

// Store indexes food records by numeric attribute and by name.
//
// Invariant: every stored row is present in the membership bitmap, in the
// tree of each attribute it declares (once per attribute), and in every
// chunk bucket derived from its lowercased name.
type Store struct {
	schema metadata.Schema

	records    []*model.Record // by RowID
	lowerNames []string        // by RowID
	order      []model.RowID   // sequence order
	pos        []int           // RowID -> index in order
	ids        map[string]model.RowID

	all     *imetadata.RowSet
	indexes map[string]*bptree.Tree[float64, model.RowID]
	chunks  *imetadata.ChunkIndex

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty store.
//
// It returns an error matching ErrInvalidConfiguration if the branching
// factor, attributes or chunk sizes are unusable.
func New(optFns ...Option) (*Store, error) {
	o := applyOptions(optFns)

	schema, err := metadata.NewSchema(o.attributes...)
	if err != nil {
		return nil, translateError(err)
	}

	chunks, err := imetadata.NewChunkIndex(o.chunkSizes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	indexes := make(map[string]*bptree.Tree[float64, model.RowID], len(schema))
	for _, attr := range schema {
		tree, err := bptree.New[float64, model.RowID](o.branchingFactor)
		if err != nil {
			return nil, err
		}
		indexes[attr] = tree
	}

	return &Store{
		schema:  schema,
		ids:     make(map[string]model.RowID),
		all:     imetadata.NewRowSet(),
		indexes: indexes,
		chunks:  chunks,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}, nil
}

// AddRecord stores a copy of rec and indexes it.
//
// The record is validated before anything is modified: a nil record, a
// duplicate ID, an attribute outside the schema or a NaN value leave the
// store unchanged. The sequence is not re-sorted.
func (s *Store) AddRecord(rec *model.Record) error {
	start := time.Now()
	rowID, err := s.addRecord(rec)
	s.metrics.RecordInsert(time.Since(start), err)

	id := ""
	if rec != nil {
		id = rec.ID
	}
	s.logger.LogInsert(context.Background(), id, uint32(rowID), err)
	return err
}

func (s *Store) addRecord(rec *model.Record) (model.RowID, error) {
	if rec == nil {
		return 0, ErrNilRecord
	}
	if _, dup := s.ids[rec.ID]; dup {
		return 0, &DuplicateIDError{ID: rec.ID}
	}
	if err := s.schema.Validate(rec); err != nil {
		return 0, err
	}
	for attr, v := range rec.Nutrients {
		if math.IsNaN(v) {
			return 0, fmt.Errorf("%w: attribute %q of %q is NaN", ErrInvalidRecord, attr, rec.ID)
		}
	}
	if uint64(len(s.records)) >= math.MaxUint32 {
		return 0, fmt.Errorf("%w: store is full", ErrInvalidRecord)
	}

	rec = rec.Clone()
	rowID := model.RowID(len(s.records)) //nolint:gosec // bounded above

	s.records = append(s.records, rec)
	s.lowerNames = append(s.lowerNames, strings.ToLower(rec.Name))
	s.pos = append(s.pos, len(s.order))
	s.order = append(s.order, rowID)
	s.ids[rec.ID] = rowID
	s.all.Add(rowID)

	for attr, v := range rec.Nutrients {
		s.indexes[attr].Insert(v, rowID)
	}
	s.chunks.Add(rec.Name, rowID)

	return rowID, nil
}

// AddRecords adds every record and then sorts the sequence by name.
//
// Records that fail validation are skipped; the returned error joins the
// individual failures.
func (s *Store) AddRecords(recs []*model.Record) error {
	start := time.Now()

	var errs []error
	for _, rec := range recs {
		if _, err := s.addRecord(rec); err != nil {
			errs = append(errs, err)
		}
	}
	s.SortByName()

	s.metrics.RecordBatchInsert(len(recs), len(errs), time.Since(start))
	s.logger.LogBatchInsert(context.Background(), len(recs), len(errs))
	return errors.Join(errs...)
}

// SortByName stable-sorts the sequence by case-insensitive name.
func (s *Store) SortByName() {
	slices.SortStableFunc(s.order, func(a, b model.RowID) int {
		return cmp.Compare(s.lowerNames[a], s.lowerNames[b])
	})
	for i, rowID := range s.order {
		s.pos[rowID] = i
	}
}

// All returns every record in sequence order.
// The returned records must not be modified.
func (s *Store) All() []*model.Record {
	out := make([]*model.Record, len(s.order))
	for i, rowID := range s.order {
		out[i] = s.records[rowID]
	}
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (*model.Record, bool) {
	rowID, ok := s.ids[id]
	if !ok {
		return nil, false
	}
	return s.records[rowID], true
}

// Contains reports whether a record with the given ID is stored.
func (s *Store) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Attributes returns the indexed attributes in schema order.
func (s *Store) Attributes() []string {
	return slices.Clone(s.schema)
}

// Index returns the tree indexing attr. Values are RowIDs; resolve them with
// Record. The tree must not be modified.
func (s *Store) Index(attr string) (*bptree.Tree[float64, model.RowID], bool) {
	tree, ok := s.indexes[strings.ToLower(attr)]
	return tree, ok
}

// Record returns the record stored under rowID.
func (s *Store) Record(rowID model.RowID) (*model.Record, bool) {
	if int(rowID) >= len(s.records) {
		return nil, false
	}
	return s.records[rowID], true
}

// Logger returns the store's logger.
func (s *Store) Logger() *Logger {
	return s.logger
}

// IndexStats describes one attribute index.
type IndexStats struct {
	Values int
	Keys   int
	Height int
}

// StoreStats is a snapshot of the store's index sizes.
type StoreStats struct {
	Records int
	Chunks  int
	Indexes map[string]IndexStats
}

// Stats returns the current index sizes.
func (s *Store) Stats() StoreStats {
	st := StoreStats{
		Records: len(s.records),
		Chunks:  s.chunks.Len(),
		Indexes: make(map[string]IndexStats, len(s.indexes)),
	}
	for attr, tree := range s.indexes {
		st.Indexes[attr] = IndexStats{
			Values: tree.Len(),
			Keys:   tree.KeyCount(),
			Height: tree.Height(),
		}
	}
	return st
}

// collect resolves a bitmap into records in sequence order.
func (s *Store) collect(rows *imetadata.RowSet) []*model.Record {
	ids := rows.Rows()
	slices.SortFunc(ids, func(a, b model.RowID) int {
		return cmp.Compare(s.pos[a], s.pos[b])
	})

	out := make([]*model.Record, len(ids))
	for i, rowID := range ids {
		out[i] = s.records[rowID]
	}
	return out
}
