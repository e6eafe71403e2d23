package nutridex

import (
	"context"
	"strings"
	"time"

	imetadata "github.com/hupe1980/nutridex/internal/metadata"
	"github.com/hupe1980/nutridex/metadata"
	"github.com/hupe1980/nutridex/model"
)

// Query combines a name substring with numeric rules. Empty fields do not
// constrain the result.
type Query struct {
	Name  string
	Rules []string
}

// String returns the query in the shell's "name | rule; rule" form.
func (q Query) String() string {
	return q.Name + " | " + strings.Join(q.Rules, "; ")
}

// FilterByName returns the records whose name contains substr, ignoring
// case, in sequence order. An empty substr matches every record.
func (s *Store) FilterByName(substr string) []*model.Record {
	start := time.Now()

	rows := s.all.Clone()
	s.matchName(substr, rows)
	out := s.collect(rows)

	s.metrics.RecordFilter(FilterName, len(out), time.Since(start), nil)
	s.logger.LogFilter(context.Background(), FilterName, substr, len(out), nil)
	return out
}

// FilterByRules parses rules of the form "<attribute> <op> <number>" and
// applies them with Filter.
func (s *Store) FilterByRules(rules []string) ([]*model.Record, error) {
	start := time.Now()

	out, err := s.filterByRules(rules)

	s.metrics.RecordFilter(FilterRules, len(out), time.Since(start), err)
	s.logger.LogFilter(context.Background(), FilterRules, strings.Join(rules, "; "), len(out), err)
	return out, err
}

func (s *Store) filterByRules(texts []string) ([]*model.Record, error) {
	rules, err := metadata.ParseRules(texts)
	if err != nil {
		return nil, err
	}
	return s.filter(rules)
}

// Filter returns the records satisfying every rule, in sequence order.
//
// Rules are applied left to right, each narrowing the candidates left by
// the previous ones. An empty rule list returns every record. A rule naming
// an attribute outside the schema fails with ErrUnknownAttribute before any
// search runs. An unrecognized comparator or NaN threshold matches nothing.
func (s *Store) Filter(rules ...metadata.Rule) ([]*model.Record, error) {
	start := time.Now()

	out, err := s.filter(rules)

	s.metrics.RecordFilter(FilterRules, len(out), time.Since(start), err)
	s.logger.LogFilter(context.Background(), FilterRules, joinRules(rules), len(out), err)
	return out, err
}

func (s *Store) filter(rules []metadata.Rule) ([]*model.Record, error) {
	if err := s.checkRules(rules); err != nil {
		return nil, err
	}

	current := s.all.Clone()
	s.matchRules(rules, current)
	return s.collect(current), nil
}

// Query returns the records matching both the name substring and the rules.
func (s *Store) Query(q Query) ([]*model.Record, error) {
	start := time.Now()

	out, err := s.query(q)

	s.metrics.RecordFilter(FilterQuery, len(out), time.Since(start), err)
	s.logger.LogFilter(context.Background(), FilterQuery, q.String(), len(out), err)
	return out, err
}

func (s *Store) query(q Query) ([]*model.Record, error) {
	rules, err := metadata.ParseRules(q.Rules)
	if err != nil {
		return nil, err
	}
	if err := s.checkRules(rules); err != nil {
		return nil, err
	}

	current := s.all.Clone()
	if q.Name != "" {
		s.matchName(q.Name, current)
	}
	s.matchRules(rules, current)
	return s.collect(current), nil
}

func (s *Store) checkRules(rules []metadata.Rule) error {
	for _, r := range rules {
		if _, ok := s.indexes[r.Attribute]; !ok {
			return &metadata.UnknownAttributeError{Attribute: r.Attribute}
		}
	}
	return nil
}

// matchRules intersects current with each rule's range search in turn.
func (s *Store) matchRules(rules []metadata.Rule, current *imetadata.RowSet) {
	for _, r := range rules {
		if current.IsEmpty() {
			return
		}

		hits := imetadata.AcquireRowSet()
		hits.AddMany(s.indexes[r.Attribute].RangeSearch(r.Threshold, r.Op))
		current.Intersect(hits)
		imetadata.ReleaseRowSet(hits)
	}
}

// matchName reduces rows to those whose name contains substr. The chunk
// index only prunes; every survivor is checked against the full name.
func (s *Store) matchName(substr string, rows *imetadata.RowSet) {
	q := strings.ToLower(substr)
	if q == "" {
		return
	}
	s.chunks.Narrow(q, rows)
	rows.Retain(func(id model.RowID) bool {
		return strings.Contains(s.lowerNames[id], q)
	})
}

func joinRules(rules []metadata.Rule) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = r.String()
	}
	return strings.Join(parts, "; ")
}
