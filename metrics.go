package nutridex

import (
	"sync/atomic"
	"time"
)

// FilterKind identifies the filter path that produced a metric.
type FilterKind string

const (
	// FilterName is a name-substring filter.
	FilterName FilterKind = "name"
	// FilterRules is a numeric rule filter.
	FilterRules FilterKind = "rules"
	// FilterQuery is a combined name-and-rules filter.
	FilterQuery FilterKind = "query"
)

// MetricsCollector receives a callback after every store operation.
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordBatchInsert is called after each bulk insert.
	// count is the number of records attempted, failed is the number that failed.
	RecordBatchInsert(count, failed int, duration time.Duration)

	// RecordFilter is called after each filter operation.
	// matches is the number of records returned.
	RecordFilter(kind FilterKind, matches int, duration time.Duration, err error)
}

// NoopMetricsCollector discards every measurement.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)                  {}
func (NoopMetricsCollector) RecordBatchInsert(int, int, time.Duration)          {}
func (NoopMetricsCollector) RecordFilter(FilterKind, int, time.Duration, error) {}

// opCounter accumulates calls, failures and time spent for one operation.
type opCounter struct {
	calls  atomic.Int64
	errors atomic.Int64
	nanos  atomic.Int64
}

func (c *opCounter) observe(d time.Duration, err error) {
	c.calls.Add(1)
	c.nanos.Add(d.Nanoseconds())
	if err != nil {
		c.errors.Add(1)
	}
}

func (c *opCounter) avgNanos() int64 {
	n := c.calls.Load()
	if n == 0 {
		return 0
	}
	return c.nanos.Load() / n
}

// BasicMetricsCollector keeps in-process counters with atomics. The zero
// value is ready to use.
type BasicMetricsCollector struct {
	insert opCounter
	filter opCounter

	batches     atomic.Int64
	batchItems  atomic.Int64
	batchFailed atomic.Int64
	matches     atomic.Int64

	byKind [3]atomic.Int64 // indexed by kindSlot
}

func kindSlot(kind FilterKind) int {
	switch kind {
	case FilterName:
		return 0
	case FilterRules:
		return 1
	default:
		return 2
	}
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.insert.observe(duration, err)
}

// RecordBatchInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchInsert(count, failed int, _ time.Duration) {
	b.batches.Add(1)
	b.batchItems.Add(int64(count))
	b.batchFailed.Add(int64(failed))
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(kind FilterKind, matches int, duration time.Duration, err error) {
	b.filter.observe(duration, err)
	b.matches.Add(int64(matches))
	b.byKind[kindSlot(kind)].Add(1)
}

// GetStats returns a snapshot of the counters. Fields are read one at a
// time, so a snapshot taken during concurrent updates may be torn.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:       b.insert.calls.Load(),
		InsertErrors:      b.insert.errors.Load(),
		InsertAvgNanos:    b.insert.avgNanos(),
		BatchInsertCount:  b.batches.Load(),
		BatchInsertItems:  b.batchItems.Load(),
		BatchInsertFailed: b.batchFailed.Load(),
		FilterCount:       b.filter.calls.Load(),
		FilterErrors:      b.filter.errors.Load(),
		FilterMatches:     b.matches.Load(),
		FilterAvgNanos:    b.filter.avgNanos(),
		FiltersByKind: map[FilterKind]int64{
			FilterName:  b.byKind[0].Load(),
			FilterRules: b.byKind[1].Load(),
			FilterQuery: b.byKind[2].Load(),
		},
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	InsertCount       int64
	InsertErrors      int64
	InsertAvgNanos    int64
	BatchInsertCount  int64
	BatchInsertItems  int64
	BatchInsertFailed int64
	FilterCount       int64
	FilterErrors      int64
	FilterMatches     int64
	FilterAvgNanos    int64
	FiltersByKind     map[FilterKind]int64
}
