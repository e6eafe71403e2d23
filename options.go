package nutridex

import (
	"log/slog"

	"github.com/hupe1980/nutridex/bptree"
	imetadata "github.com/hupe1980/nutridex/internal/metadata"
	"github.com/hupe1980/nutridex/model"
)

type options struct {
	attributes       []string
	branchingFactor  int
	chunkSizes       []int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Store.
type Option func(*options)

// WithAttributes sets the numeric attributes the store indexes.
// Defaults to model.DefaultAttributes.
func WithAttributes(attrs ...string) Option {
	return func(o *options) {
		o.attributes = attrs
	}
}

// WithBranchingFactor sets the branching factor of every attribute index.
// Must be greater than 2. Defaults to bptree.DefaultBranchingFactor.
func WithBranchingFactor(bf int) Option {
	return func(o *options) {
		o.branchingFactor = bf
	}
}

// WithChunkSizes sets the window sizes of the name index.
// Defaults to 3 and 5. Name queries shorter than the smallest size are
// answered by a full scan.
func WithChunkSizes(sizes ...int) Option {
	return func(o *options) {
		o.chunkSizes = sizes
	}
}

// WithMetricsCollector enables metrics collection for store operations.
//
// Example:
//
//	metrics := &nutridex.BasicMetricsCollector{}
//	store, _ := nutridex.New(nutridex.WithMetricsCollector(metrics))
//	// ... use store ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		attributes:       model.DefaultAttributes,
		branchingFactor:  bptree.DefaultBranchingFactor,
		chunkSizes:       imetadata.DefaultChunkSizes,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
