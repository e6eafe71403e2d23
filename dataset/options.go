package dataset

// DefaultConcurrency bounds how many files Load fetches at once.
const DefaultConcurrency = 4

type options struct {
	concurrency int
}

// Option configures Load.
type Option func(*options)

// WithConcurrency sets how many files are fetched and decoded in parallel.
// Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = max(n, 1)
	}
}

func applyOptions(optFns []Option) options {
	o := options{concurrency: DefaultConcurrency}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
