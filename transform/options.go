package transform

import (
	"runtime"

	"github.com/hupe1980/cliffgo"
)

// DefaultChunkSize is the number of points handled by one worker task.
const DefaultChunkSize = 1024

type options struct {
	concurrency int
	chunkSize   int
	logger      *cliffgo.Logger
	metrics     MetricsCollector
}

// Option configures Apply.
type Option func(*options)

// WithConcurrency limits the number of chunks processed at once.
// Values <= 0 use runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithChunkSize sets the number of points per worker task.
// Values <= 0 use DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *cliffgo.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{}
	for _, fn := range optFns {
		fn(&o)
	}

	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	if o.chunkSize <= 0 {
		o.chunkSize = DefaultChunkSize
	}
	if o.logger == nil {
		o.logger = cliffgo.NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}

	return o
}
