package pagealloc

import (
	"log/slog"

	"github.com/hupe1980/pagealloc/numa"
	"github.com/hupe1980/pagealloc/pagesize"
	"github.com/hupe1980/pagealloc/region"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	mapper           region.Mapper
	topology         numa.Topology
	configuration    pagesize.Configuration
	memoryLimit      int64
}

// Option configures a Platform.
type Option func(*options)

// WithMetricsCollector configures metrics collection for operations.
// Pass nil to disable metrics (default).
//
// Example:
//
//	metrics := &pagealloc.BasicMetricsCollector{}
//	p := pagealloc.New(pagealloc.WithMetricsCollector(metrics))
//	// ... use p ...
//	stats := metrics.GetStats()
//	fmt.Printf("Mapped: %d bytes, failures: %d\n", stats.BytesMapped, stats.AllocateErrors)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := pagealloc.NewJSONLogger(slog.LevelDebug)
//	p := pagealloc.New(pagealloc.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

// WithMapper replaces the operating-system mapper. The mapper must return
// addresses aligned to the configured huge page size.
func WithMapper(m region.Mapper) Option {
	return func(o *options) {
		o.mapper = m
	}
}

// WithTopology replaces the NUMA topology (sysfs and getcpu by default).
func WithTopology(t numa.Topology) Option {
	return func(o *options) {
		o.topology = t
	}
}

// WithConfiguration replaces the page-size configuration (pagesize.Linux by default).
// Regions are sized and aligned to its huge page size.
func WithConfiguration(c pagesize.Configuration) Option {
	return func(o *options) {
		o.configuration = c
	}
}

// WithMemoryLimit caps the total number of bytes mapped at any time.
// Allocations beyond the limit fail with ErrAllocationFailed wrapping
// ErrMemoryLimitExceeded. 0 means unlimited (default).
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}
