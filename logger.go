package pagealloc

import (
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/pagealloc/numa"
	"github.com/hupe1980/pagealloc/pagesize"
	"github.com/hupe1980/pagealloc/region"
)

// Allocation failures are logged at most this often (with a small burst),
// so an allocator retrying against exhausted huge pages cannot flood the log.
const (
	failureLogInterval = time.Second
	failureLogBurst    = 5
)

// Logger wraps slog.Logger with pagealloc-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
	failures *rate.Limiter
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return newLogger(slog.New(handler))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return newLogger(slog.New(handler))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return newLogger(slog.New(handler))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return newLogger(slog.New(handler))
}

func newLogger(l *slog.Logger) *Logger {
	return &Logger{
		Logger:   l,
		failures: rate.NewLimiter(rate.Every(failureLogInterval), failureLogBurst),
	}
}

// LogNew logs the platform configuration.
func (l *Logger) LogNew(large, huge pagesize.PowerOf2, memoryLimit int64) {
	l.Debug("platform created",
		"large_page", large.String(),
		"huge_page", huge.String(),
		"memory_limit", memoryLimit,
	)
}

// LogAllocate logs a region allocation.
// Failures are rate limited.
func (l *Logger) LogAllocate(size uintptr, r region.Region, err error) {
	if err != nil {
		if l.failures.Allow() {
			l.Warn("allocate failed",
				"size", size,
				"error", err,
			)
		}
		return
	}
	l.Debug("allocate completed",
		"size", size,
		"addr", r.Addr(),
	)
}

// LogDeallocate logs a region release.
func (l *Logger) LogDeallocate(r region.Region) {
	l.Debug("deallocate completed",
		"size", r.Len(),
		"addr", r.Addr(),
	)
}

// LogCurrentNode logs a node query.
func (l *Logger) LogCurrentNode(cpu uint32, detected, selected numa.NodeIndex) {
	l.Debug("current node",
		"cpu", cpu,
		"detected", detected.Value(),
		"selected", selected.Value(),
	)
}
