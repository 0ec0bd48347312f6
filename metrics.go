package pagealloc

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/pagealloc/numa"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAllocate is called after each Allocate.
	// err is nil if a region was returned.
	RecordAllocate(size uintptr, duration time.Duration, err error)

	// RecordDeallocate is called after each Deallocate.
	RecordDeallocate(size uintptr)

	// RecordCurrentNode is called after each CurrentNode with the node the
	// kernel reported and the node returned after clustering.
	RecordCurrentNode(detected, selected numa.NodeIndex)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(uintptr, time.Duration, error)     {}
func (NoopMetricsCollector) RecordDeallocate(uintptr)                         {}
func (NoopMetricsCollector) RecordCurrentNode(numa.NodeIndex, numa.NodeIndex) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocateCount      atomic.Int64
	AllocateErrors     atomic.Int64
	AllocateTotalNanos atomic.Int64
	BytesAllocated     atomic.Int64
	DeallocateCount    atomic.Int64
	BytesDeallocated   atomic.Int64
	NodeQueries        atomic.Int64
	NodesClustered     atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(size uintptr, duration time.Duration, err error) {
	b.AllocateCount.Add(1)
	b.AllocateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocateErrors.Add(1)
		return
	}
	b.BytesAllocated.Add(int64(size)) //nolint:gosec // sizes are bounded by the address space
}

// RecordDeallocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDeallocate(size uintptr) {
	b.DeallocateCount.Add(1)
	b.BytesDeallocated.Add(int64(size)) //nolint:gosec // sizes are bounded by the address space
}

// RecordCurrentNode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCurrentNode(detected, selected numa.NodeIndex) {
	b.NodeQueries.Add(1)
	if detected != selected {
		b.NodesClustered.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocateCount:    b.AllocateCount.Load(),
		AllocateErrors:   b.AllocateErrors.Load(),
		AllocateAvgNanos: b.getAvgAllocateNanos(),
		BytesAllocated:   b.BytesAllocated.Load(),
		DeallocateCount:  b.DeallocateCount.Load(),
		BytesDeallocated: b.BytesDeallocated.Load(),
		BytesMapped:      b.BytesAllocated.Load() - b.BytesDeallocated.Load(),
		NodeQueries:      b.NodeQueries.Load(),
		NodesClustered:   b.NodesClustered.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAllocateNanos() int64 {
	count := b.AllocateCount.Load()
	if count == 0 {
		return 0
	}
	return b.AllocateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocateCount    int64
	AllocateErrors   int64
	AllocateAvgNanos int64
	BytesAllocated   int64
	DeallocateCount  int64
	BytesDeallocated int64
	BytesMapped      int64
	NodeQueries      int64
	NodesClustered   int64
}
