package pagealloc

import (
	"time"

	"github.com/hupe1980/pagealloc/internal/mmap"
	"github.com/hupe1980/pagealloc/internal/resource"
	"github.com/hupe1980/pagealloc/numa"
	"github.com/hupe1980/pagealloc/pagesize"
	"github.com/hupe1980/pagealloc/region"
)

// Region is a contiguous range of mapped memory returned by Allocate.
type Region = region.Region

// NodeIndex identifies a NUMA node.
type NodeIndex = numa.NodeIndex

// Platform is the operating-system interface of the allocator.
//
// A Platform is safe for concurrent use. It holds no mutable state of its
// own: every call goes straight to the kernel (or the configured fakes).
type Platform struct {
	acquirer      *region.Acquirer
	locator       *numa.Locator
	budget        *resource.Controller
	configuration pagesize.Configuration
	logger        *Logger
	metrics       MetricsCollector
}

// New creates a Platform.
//
// Without options it maps 1 GiB huge pages with mmap(2), reads the NUMA
// topology from sysfs, logs nothing and collects no metrics.
func New(optFns ...Option) *Platform {
	opts := options{
		configuration: pagesize.Linux,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}
	if opts.configuration == nil {
		opts.configuration = pagesize.Linux
	}

	huge := opts.configuration.HugePageSize()
	if opts.mapper == nil {
		opts.mapper = mmap.NewHugeMapper(huge)
	}
	if opts.topology == nil {
		opts.topology = numa.NewSysTopology()
	}

	budget := resource.NewController(resource.Config{MemoryLimitBytes: opts.memoryLimit})
	opts.logger.LogNew(opts.configuration.LargePageSize(), huge, budget.MemoryLimit())

	return &Platform{
		acquirer: region.NewAcquirer(opts.mapper,
			region.WithPageSize(huge),
			region.WithBudget(budget),
		),
		locator:       numa.NewLocator(opts.topology),
		budget:        budget,
		configuration: opts.configuration,
		logger:        opts.logger,
		metrics:       opts.metricsCollector,
	}
}

// Allocate maps a region of size bytes aligned to the huge page size.
//
// size must be a non-zero multiple of the huge page size and align must not
// exceed it; otherwise Allocate panics with an error wrapping
// ErrContractViolation. If the kernel has no huge pages left (or the memory
// limit is reached) Allocate returns a nil Region and an error wrapping
// ErrAllocationFailed.
func (p *Platform) Allocate(size, align uintptr) (Region, error) {
	start := time.Now()
	r, err := p.acquirer.Allocate(size, align)
	p.metrics.RecordAllocate(size, time.Since(start), err)
	p.logger.LogAllocate(size, r, err)
	return r, err
}

// Deallocate unmaps a region returned by Allocate. The whole region must be
// released at once. Releasing a region twice panics.
func (p *Platform) Deallocate(r Region) {
	p.acquirer.Deallocate(r)
	p.metrics.RecordDeallocate(r.Len())
	p.logger.LogDeallocate(r)
}

// CurrentNode returns the NUMA node of the calling thread after folding
// nodes at distance 11 or less into the lowest such node.
//
// The result is not cached: the thread may migrate between calls, and the
// answer is only a hint.
func (p *Platform) CurrentNode() NodeIndex {
	cpu, detected, selected := p.locator.Detect()
	p.metrics.RecordCurrentNode(detected, selected)
	p.logger.LogCurrentNode(cpu, detected, selected)
	return selected
}

// Configuration returns the page sizes used by the platform.
func (p *Platform) Configuration() pagesize.Configuration {
	return p.configuration
}

// MemoryUsage returns the number of bytes currently mapped through this
// Platform and the highest value observed.
func (p *Platform) MemoryUsage() (current, peak int64) {
	return p.budget.MemoryUsage(), p.budget.PeakMemoryUsage()
}
