// Package pagealloc is the platform layer beneath a general-purpose memory
// allocator.
//
// It gives the allocator core three things it cannot build on its own:
//
//   - Huge-page-aligned memory regions straight from the operating system
//     (Platform.Allocate / Platform.Deallocate).
//   - The NUMA node of the calling thread, with nearby nodes folded together
//     (Platform.CurrentNode).
//   - Lazily created OS thread-local slots (package threadlocal).
//
// # Quick Start
//
//	p := pagealloc.New(
//	    pagealloc.WithLogger(pagealloc.NewTextLogger(slog.LevelInfo)),
//	    pagealloc.WithMemoryLimit(16 << 30),
//	)
//
//	r, err := p.Allocate(1<<30, 64)
//	if err != nil {
//	    // errors.Is(err, pagealloc.ErrAllocationFailed): no huge pages left
//	}
//	defer p.Deallocate(r)
//
//	node := p.CurrentNode()
//
// # Page Sizes
//
// Regions are multiples of pagesize.Huge (1 GiB) and aligned to it. The
// large page size (2 MiB) is exposed through Configuration for the
// allocator's own bookkeeping.
//
// # Failure Model
//
// Only Allocate returns an error, and only when the operating system or the
// configured memory limit refuses the request. Broken preconditions (sizes
// that are not whole huge pages, alignment above a huge page) and broken
// invariants (double free, failed unmap, thread-local key creation failure)
// panic: the allocator cannot continue safely past them.
//
// # Platform Support
//
// Linux only. Huge-page mappings need hugetlbfs pages reserved up front, for
// example:
//
//	echo 4 > /sys/kernel/mm/hugepages/hugepages-1048576kB/nr_hugepages
//
// Other platforms compile, but Allocate always fails and CurrentNode always
// reports node 0.
package pagealloc
