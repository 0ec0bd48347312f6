// Package region obtains and releases huge-page-aligned memory regions.
//
// An Acquirer is the only way the allocator core gets memory from the
// operating system. Every region it hands out starts on a huge page boundary
// and spans a whole number of huge pages; the caller owns it exclusively
// until it is passed back to Deallocate.
//
// # Failure Model
//
// Three kinds of failure are distinguished:
//
//   - Contract violations (zero size, size not a multiple of the huge page
//     size, alignment larger than the huge page size) panic immediately.
//     The allocator core must never make such a request.
//   - The operating system refusing the mapping (typically no reserved huge
//     pages left) or the memory budget being exhausted is reported as a nil
//     Region and an error wrapping ErrAllocationFailed. This is the only
//     recoverable failure.
//   - A misaligned mapping or a failed unmap (double free, foreign region)
//     panics with an error wrapping ErrInvariant.
//
// Panics carry error values so that tests can inspect them with errors.Is;
// production code must not recover them.
//
// # Concurrency
//
// Acquirer holds no mutable state of its own and is safe for concurrent use.
// There is no caching, pooling or reuse of regions.
package region
