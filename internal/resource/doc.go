// Package resource implements the memory budget that sits in front of the
// region acquirer.
//
// The Controller tracks how many bytes of huge-page regions are currently
// mapped and, when configured with a limit, refuses reservations that would
// exceed it:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 8 << 30, // at most eight 1 GiB regions
//	})
//
//	// Non-blocking acquire (returns error immediately if limit exceeded)
//	if err := rc.AcquireMemory(1 << 30); err != nil {
//	    // ErrMemoryLimitExceeded - surfaced to the caller as an allocation failure
//	}
//	defer rc.ReleaseMemory(1 << 30)
//
// Refusals are never blocking: the allocation path has no timeout or
// cancellation, so a reservation either fits right now or fails.
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use. The underlying
// implementations use atomic operations and a weighted semaphore.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional budgeting without nil checks everywhere.
package resource
