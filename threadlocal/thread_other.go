//go:build !linux

package threadlocal

// currentThreadID cannot tell threads apart here; all callers share one
// emulated thread.
func currentThreadID() int { return 0 }
