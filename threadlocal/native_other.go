//go:build !linux || !cgo

package threadlocal

var native = NewEmulatedOS()

// Native returns the emulated facility; POSIX thread-specific data needs cgo.
func Native() OS { return native }
