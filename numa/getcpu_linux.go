//go:build linux

package numa

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// getcpu wraps getcpu(2). The third argument is a legacy cache pointer and
// must be nil; the only documented error is EFAULT.
func getcpu() (cpu, node uint32, err error) {
	_, _, errno := unix.RawSyscall(unix.SYS_GETCPU,
		uintptr(unsafe.Pointer(&cpu)),
		uintptr(unsafe.Pointer(&node)),
		0)
	if errno != 0 {
		return 0, 0, errno
	}
	return cpu, node, nil
}
