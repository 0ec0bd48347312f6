//go:build linux

package mmap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func osMapHuge(length, selector int) (uintptr, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS | unix.MAP_HUGETLB | selector<<unix.MAP_HUGE_SHIFT

	// fd must be -1 and offset 0 for anonymous mappings.
	data, err := unix.Mmap(-1, 0, length, prot, flags)
	if err != nil {
		return 0, err
	}

	return uintptr(unsafe.Pointer(&data[0])), nil //nolint:gosec // address of off-heap memory
}

func osUnmap(addr uintptr, length int) error {
	// Rebuild the slice registered by unix.Mmap; Munmap rejects anything else.
	return unix.Munmap(Slice(addr, uintptr(length)))
}
