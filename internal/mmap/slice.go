package mmap

import "unsafe"

// Slice returns the length bytes starting at addr.
//
// addr must be the address of memory the Go runtime does not manage, such as
// a mapping returned by HugeMapper.Map, and the slice must not be used after
// that memory is unmapped. The address is reinterpreted rather than
// converted, since no Go pointer ever referred to it.
func Slice(addr, length uintptr) []byte {
	if addr == 0 || length == 0 {
		return nil
	}
	p := *(*unsafe.Pointer)(unsafe.Pointer(&addr))
	return unsafe.Slice((*byte)(p), length)
}
