// Package mmap provides anonymous huge-page mappings backed by mmap(2).
//
// # Overview
//
// A HugeMapper requests read-write, private, anonymous memory that the kernel
// must back with explicitly reserved huge pages (MAP_HUGETLB) of one fixed
// size, selected through the page-size bits embedded in the flags
// (MAP_HUGE_2MB, MAP_HUGE_1GB, ...). No file is involved: fd is -1 and the
// offset is 0.
//
// # Usage
//
//	m := mmap.NewHugeMapper(pagesize.Huge)
//	addr, err := m.Map(1 << 30)
//	if err != nil { ... } // typically ENOMEM: no free huge pages reserved
//	defer m.Unmap(addr, 1<<30)
//
// # Double Unmap
//
// Mappings are registered with golang.org/x/sys/unix, so unmapping an address
// that is not the start of a live mapping of exactly that length fails with
// EINVAL instead of silently succeeding as munmap(2) would.
//
// # Platform Support
//
// Only Linux supports MAP_HUGETLB. On other platforms Map returns
// ErrUnsupported.
package mmap
