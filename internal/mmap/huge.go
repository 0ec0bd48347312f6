package mmap

import (
	"math"
	"math/bits"

	"github.com/hupe1980/pagealloc/pagesize"
)

// HugeMapper maps anonymous memory backed by huge pages of a fixed size.
// It is stateless and safe for concurrent use.
type HugeMapper struct {
	pageSize pagesize.PowerOf2
}

// NewHugeMapper returns a mapper using huge pages of the given size.
func NewHugeMapper(pageSize pagesize.PowerOf2) *HugeMapper {
	return &HugeMapper{pageSize: pageSize}
}

// PageSize returns the huge page size requested from the kernel.
func (m *HugeMapper) PageSize() pagesize.PowerOf2 { return m.pageSize }

// sizeSelector returns log2 of the page size, the value embedded in the
// MAP_HUGE_* flag bits.
func (m *HugeMapper) sizeSelector() int {
	return bits.TrailingZeros64(uint64(m.pageSize))
}

// Map requests length bytes and returns the start address of the mapping.
func (m *HugeMapper) Map(length uintptr) (uintptr, error) {
	if length == 0 || uint64(length) > math.MaxInt {
		return 0, ErrInvalidLength
	}
	return osMapHuge(int(length), m.sizeSelector())
}

// Unmap releases a mapping previously returned by Map.
func (m *HugeMapper) Unmap(addr, length uintptr) error {
	if length == 0 || uint64(length) > math.MaxInt {
		return ErrInvalidLength
	}
	return osUnmap(addr, int(length))
}
