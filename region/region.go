package region

import (
	"fmt"

	"github.com/hupe1980/pagealloc/internal/mmap"
)

// Region is a mapped, huge-page-aligned memory range.
// The zero value is the nil region.
type Region struct {
	addr   uintptr
	length uintptr
}

// IsNil reports whether r is the nil region.
func (r Region) IsNil() bool { return r.addr == 0 }

// Addr returns the start address.
func (r Region) Addr() uintptr { return r.addr }

// Len returns the length in bytes.
func (r Region) Len() uintptr { return r.length }

// Bytes returns the region's memory as a byte slice.
// The slice is valid only until the region is deallocated.
func (r Region) Bytes() []byte {
	return mmap.Slice(r.addr, r.length)
}

func (r Region) String() string {
	return fmt.Sprintf("region[%#x+%d]", r.addr, r.length)
}
