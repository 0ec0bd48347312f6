package pagesize

import "fmt"

// PowerOf2 is a non-zero power of two.
type PowerOf2 uintptr

const (
	// Large is the large page size (2 MiB).
	Large PowerOf2 = 2 * 1024 * 1024
	// Huge is the huge page size (1 GiB).
	Huge PowerOf2 = 1024 * 1024 * 1024
)

// NewPowerOf2 returns v as a PowerOf2 if it is one.
func NewPowerOf2(v uintptr) (PowerOf2, bool) {
	if v == 0 || v&(v-1) != 0 {
		return 0, false
	}
	return PowerOf2(v), true
}

// MustPowerOf2 is like NewPowerOf2 but panics if v is not a power of two.
func MustPowerOf2(v uintptr) PowerOf2 {
	p, ok := NewPowerOf2(v)
	if !ok {
		panic(fmt.Sprintf("pagesize: %d is not a power of two", v))
	}
	return p
}

// Value returns the size in bytes.
func (p PowerOf2) Value() uintptr { return uintptr(p) }

// Mask returns Value()-1.
func (p PowerOf2) Mask() uintptr { return uintptr(p) - 1 }

// IsAligned reports whether addr is a multiple of p.
func (p PowerOf2) IsAligned(addr uintptr) bool { return addr&p.Mask() == 0 }

// IsMultiple reports whether n is a positive multiple of p.
func (p PowerOf2) IsMultiple(n uintptr) bool { return n != 0 && p.IsAligned(n) }

// RoundUp rounds n up to the next multiple of p.
// The result wraps to 0 if n is within p of the address space limit.
func (p PowerOf2) RoundUp(n uintptr) uintptr { return (n + p.Mask()) &^ p.Mask() }

func (p PowerOf2) String() string {
	switch {
	case p >= 1<<30:
		return fmt.Sprintf("%dGiB", uintptr(p)>>30)
	case p >= 1<<20:
		return fmt.Sprintf("%dMiB", uintptr(p)>>20)
	case p >= 1<<10:
		return fmt.Sprintf("%dKiB", uintptr(p)>>10)
	default:
		return fmt.Sprintf("%dB", uintptr(p))
	}
}

// Configuration exposes the page sizes to the allocator core.
type Configuration interface {
	LargePageSize() PowerOf2
	HugePageSize() PowerOf2
}

// LinuxConfiguration is the Configuration for Linux.
type LinuxConfiguration struct{}

// LargePageSize implements Configuration.
func (LinuxConfiguration) LargePageSize() PowerOf2 { return Large }

// HugePageSize implements Configuration.
func (LinuxConfiguration) HugePageSize() PowerOf2 { return Huge }

// Linux is the Configuration used by the platform layer.
var Linux Configuration = LinuxConfiguration{}
