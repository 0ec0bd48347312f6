package pagesize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	_, ok := NewPowerOf2(Large.Value())
	assert.True(t, ok, "large page size must be a power of two")

	_, ok = NewPowerOf2(Huge.Value())
	assert.True(t, ok, "huge page size must be a power of two")

	assert.GreaterOrEqual(t, uint64(Huge), uint64(Large))
	assert.Equal(t, uintptr(2<<20), Linux.LargePageSize().Value())
	assert.Equal(t, uintptr(1<<30), Linux.HugePageSize().Value())
}

func TestNewPowerOf2(t *testing.T) {
	tests := []struct {
		in uintptr
		ok bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{4096, true},
		{4097, false},
		{1 << 30, true},
		{3 << 29, false},
	}

	for _, tt := range tests {
		p, ok := NewPowerOf2(tt.in)
		assert.Equal(t, tt.ok, ok, "value %d", tt.in)
		if ok {
			assert.Equal(t, tt.in, p.Value())
		}
	}

	assert.Panics(t, func() { MustPowerOf2(12) })
	assert.NotPanics(t, func() { MustPowerOf2(16) })
}

func TestPowerOf2_Alignment(t *testing.T) {
	assert.True(t, Huge.IsAligned(0))
	assert.True(t, Huge.IsAligned(3<<30))
	assert.False(t, Huge.IsAligned(Large.Value()))

	assert.False(t, Huge.IsMultiple(0))
	assert.True(t, Huge.IsMultiple(2<<30))
	assert.False(t, Huge.IsMultiple((1<<30)+1))

	assert.Equal(t, uintptr(1<<30), Huge.RoundUp(1))
	assert.Equal(t, uintptr(1<<30), Huge.RoundUp(1<<30))
	assert.Equal(t, uintptr(4<<20), Large.RoundUp((2<<20)+1))
}

func TestPowerOf2_String(t *testing.T) {
	assert.Equal(t, "1GiB", Huge.String())
	assert.Equal(t, "2MiB", Large.String())
	assert.Equal(t, "4KiB", MustPowerOf2(4096).String())
	assert.Equal(t, "8B", MustPowerOf2(8).String())
}
