//go:build linux

package mmap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/hupe1980/pagealloc/pagesize"
)

// mapOrSkip maps one large huge page, skipping the test when the host has
// none reserved (vm.nr_hugepages=0 is the common default).
func mapOrSkip(t *testing.T, m *HugeMapper, length uintptr) uintptr {
	t.Helper()
	addr, err := m.Map(length)
	if err != nil {
		t.Skipf("no huge pages available: %v", err)
	}
	return addr
}

func TestHugeMapper_MapUnmap(t *testing.T) {
	m := NewHugeMapper(pagesize.Large)
	length := pagesize.Large.Value()

	addr := mapOrSkip(t, m, length)
	assert.True(t, pagesize.Large.IsAligned(addr), "address %#x not aligned", addr)

	data := Slice(addr, length)
	data[0] = 0xAB
	data[length-1] = 0xCD
	assert.Equal(t, byte(0xAB), data[0])

	require.NoError(t, m.Unmap(addr, length))

	// Second unmap of the same region is rejected.
	assert.ErrorIs(t, m.Unmap(addr, length), unix.EINVAL)
}

func TestHugeMapper_UnmapForeign(t *testing.T) {
	m := NewHugeMapper(pagesize.Large)

	buf := make([]byte, 64)
	err := m.Unmap(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	assert.ErrorIs(t, err, unix.EINVAL)
}
