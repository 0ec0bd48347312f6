package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pagealloc/numa"
	"github.com/hupe1980/pagealloc/pagesize"
)

func TestRNG_PageMultiple(t *testing.T) {
	rng := NewRNG(4711)

	for i := 0; i < 100; i++ {
		size := rng.PageMultiple(pagesize.Huge, 8)
		assert.True(t, pagesize.Huge.IsMultiple(size))
		assert.LessOrEqual(t, uint64(size), uint64(8*pagesize.Huge))

		align := rng.Alignment(pagesize.Huge)
		assert.LessOrEqual(t, uint64(align), uint64(pagesize.Huge))
		_, ok := pagesize.NewPowerOf2(align)
		assert.True(t, ok)
	}
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Intn(1000)
	rng.Reset()
	assert.Equal(t, a, rng.Intn(1000))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFakeMapper(t *testing.T) {
	m := NewFakeMapper(pagesize.Huge)

	a, err := m.Map(pagesize.Huge.Value())
	require.NoError(t, err)
	b, err := m.Map(2 * pagesize.Huge.Value())
	require.NoError(t, err)

	assert.True(t, pagesize.Huge.IsAligned(a))
	assert.True(t, pagesize.Huge.IsAligned(b))
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, m.Live())

	require.NoError(t, m.Unmap(a, pagesize.Huge.Value()))
	assert.ErrorIs(t, m.Unmap(a, pagesize.Huge.Value()), ErrNotMapped)
	assert.ErrorIs(t, m.Unmap(b, pagesize.Huge.Value()), ErrNotMapped, "length mismatch")

	boom := errors.New("boom")
	m.FailNext(boom)
	_, err = m.Map(pagesize.Huge.Value())
	assert.ErrorIs(t, err, boom)

	m.MisalignNext(4096)
	c, err := m.Map(pagesize.Huge.Value())
	require.NoError(t, err)
	assert.False(t, pagesize.Huge.IsAligned(c))

	maps, unmaps := m.Calls()
	assert.Equal(t, 4, maps)
	assert.Equal(t, 3, unmaps)
}

func TestDistanceTable(t *testing.T) {
	d := NewDistanceTable(2, 1)

	v, err := d.Distance(0, 0)
	require.NoError(t, err)
	assert.Equal(t, numa.LocalDistance, v)

	v, err = d.Distance(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	d.SetDistance(0, 1, 11)
	v, err = d.Distance(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 11, v)

	_, err = d.Distance(0, 5)
	assert.ErrorIs(t, err, numa.ErrNodeOffline)
	assert.Equal(t, 4, d.Queries())
}

func TestPanicError(t *testing.T) {
	boom := errors.New("boom")
	err := PanicError(t, func() { panic(boom) })
	assert.ErrorIs(t, err, boom)
}
