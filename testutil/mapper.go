package testutil

import (
	"errors"
	"sync"

	"github.com/hupe1980/pagealloc/pagesize"
)

// ErrNotMapped is returned by FakeMapper.Unmap for unknown or already released mappings.
var ErrNotMapped = errors.New("testutil: not mapped")

// fakeBase is far above any address the Go heap uses.
const fakeBase uintptr = 1 << 44

// FakeMapper simulates anonymous huge-page mappings.
// Addresses are never backed by memory and must not be dereferenced.
type FakeMapper struct {
	mu       sync.Mutex
	pageSize pagesize.PowerOf2
	next     uintptr
	live     map[uintptr]uintptr
	failNext error
	skewNext uintptr
	maps     int
	unmaps   int
}

// NewFakeMapper creates a mapper aligned to pageSize.
func NewFakeMapper(pageSize pagesize.PowerOf2) *FakeMapper {
	return &FakeMapper{
		pageSize: pageSize,
		next:     fakeBase,
		live:     make(map[uintptr]uintptr),
	}
}

// FailNext makes the next Map call fail with err.
func (m *FakeMapper) FailNext(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = err
}

// MisalignNext makes the next Map call return an address offset by skew bytes.
func (m *FakeMapper) MisalignNext(skew uintptr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skewNext = skew
}

// Map implements region.Mapper.
func (m *FakeMapper) Map(length uintptr) (uintptr, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.maps++
	if err := m.failNext; err != nil {
		m.failNext = nil
		return 0, err
	}

	addr := m.next + m.skewNext
	m.skewNext = 0
	m.next += m.pageSize.RoundUp(length) + m.pageSize.Value() // leave a guard gap
	m.live[addr] = length
	return addr, nil
}

// Unmap implements region.Mapper.
func (m *FakeMapper) Unmap(addr, length uintptr) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unmaps++
	l, ok := m.live[addr]
	if !ok || l != length {
		return ErrNotMapped
	}
	delete(m.live, addr)
	return nil
}

// Live returns the number of mappings not yet released.
func (m *FakeMapper) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// Calls returns the number of Map and Unmap calls.
func (m *FakeMapper) Calls() (maps, unmaps int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maps, m.unmaps
}
