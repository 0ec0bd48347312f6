package testutil

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/pagealloc/threadlocal"
)

// CountingOS wraps a threadlocal.OS and counts calls.
type CountingOS struct {
	threadlocal.OS

	KeyCreateDelay time.Duration
	KeyCreateErr   error
	SetErr         error

	keyCreates atomic.Int64
	sets       atomic.Int64
	yields     atomic.Int64
}

// NewCountingOS wraps os.
func NewCountingOS(os threadlocal.OS) *CountingOS {
	return &CountingOS{OS: os}
}

// KeyCreate implements threadlocal.OS.
func (c *CountingOS) KeyCreate(destructor func(threadlocal.Handle)) (threadlocal.Key, error) {
	c.keyCreates.Add(1)
	if c.KeyCreateDelay > 0 {
		time.Sleep(c.KeyCreateDelay)
	}
	if c.KeyCreateErr != nil {
		return 0, c.KeyCreateErr
	}
	return c.OS.KeyCreate(destructor)
}

// Set implements threadlocal.OS.
func (c *CountingOS) Set(key threadlocal.Key, value threadlocal.Handle) error {
	c.sets.Add(1)
	if c.SetErr != nil {
		return c.SetErr
	}
	return c.OS.Set(key, value)
}

// Yield implements threadlocal.OS.
func (c *CountingOS) Yield() {
	c.yields.Add(1)
	c.OS.Yield()
}

// KeyCreates returns the number of KeyCreate calls.
func (c *CountingOS) KeyCreates() int64 { return c.keyCreates.Load() }

// Sets returns the number of Set calls.
func (c *CountingOS) Sets() int64 { return c.sets.Load() }

// Yields returns the number of Yield calls.
func (c *CountingOS) Yields() int64 { return c.yields.Load() }
