package threadlocal

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// DefaultEmulatedKeys matches PTHREAD_KEYS_MAX on glibc.
const DefaultEmulatedKeys = 1024

type threadKey struct {
	thread int
	key    Key
}

// EmulatedOS implements OS in pure Go, keyed by the calling OS thread id.
//
// It backs slots when cgo is unavailable and in tests. Stored values stay
// reachable until they are replaced or their thread exits. Go never reports
// OS thread exit, so destructors only run when the owning thread calls
// ThreadExit.
type EmulatedOS struct {
	threadID    func() int
	maxKeys     uint32
	nextKey     atomic.Uint32
	destructors sync.Map // Key -> func(Handle)
	values      sync.Map // threadKey -> Handle
}

// EmulatedOption configures an EmulatedOS.
type EmulatedOption func(*EmulatedOS)

// WithThreadID overrides how the calling thread is identified.
func WithThreadID(fn func() int) EmulatedOption {
	return func(e *EmulatedOS) {
		e.threadID = fn
	}
}

// WithMaxKeys limits how many keys can be created.
func WithMaxKeys(n uint32) EmulatedOption {
	return func(e *EmulatedOS) {
		e.maxKeys = n
	}
}

// NewEmulatedOS creates an emulated thread-local facility.
func NewEmulatedOS(opts ...EmulatedOption) *EmulatedOS {
	e := &EmulatedOS{
		threadID: currentThreadID,
		maxKeys:  DefaultEmulatedKeys,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// KeyCreate implements OS.
func (e *EmulatedOS) KeyCreate(destructor func(Handle)) (Key, error) {
	for {
		n := e.nextKey.Load()
		if n >= e.maxKeys {
			return 0, ErrKeysExhausted
		}
		if e.nextKey.CompareAndSwap(n, n+1) {
			key := Key(n)
			if destructor != nil {
				e.destructors.Store(key, destructor)
			}
			return key, nil
		}
	}
}

// Get implements OS.
func (e *EmulatedOS) Get(key Key) Handle {
	v, ok := e.values.Load(threadKey{thread: e.threadID(), key: key})
	if !ok {
		return nil
	}
	return v.(Handle)
}

// Set implements OS.
func (e *EmulatedOS) Set(key Key, value Handle) error {
	if uint32(key) >= e.nextKey.Load() {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}
	tk := threadKey{thread: e.threadID(), key: key}
	if value == nil {
		e.values.Delete(tk)
		return nil
	}
	e.values.Store(tk, value)
	return nil
}

// Yield implements OS.
func (e *EmulatedOS) Yield() { yield() }

// ThreadExit runs the calling thread's destructors and clears its values,
// as the operating system does when a thread terminates.
func (e *EmulatedOS) ThreadExit() {
	thread := e.threadID()
	keys := e.nextKey.Load()
	for k := Key(0); uint32(k) < keys; k++ {
		v, ok := e.values.LoadAndDelete(threadKey{thread: thread, key: k})
		if !ok {
			continue
		}
		if d, ok := e.destructors.Load(k); ok {
			d.(func(Handle))(v.(Handle))
		}
	}
}
