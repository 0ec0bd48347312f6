package threadlocal

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Slot is a lazily created thread-local slot holding a *T per thread.
// Slots must be created with New and are safe for concurrent use.
type Slot[T any] struct {
	os         OS
	destructor func(Handle)
	state      atomic.Pointer[State]
}

// New creates a slot. destructor, if not nil, receives a thread's value when
// the thread exits.
func New[T any](os OS, destructor func(*T)) *Slot[T] {
	s := &Slot[T]{os: os}
	if destructor != nil {
		s.destructor = func(h Handle) {
			destructor(fromHandle[T](h))
		}
	}
	s.state.Store(stateUninitialized)
	return s
}

// State returns the current state of the key register.
func (s *Slot[T]) State() State { return *s.state.Load() }

// Key returns the slot's key if it has been created.
func (s *Slot[T]) Key() (Key, bool) { return s.State().Key() }

// Get returns the calling thread's value, or nil if the thread never set
// one or no thread has called Set on this slot yet.
func (s *Slot[T]) Get() *T {
	st := s.state.Load()
	if st.phase != Initialized {
		return nil
	}
	return fromHandle[T](s.os.Get(st.key))
}

// Set stores value for the calling thread, creating the key first if needed.
func (s *Slot[T]) Set(value *T) {
	key := s.key()
	if err := s.os.Set(key, Handle(unsafe.Pointer(value))); err != nil {
		panic(fmt.Errorf("%w for key %d: %w", ErrSet, key, err))
	}
}

func (s *Slot[T]) key() Key {
	if st := s.state.Load(); st.phase == Initialized {
		return st.key
	}
	return s.initialize()
}

//go:noinline
func (s *Slot[T]) initialize() Key {
	if s.state.CompareAndSwap(stateUninitialized, stateUnderInitialization) {
		key, err := s.os.KeyCreate(s.destructor)
		if err != nil {
			panic(fmt.Errorf("%w: %w", ErrKeyCreate, err))
		}
		s.state.Store(&State{phase: Initialized, key: key})
		return key
	}

	st := s.state.Load()
	for st.phase != Initialized {
		s.os.Yield()
		st = s.state.Load()
	}
	return st.key
}

func fromHandle[T any](h Handle) *T {
	return (*T)(unsafe.Pointer(h))
}
