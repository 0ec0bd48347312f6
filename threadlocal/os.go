package threadlocal

import (
	"errors"
	"runtime"
)

var (
	// ErrKeyCreate wraps a failure to create a thread-local key.
	ErrKeyCreate = errors.New("threadlocal: could not create key")
	// ErrSet wraps a failure to store a thread-local value.
	ErrSet = errors.New("threadlocal: could not set value")
	// ErrInvalidKey is returned for keys the OS does not know.
	ErrInvalidKey = errors.New("threadlocal: invalid key")
	// ErrKeysExhausted is returned when no more keys can be created.
	ErrKeysExhausted = errors.New("threadlocal: keys exhausted")
)

// OS is the thread-local key facility of the operating system.
type OS interface {
	// KeyCreate creates a key. destructor, if not nil, is called with a
	// thread's non-nil value when that thread exits.
	KeyCreate(destructor func(Handle)) (Key, error)
	// Get returns the calling thread's value for key, or nil.
	Get(key Key) Handle
	// Set stores value for the calling thread under key.
	Set(key Key, value Handle) error
	// Yield gives up the processor while spin-waiting.
	Yield()
}

// ThreadExiter is implemented by facilities that can run the calling
// thread's destructors before the thread terminates.
type ThreadExiter interface {
	ThreadExit()
}

// yield lets other goroutines run; sched_yield(2) would only hand the
// thread to another process and keep the current P busy.
func yield() { runtime.Gosched() }
