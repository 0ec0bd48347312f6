package threadlocal

import (
	"fmt"
	"unsafe"
)

// Key is an operating-system thread-local key.
type Key uint32

// Handle is the pointer stored per thread. nil means "no value".
type Handle unsafe.Pointer

// Phase is the lifecycle phase of a slot's key register.
type Phase uint8

const (
	// Uninitialized means no key exists yet.
	Uninitialized Phase = iota
	// UnderInitialization means one caller is creating the key.
	UnderInitialization
	// Initialized means the key exists and never changes again.
	Initialized
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case UnderInitialization:
		return "under-initialization"
	case Initialized:
		return "initialized"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// State is an immutable snapshot of a key register.
type State struct {
	phase Phase
	key   Key
}

// Phase returns the lifecycle phase.
func (s State) Phase() Phase { return s.phase }

// Key returns the key and whether the state is Initialized.
func (s State) Key() (Key, bool) { return s.key, s.phase == Initialized }

func (s State) String() string {
	if s.phase == Initialized {
		return fmt.Sprintf("initialized(%d)", s.key)
	}
	return s.phase.String()
}

var (
	stateUninitialized       = &State{phase: Uninitialized}
	stateUnderInitialization = &State{phase: UnderInitialization}
)
