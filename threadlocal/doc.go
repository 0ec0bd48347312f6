// Package threadlocal provides lazily created, OS-backed thread-local slots.
//
// A Slot holds one operating-system thread-local key. The key is created the
// first time any thread calls Set; after that every thread stores and reads
// its own pointer under that key.
//
// # Initialization
//
// The key register moves through three states:
//
//	Uninitialized -> UnderInitialization -> Initialized(key)
//
// The first Set elects one initializer with a single compare-and-swap. The
// winner creates the key and publishes it; every other caller yields the
// processor between reads until the key is published. Exactly one key is
// ever created per slot and no caller uses a key before it exists. There are
// no locks.
//
// Get never creates the key: on a slot nobody has Set yet it returns nil.
//
// # Ownership
//
// The calling thread owns the value it has set. When the thread exits, the
// operating system hands the value to the slot's destructor, which is the
// designated release point. Facilities that can run destructors early
// implement ThreadExiter.
//
// EmulatedOS keeps stored values reachable. The pthread facility returned by
// Native on linux with cgo keeps them in C memory the garbage collector does
// not scan: values must live outside the Go heap (for example carved out of
// a huge-page region) or be kept alive by the caller.
//
// # Threads and goroutines
//
// Values belong to OS threads, not goroutines. A goroutine that expects to
// read back what it stored must call runtime.LockOSThread first.
//
// # Failures
//
// Key creation and store failures are not recoverable and panic with errors
// wrapping ErrKeyCreate or ErrSet.
package threadlocal
