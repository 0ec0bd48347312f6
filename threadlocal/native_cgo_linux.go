//go:build linux && cgo

package threadlocal

/*
#include <errno.h>
#include <pthread.h>
#include <stdint.h>
#include <stdlib.h>

// One cell per thread per key. The cell remembers its key so the destructor
// can find the slot's Go destructor.
typedef struct {
	unsigned int key;
	void        *value;
} pagealloc_cell;

extern void pageallocDestroy(unsigned int key, void *value);

static void pagealloc_cell_destroy(void *p) {
	pagealloc_cell *cell = (pagealloc_cell *)p;
	if (cell->value != NULL) {
		pageallocDestroy(cell->key, cell->value);
	}
	free(cell);
}

static int pagealloc_key_create(unsigned int *out) {
	pthread_key_t key;
	int rc = pthread_key_create(&key, pagealloc_cell_destroy);
	if (rc == 0) {
		*out = (unsigned int)key;
	}
	return rc;
}

static int pagealloc_key_delete(unsigned int key) {
	return pthread_key_delete((pthread_key_t)key);
}

static void *pagealloc_get(unsigned int key) {
	pagealloc_cell *cell = pthread_getspecific((pthread_key_t)key);
	return cell == NULL ? NULL : cell->value;
}

static int pagealloc_set(unsigned int key, uintptr_t value) {
	pagealloc_cell *cell = pthread_getspecific((pthread_key_t)key);
	if (cell == NULL) {
		if (value == 0) {
			return 0;
		}
		cell = malloc(sizeof(pagealloc_cell));
		if (cell == NULL) {
			return ENOMEM;
		}
		cell->key = key;
		cell->value = NULL;
		int rc = pthread_setspecific((pthread_key_t)key, cell);
		if (rc != 0) {
			free(cell);
			return rc;
		}
	}
	cell->value = (void *)value;
	return 0;
}

// Runs what the thread library runs for key when the calling thread exits.
static void pagealloc_thread_exit(unsigned int key) {
	pagealloc_cell *cell = pthread_getspecific((pthread_key_t)key);
	if (cell == NULL) {
		return;
	}
	pthread_setspecific((pthread_key_t)key, NULL);
	pagealloc_cell_destroy(cell);
}
*/
import "C"

import (
	"fmt"
	"sync/atomic"
	"syscall"
	"unsafe"
)

// maxNativeKeys bounds the destructor table; glibc's PTHREAD_KEYS_MAX.
const maxNativeKeys = 1024

var (
	nativeKeys        [maxNativeKeys]atomic.Bool
	nativeDestructors [maxNativeKeys]atomic.Pointer[func(Handle)]
)

// pthreadOS implements OS with POSIX thread-specific data.
type pthreadOS struct{}

// Native returns the operating system's thread-local facility.
//
// Values are stored in C memory the garbage collector does not scan: they
// must live outside the Go heap (for example in a region) or be kept
// reachable by the caller for as long as they are stored.
func Native() OS { return pthreadOS{} }

func (pthreadOS) KeyCreate(destructor func(Handle)) (Key, error) {
	var key C.uint
	if rc := C.pagealloc_key_create(&key); rc != 0 {
		return 0, syscall.Errno(rc)
	}
	if key >= maxNativeKeys {
		C.pagealloc_key_delete(key)
		return 0, fmt.Errorf("%w: key %d", ErrKeysExhausted, key)
	}
	if destructor != nil {
		nativeDestructors[key].Store(&destructor)
	}
	nativeKeys[key].Store(true)
	return Key(key), nil
}

func (pthreadOS) Get(key Key) Handle {
	return Handle(C.pagealloc_get(C.uint(key)))
}

func (pthreadOS) Set(key Key, value Handle) error {
	// The address crosses into C as an integer; see Native for ownership.
	if rc := C.pagealloc_set(C.uint(key), C.uintptr_t(uintptr(unsafe.Pointer(value)))); rc != 0 {
		return syscall.Errno(rc)
	}
	return nil
}

func (pthreadOS) Yield() { yield() }

// ThreadExit runs the calling thread's destructors for every key created
// through Native and releases its cells. The thread library would otherwise
// do this when the thread terminates.
func (pthreadOS) ThreadExit() {
	for k := range nativeKeys {
		if nativeKeys[k].Load() {
			C.pagealloc_thread_exit(C.uint(k))
		}
	}
}
