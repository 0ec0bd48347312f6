package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// PanicError runs fn, requires it to panic with an error value and returns
// that error.
func PanicError(t testing.TB, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.Truef(t, ok, "panic value %v (%T) is not an error", r, r)
		err = e
	}()
	fn()
	return nil
}
