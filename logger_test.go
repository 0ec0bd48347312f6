package pagealloc

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogger_LogAllocate(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogAllocate(1<<30, Region{}, nil)
	assert.Contains(t, buf.String(), "allocate completed")
	assert.Contains(t, buf.String(), "size=1073741824")

	buf.Reset()
	l.LogAllocate(1<<30, Region{}, errors.New("cannot allocate memory"))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "cannot allocate memory")
}

func TestLogger_FailuresThrottled(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	for i := 0; i < 100; i++ {
		l.LogAllocate(1<<30, Region{}, errors.New("enomem"))
	}

	lines := strings.Count(buf.String(), "allocate failed")
	assert.GreaterOrEqual(t, lines, failureLogBurst)
	assert.Less(t, lines, 100)
}

func TestLogger_LogCurrentNode(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogCurrentNode(12, 3, 1)
	out := buf.String()
	assert.Contains(t, out, "cpu=12")
	assert.Contains(t, out, "detected=3")
	assert.Contains(t, out, "selected=1")
}

func TestPlatform_LogsConfiguration(t *testing.T) {
	var buf bytes.Buffer
	New(
		WithLogger(newBufferLogger(&buf)),
		WithMemoryLimit(4<<30),
	)

	out := buf.String()
	assert.Contains(t, out, "platform created")
	assert.Contains(t, out, "huge_page=1GiB")
	assert.Contains(t, out, "large_page=2MiB")
	assert.Contains(t, out, "memory_limit=4294967296")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() { l.LogDeallocate(Region{}) })
}
