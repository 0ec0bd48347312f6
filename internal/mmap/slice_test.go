package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_Empty(t *testing.T) {
	assert.Nil(t, Slice(0, 4096))
	assert.Nil(t, Slice(1<<30, 0))
}
