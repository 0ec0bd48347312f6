package mmap

import "errors"

var (
	// ErrUnsupported is returned when huge-page mappings are not available on this platform.
	ErrUnsupported = errors.New("mmap: huge page mappings not supported on this platform")
	// ErrInvalidLength is returned when the length is zero or does not fit the platform's int.
	ErrInvalidLength = errors.New("mmap: invalid length")
)
