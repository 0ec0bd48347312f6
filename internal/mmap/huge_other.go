//go:build !linux

package mmap

func osMapHuge(int, int) (uintptr, error) {
	return 0, ErrUnsupported
}

func osUnmap(uintptr, int) error {
	return ErrUnsupported
}
