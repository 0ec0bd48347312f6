//go:build !linux

package numa

// getcpu reports a single-node machine.
func getcpu() (cpu, node uint32, err error) {
	return 0, 0, nil
}
