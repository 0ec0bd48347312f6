// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between the address-sized types used for mappings and the
// signed widths expected by accounting and parsing code.
//
// Use cases:
//   - Converting region lengths (uintptr) into budget amounts (int64)
//   - Validating node identifiers parsed from sysfs
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
