// Package pagesize defines the page sizes the platform layer works with.
//
// # Sizes
//
//   - Large: 2 MiB, the transparent/explicit "large page" size on x86-64 and arm64.
//   - Huge: 1 GiB, the unit in which regions are obtained from the operating system.
//
// Both values are powers of two and Huge >= Large. They are compile-time
// constants and never change for the lifetime of the process.
package pagesize
