// Package testutil provides test doubles for the operating-system seams of
// pagealloc.
//
// This package is intended for use in tests and benchmarks only.
//
// # Mapper
//
// FakeMapper hands out fake, huge-page-aligned addresses without touching
// the kernel, and rejects double or foreign unmaps like the real mapper:
//
//	m := testutil.NewFakeMapper(pagesize.Huge)
//	m.FailNext(unix.ENOMEM)
//
// # Topology
//
// DistanceTable is a synthetic NUMA topology:
//
//	topo := testutil.NewDistanceTable(3, 2)  // 3 nodes, thread on node 2
//	topo.SetDistance(0, 2, 11)
//
// # Thread-local OS
//
// CountingOS wraps a threadlocal.OS and counts key creations, optionally
// slowing them down to widen initialization races.
//
// # Random sizes
//
//	rng := testutil.NewRNG(seed)
//	size := rng.PageMultiple(pagesize.Huge, 8)
package testutil
