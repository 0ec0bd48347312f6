// Package numa locates the NUMA node the calling thread is running on.
//
// # Clustering
//
// The kernel reports a distance of 10 from a node to itself and usually 20 or
// more to remote nodes, but some machines report 11 between nodes that are
// effectively local to each other. Treating those as separate nodes makes the
// allocator keep per-node state it does not need, so CurrentNode folds them
// together: for a detected node d it returns the lowest c < d with
// distance(c, d) <= 11, or d itself if there is none.
//
// The threshold and the one-directional scan are deliberate; the distance
// table is not assumed to be symmetric.
//
// # Cost
//
// Nothing is cached. Every call queries the kernel for the current CPU and
// reads the distance table, so CurrentNode belongs off the hot path (for
// example once per new worker thread). Goroutines that want a stable answer
// should call runtime.LockOSThread first.
package numa
