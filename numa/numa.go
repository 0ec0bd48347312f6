package numa

import (
	"errors"
	"fmt"
)

const (
	// LocalDistance is the distance the kernel reports from a node to itself.
	LocalDistance = 10
	// ClusterDistance is the largest distance at which two nodes are folded together.
	ClusterDistance = 11
)

// ErrNodeOffline is returned when a distance is queried for a node that is not online.
var ErrNodeOffline = errors.New("numa: node offline")

// NodeIndex identifies a NUMA node.
type NodeIndex uint32

// Value returns the numeric node id.
func (n NodeIndex) Value() uint32 { return uint32(n) }

func (n NodeIndex) String() string { return fmt.Sprintf("node%d", uint32(n)) }

// Topology is the operating-system view used by the Locator.
type Topology interface {
	// CurrentCPU returns the CPU the calling thread runs on and its node.
	CurrentCPU() (cpu uint32, node NodeIndex, err error)
	// Distance returns the kernel-reported distance from one node to another.
	Distance(from, to NodeIndex) (int, error)
}

// Snapshotter is implemented by topologies that can fix their view of the
// node set for the duration of one clustering scan.
type Snapshotter interface {
	Snapshot() (Topology, error)
}

// SelectNode returns the lowest-numbered node below detected whose distance
// to detected is at most ClusterDistance, or detected if there is none.
//
// Distances that cannot be read never qualify. This differs from libnuma,
// whose numa_distance reports 0 for unknown nodes and would therefore fold
// every node into an offline or missing one.
func SelectNode(t Topology, detected NodeIndex) NodeIndex {
	if detected == 0 {
		return detected
	}
	if s, ok := t.(Snapshotter); ok {
		snap, err := s.Snapshot()
		if err != nil {
			return detected
		}
		t = snap
	}
	for c := NodeIndex(0); c < detected; c++ {
		d, err := t.Distance(c, detected)
		if err != nil {
			continue
		}
		if d <= ClusterDistance {
			return c
		}
	}
	return detected
}

// Locator reports the clustered NUMA node of the calling thread.
type Locator struct {
	topology Topology
}

// NewLocator creates a Locator over the given topology.
func NewLocator(t Topology) *Locator {
	return &Locator{topology: t}
}

// Detect queries the current CPU and node and returns the node selected by
// clustering alongside the raw values.
func (l *Locator) Detect() (cpu uint32, detected, selected NodeIndex) {
	cpu, detected, err := l.topology.CurrentCPU()
	if err != nil {
		panic(fmt.Errorf("numa: getcpu: %w", err))
	}
	return cpu, detected, SelectNode(l.topology, detected)
}

// CurrentNode returns the clustered node of the calling thread.
func (l *Locator) CurrentNode() NodeIndex {
	_, _, selected := l.Detect()
	return selected
}
