package testutil

import (
	"fmt"
	"sync"

	"github.com/hupe1980/pagealloc/numa"
)

// DistanceTable is a synthetic NUMA topology with a settable current node.
// Unset off-diagonal distances are reported as 20.
type DistanceTable struct {
	mu       sync.Mutex
	nodes    int
	current  numa.NodeIndex
	cpu      uint32
	distance map[[2]numa.NodeIndex]int
	queries  int
	cpuErr   error
}

// NewDistanceTable creates a table of n nodes with the thread on node current.
func NewDistanceTable(n int, current numa.NodeIndex) *DistanceTable {
	return &DistanceTable{
		nodes:    n,
		current:  current,
		distance: make(map[[2]numa.NodeIndex]int),
	}
}

// SetDistance sets distance(from, to).
func (d *DistanceTable) SetDistance(from, to numa.NodeIndex, distance int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.distance[[2]numa.NodeIndex{from, to}] = distance
}

// SetCurrent moves the calling thread to node on cpu.
func (d *DistanceTable) SetCurrent(cpu uint32, node numa.NodeIndex) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cpu = cpu
	d.current = node
}

// FailCPU makes CurrentCPU return err.
func (d *DistanceTable) FailCPU(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cpuErr = err
}

// CurrentCPU implements numa.Topology.
func (d *DistanceTable) CurrentCPU() (uint32, numa.NodeIndex, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cpuErr != nil {
		return 0, 0, d.cpuErr
	}
	return d.cpu, d.current, nil
}

// Distance implements numa.Topology.
func (d *DistanceTable) Distance(from, to numa.NodeIndex) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.queries++
	if int(from) >= d.nodes || int(to) >= d.nodes {
		return 0, fmt.Errorf("%w: %s -> %s", numa.ErrNodeOffline, from, to)
	}
	if v, ok := d.distance[[2]numa.NodeIndex{from, to}]; ok {
		return v, nil
	}
	if from == to {
		return numa.LocalDistance, nil
	}
	return 20, nil
}

// Queries returns how many distances have been read.
func (d *DistanceTable) Queries() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queries
}
