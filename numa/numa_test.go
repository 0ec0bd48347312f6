package numa_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/pagealloc/numa"
	"github.com/hupe1980/pagealloc/testutil"
)

func TestSelectNode(t *testing.T) {
	t.Run("first candidate within cluster distance wins", func(t *testing.T) {
		topo := testutil.NewDistanceTable(3, 2)
		topo.SetDistance(0, 2, 11)
		topo.SetDistance(1, 2, 21)
		topo.SetDistance(2, 2, 10)

		assert.Equal(t, numa.NodeIndex(0), numa.SelectNode(topo, 2))
	})

	t.Run("lowest qualifying candidate", func(t *testing.T) {
		topo := testutil.NewDistanceTable(4, 3)
		topo.SetDistance(0, 3, 21)
		topo.SetDistance(1, 3, 11)
		topo.SetDistance(2, 3, 10)

		assert.Equal(t, numa.NodeIndex(1), numa.SelectNode(topo, 3))
	})

	t.Run("no candidate keeps detected node", func(t *testing.T) {
		topo := testutil.NewDistanceTable(3, 2)
		topo.SetDistance(0, 2, 20)
		topo.SetDistance(1, 2, 12)

		assert.Equal(t, numa.NodeIndex(2), numa.SelectNode(topo, 2))
	})

	t.Run("single node", func(t *testing.T) {
		topo := testutil.NewDistanceTable(1, 0)

		assert.Equal(t, numa.NodeIndex(0), numa.SelectNode(topo, 0))
		assert.Equal(t, 0, topo.Queries(), "no candidates below node 0")
	})

	t.Run("scan is one-directional", func(t *testing.T) {
		topo := testutil.NewDistanceTable(3, 1)
		topo.SetDistance(0, 1, 20)
		topo.SetDistance(2, 1, 11) // above the detected node: never considered

		assert.Equal(t, numa.NodeIndex(1), numa.SelectNode(topo, 1))
	})

	t.Run("asymmetric table uses distance(candidate, detected)", func(t *testing.T) {
		topo := testutil.NewDistanceTable(2, 1)
		topo.SetDistance(0, 1, 21)
		topo.SetDistance(1, 0, 11)

		assert.Equal(t, numa.NodeIndex(1), numa.SelectNode(topo, 1))
	})

	t.Run("unreadable distances never qualify", func(t *testing.T) {
		topo := testutil.NewDistanceTable(2, 1)

		// Node 5 is beyond the table: every candidate distance fails.
		assert.Equal(t, numa.NodeIndex(5), numa.SelectNode(topo, 5))
	})
}

func TestLocator_CurrentNode(t *testing.T) {
	topo := testutil.NewDistanceTable(4, 0)
	topo.SetDistance(0, 1, 11)
	topo.SetDistance(0, 3, 21)
	topo.SetDistance(1, 3, 21)
	topo.SetDistance(2, 3, 21)

	l := numa.NewLocator(topo)
	assert.Equal(t, numa.NodeIndex(0), l.CurrentNode())

	topo.SetCurrent(12, 1)
	assert.Equal(t, numa.NodeIndex(0), l.CurrentNode(), "node 1 clusters onto node 0")

	topo.SetCurrent(30, 3)
	cpu, detected, selected := l.Detect()
	assert.Equal(t, uint32(30), cpu)
	assert.Equal(t, numa.NodeIndex(3), detected)
	assert.Equal(t, numa.NodeIndex(3), selected)
}

func TestLocator_Uncached(t *testing.T) {
	topo := testutil.NewDistanceTable(2, 1)
	l := numa.NewLocator(topo)

	l.CurrentNode()
	l.CurrentNode()

	assert.Equal(t, 2, topo.Queries(), "every call re-reads the distance table")
}

func TestLocator_GetcpuFailure(t *testing.T) {
	topo := testutil.NewDistanceTable(1, 0)
	efault := errors.New("EFAULT")
	topo.FailCPU(efault)

	err := testutil.PanicError(t, func() { numa.NewLocator(topo).CurrentNode() })
	assert.ErrorIs(t, err, efault)
}

func TestNodeIndex(t *testing.T) {
	n := numa.NodeIndex(3)
	assert.Equal(t, uint32(3), n.Value())
	assert.Equal(t, "node3", n.String())
	assert.Less(t, numa.NodeIndex(1), numa.NodeIndex(2))
}

// snapshotTable counts snapshots and routes distances through them.
type snapshotTable struct {
	*testutil.DistanceTable
	snapshots int
	err       error
}

func (s *snapshotTable) Snapshot() (numa.Topology, error) {
	s.snapshots++
	if s.err != nil {
		return nil, s.err
	}
	return s.DistanceTable, nil
}

func TestSelectNode_Snapshot(t *testing.T) {
	t.Run("one snapshot per scan", func(t *testing.T) {
		topo := &snapshotTable{DistanceTable: testutil.NewDistanceTable(4, 3)}
		topo.SetDistance(2, 3, numa.ClusterDistance)

		assert.Equal(t, numa.NodeIndex(2), numa.SelectNode(topo, 3))
		assert.Equal(t, 1, topo.snapshots)
		assert.Equal(t, 3, topo.Queries())
	})

	t.Run("snapshot failure keeps detected node", func(t *testing.T) {
		topo := &snapshotTable{
			DistanceTable: testutil.NewDistanceTable(4, 3),
			err:           errors.New("online: no such file"),
		}
		topo.SetDistance(0, 3, numa.LocalDistance)

		assert.Equal(t, numa.NodeIndex(3), numa.SelectNode(topo, 3))
		assert.Zero(t, topo.Queries())
	})

	t.Run("node zero needs no snapshot", func(t *testing.T) {
		topo := &snapshotTable{DistanceTable: testutil.NewDistanceTable(1, 0)}

		assert.Equal(t, numa.NodeIndex(0), numa.SelectNode(topo, 0))
		assert.Zero(t, topo.snapshots)
	})
}
