package numa

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/pagealloc/internal/conv"
)

// DefaultSysfsRoot is where the kernel exposes NUMA nodes.
const DefaultSysfsRoot = "/sys/devices/system/node"

// SysTopology reads NUMA information from the running kernel.
type SysTopology struct {
	root string
}

// SysOption configures a SysTopology.
type SysOption func(*SysTopology)

// WithSysfsRoot reads node information below dir instead of DefaultSysfsRoot.
func WithSysfsRoot(dir string) SysOption {
	return func(s *SysTopology) {
		s.root = dir
	}
}

// NewSysTopology creates a topology backed by sysfs and getcpu(2).
func NewSysTopology(opts ...SysOption) *SysTopology {
	s := &SysTopology{root: DefaultSysfsRoot}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentCPU implements Topology.
func (s *SysTopology) CurrentCPU() (uint32, NodeIndex, error) {
	cpu, node, err := getcpu()
	if err != nil {
		return 0, 0, err
	}
	return cpu, NodeIndex(node), nil
}

// Nodes returns the set of online nodes.
func (s *SysTopology) Nodes() (*roaring.Bitmap, error) {
	data, err := os.ReadFile(filepath.Join(s.root, "online"))
	if err != nil {
		return nil, err
	}
	return ParseNodeList(string(data))
}

// Distance implements Topology. It reads row from of the distance table.
func (s *SysTopology) Distance(from, to NodeIndex) (int, error) {
	nodes, err := s.Nodes()
	if err != nil {
		return 0, err
	}
	return s.distance(nodes, from, to)
}

// Snapshot implements Snapshotter. The online node set is read once and
// reused for every distance queried through the snapshot.
func (s *SysTopology) Snapshot() (Topology, error) {
	nodes, err := s.Nodes()
	if err != nil {
		return nil, err
	}
	return &sysSnapshot{sys: s, nodes: nodes}, nil
}

func (s *SysTopology) distance(nodes *roaring.Bitmap, from, to NodeIndex) (int, error) {
	if !nodes.Contains(from.Value()) || !nodes.Contains(to.Value()) {
		return 0, fmt.Errorf("%w: distance %s -> %s", ErrNodeOffline, from, to)
	}

	data, err := os.ReadFile(filepath.Join(s.root, fmt.Sprintf("node%d", from.Value()), "distance"))
	if err != nil {
		return 0, err
	}

	// The row lists distances to every online node in ascending order.
	row := strings.Fields(string(data))
	column := nodes.Rank(to.Value()) - 1
	if column >= uint64(len(row)) {
		return 0, fmt.Errorf("numa: no distance %s -> %s in %q", from, to, strings.TrimSpace(string(data)))
	}

	d, err := strconv.Atoi(row[column])
	if err != nil {
		return 0, fmt.Errorf("numa: parse distance %s -> %s: %w", from, to, err)
	}
	return d, nil
}

type sysSnapshot struct {
	sys   *SysTopology
	nodes *roaring.Bitmap
}

func (s *sysSnapshot) CurrentCPU() (uint32, NodeIndex, error) { return s.sys.CurrentCPU() }

func (s *sysSnapshot) Distance(from, to NodeIndex) (int, error) {
	return s.sys.distance(s.nodes, from, to)
}

// ParseNodeList parses a kernel list such as "0-3,5,7-8".
func ParseNodeList(s string) (*roaring.Bitmap, error) {
	bm := roaring.New()
	s = strings.TrimSpace(s)
	if s == "" {
		return bm, nil
	}

	for _, part := range strings.Split(s, ",") {
		lo, hi, isRange := strings.Cut(part, "-")
		start, err := parseNode(lo)
		if err != nil {
			return nil, fmt.Errorf("numa: parse node list %q: %w", s, err)
		}
		if !isRange {
			bm.Add(start)
			continue
		}
		end, err := parseNode(hi)
		if err != nil {
			return nil, fmt.Errorf("numa: parse node list %q: %w", s, err)
		}
		if end < start {
			return nil, fmt.Errorf("numa: parse node list %q: descending range", s)
		}
		bm.AddRange(uint64(start), uint64(end)+1)
	}

	return bm, nil
}

func parseNode(s string) (uint32, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return conv.IntToUint32(n)
}
