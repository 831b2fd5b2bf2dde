package tree

// MaxDepth returns the length of the longest root-to-leaf chain: 0 for a leaf.
func MaxDepth(n *Node) int {
	if n.IsLeaf() {
		return 0
	}
	deepest := 0
	for _, c := range n.Children {
		deepest = max(deepest, MaxDepth(c))
	}
	return 1 + deepest
}

// LeafCount returns the number of leaves under n: 1 for a leaf.
func LeafCount(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += LeafCount(c)
	}
	return total
}

// Metrics memoizes MaxDepth and LeafCount per node for the lifetime of one
// layout pass. The tree must not change while a Metrics is in use.
type Metrics struct {
	depth  map[*Node]int
	leaves map[*Node]int
}

// NewMetrics returns an empty memo.
func NewMetrics() *Metrics {
	return &Metrics{
		depth:  make(map[*Node]int),
		leaves: make(map[*Node]int),
	}
}

// MaxDepth is the memoized form of the package-level MaxDepth.
func (m *Metrics) MaxDepth(n *Node) int {
	if d, ok := m.depth[n]; ok {
		return d
	}
	d := 0
	if !n.IsLeaf() {
		for _, c := range n.Children {
			d = max(d, m.MaxDepth(c))
		}
		d++
	}
	m.depth[n] = d
	return d
}

// LeafCount is the memoized form of the package-level LeafCount.
func (m *Metrics) LeafCount(n *Node) int {
	if c, ok := m.leaves[n]; ok {
		return c
	}
	total := 1
	if !n.IsLeaf() {
		total = 0
		for _, c := range n.Children {
			total += m.LeafCount(c)
		}
	}
	m.leaves[n] = total
	return total
}

// TreeStats summarizes a tree for logging and display.
type TreeStats struct {
	Nodes   int // total node count
	Leaves  int
	Depth   int
	Cyclic  int // leaves truncated by the cycle guard
	Unknown int // leaves flagged Unknown
}

// Stats walks the tree once and returns its summary.
func Stats(root *Node) TreeStats {
	var s TreeStats
	root.Walk(func(n *Node, depth int) bool {
		s.Nodes++
		s.Depth = max(s.Depth, depth)
		if n.IsLeaf() {
			s.Leaves++
		}
		if n.Cyclic {
			s.Cyclic++
		}
		if n.Unknown {
			s.Unknown++
		}
		return true
	})
	return s
}
