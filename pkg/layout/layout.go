package layout

import (
	"github.com/crafttree/crafttree/pkg/tree"
)

// PositionedNode is a tree node with its computed position. X and Y are the
// centre of the node in canvas coordinates, margins included.
type PositionedNode struct {
	Node     *tree.Node
	X, Y     float64
	Depth    int
	Parent   *PositionedNode // nil for the root
	Children []*PositionedNode
	Index    int // position in Result.Nodes
}

// Link is a parent → child connection.
type Link struct {
	From, To *PositionedNode
}

// Result is the geometry of one layout pass.
type Result struct {
	Nodes  []*PositionedNode // pre-order; Nodes[0] is the root
	Links  []Link            // one per non-root node, in Nodes order
	Width  float64
	Height float64
	Depth  int // max depth
	Leaves int

	Config Config

	index map[*tree.Node]*PositionedNode
}

// Root returns the positioned root.
func (r *Result) Root() *PositionedNode { return r.Nodes[0] }

// Lookup returns the position assigned to n, or nil if n is not part of the
// laid-out tree.
func (r *Result) Lookup(n *tree.Node) *PositionedNode {
	return r.index[n]
}

// Option configures a layout pass.
type Option func(*settings)

type settings struct {
	cfg Config
	sep SeparationFunc
}

// WithConfig replaces the default tuning constants. Zero fields are filled
// with defaults.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		cfg.SetDefaults()
		s.cfg = cfg
	}
}

// WithSeparation overrides the separation function. By default the
// configuration's Separation method is used.
func WithSeparation(fn SeparationFunc) Option {
	return func(s *settings) { s.sep = fn }
}

// Layout positions every node of root on a width × height canvas.
//
// Nodes are placed by a tidy-tree pass using the separation function, then
// fitted to the drawable area (canvas minus margins): the leftmost and
// rightmost nodes sit half a separation inside the horizontal bounds and
// depth d is placed at d/maxDepth of the drawable height. A single node is
// centred horizontally on the top margin line.
//
// Layout never fails; root must be non-nil. The same root and canvas always
// yield identical positions.
func Layout(root *tree.Node, width, height float64, opts ...Option) *Result {
	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.sep == nil {
		s.sep = s.cfg.Separation
	}

	t := tidy(root, s.sep)

	var all []*wnode
	var collect func(w *wnode)
	collect = func(w *wnode) {
		all = append(all, w)
		for _, c := range w.children {
			collect(c)
		}
	}
	collect(t)

	m := s.cfg.Margins
	dx := max(width-m.Horizontal(), 1)
	dy := max(height-m.Vertical(), 1)
	tx, kx, ky := fit(all, s.sep, dx, dy)

	res := &Result{
		Nodes:  make([]*PositionedNode, len(all)),
		Links:  make([]Link, 0, len(all)-1),
		Width:  width,
		Height: height,
		Config: s.cfg,
		index:  make(map[*tree.Node]*PositionedNode, len(all)),
	}
	byWrap := make(map[*wnode]*PositionedNode, len(all))
	for i, w := range all {
		pn := &PositionedNode{
			Node:  w.node,
			X:     m.Left + (w.x+tx)*kx,
			Y:     m.Top + float64(w.depth)*ky,
			Depth: w.depth,
			Index: i,
		}
		if p, ok := byWrap[w.parent]; ok {
			pn.Parent = p
			p.Children = append(p.Children, pn)
			res.Links = append(res.Links, Link{From: p, To: pn})
		}
		byWrap[w] = pn
		res.Nodes[i] = pn
		res.index[w.node] = pn
		res.Depth = max(res.Depth, w.depth)
		if len(w.children) == 0 {
			res.Leaves++
		}
	}
	return res
}

// fit returns the translation and scale mapping tidy coordinates onto a
// dx × dy drawable area.
func fit(nodes []*wnode, sep SeparationFunc, dx, dy float64) (tx, kx, ky float64) {
	left, right, bottom := nodes[0], nodes[0], nodes[0]
	for _, n := range nodes {
		if n.x < left.x {
			left = n
		}
		if n.x > right.x {
			right = n
		}
		if n.depth > bottom.depth {
			bottom = n
		}
	}

	s := 1.0
	if left != right {
		s = separate(sep, left, right) / 2
	}
	tx = s - left.x
	kx = dx / (right.x + s + tx)
	ky = dy / float64(max(bottom.depth, 1))
	return tx, kx, ky
}
