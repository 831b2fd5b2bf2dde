package layout

import "github.com/crafttree/crafttree/pkg/tree"

// CanvasSize derives canvas dimensions from the tree's metrics: width grows
// with the leaf count and height with the depth, each clamped to the
// configured minimum.
func CanvasSize(root *tree.Node, cfg Config) (width, height float64) {
	return CanvasSizeWith(tree.NewMetrics(), root, cfg)
}

// CanvasSizeWith is CanvasSize reusing a metrics memo from the same pass.
func CanvasSizeWith(m *tree.Metrics, root *tree.Node, cfg Config) (width, height float64) {
	leaves := float64(m.LeafCount(root))
	depth := float64(m.MaxDepth(root))
	width = max(cfg.MinWidth, leaves*cfg.LeafWidth+cfg.Margins.Horizontal())
	height = max(cfg.MinHeight, depth*cfg.LevelHeight+cfg.Margins.Vertical())
	return width, height
}

// Auto lays out root on a canvas sized by CanvasSize.
func Auto(root *tree.Node, opts ...Option) *Result {
	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	w, h := CanvasSize(root, s.cfg)
	return Layout(root, w, h, opts...)
}
