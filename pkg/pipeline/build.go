package pipeline

import (
	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/layout"
	"github.com/crafttree/crafttree/pkg/tree"
)

// BuildTree reconstructs the derivation tree for one path.
//
// With opts.Element set the tree is rooted there, so an element without
// recipes (a base element) yields a single leaf. Otherwise the root is the
// result of the first recipe and an empty path is an EMPTY_RECIPES error.
// Leaves are checked against data.Nodes when the path lists its nodes.
func BuildTree(data graph.GraphData, opts Options) (*tree.Node, error) {
	if opts.Element == "" {
		return tree.FromGraphData(data)
	}
	var buildOpts []tree.BuildOption
	if len(data.Nodes) > 0 {
		buildOpts = append(buildOpts, tree.WithKnownElements(data.NodeNames()))
	}
	return tree.BuildWith(opts.Element, data.Recipes, buildOpts...), nil
}

// ComputeLayout positions the tree. A zero Width or Height is derived from
// the tree's leaf count and depth.
func ComputeLayout(root *tree.Node, opts Options) *layout.Result {
	w, h := opts.Width, opts.Height
	if w == 0 || h == 0 {
		cw, ch := layout.CanvasSize(root, opts.Layout)
		if w == 0 {
			w = cw
		}
		if h == 0 {
			h = ch
		}
	}
	return layout.Layout(root, w, h, layout.WithConfig(opts.Layout))
}

// ExportLayout converts a layout result to the serialization format and
// fills in the header, catalog and steps from the path it was built from.
func ExportLayout(res *layout.Result, data graph.GraphData, opts Options) graph.Layout {
	l := res.Export()
	l.Element = res.Root().Node.Name
	l.Algo = opts.Algo
	l.Elapsed = data.Elapsed
	l.VisitedNodes = data.VisitedNodes
	l.Style = opts.Style
	l.Catalog = tree.Collect(data.Recipes)
	l.Steps = data.Recipes
	return l
}
