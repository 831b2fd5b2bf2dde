package layout

import (
	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/tree"
)

// Export converts a layout result to the serialization format.
//
// Only geometry is filled in; callers add the header, catalog and steps.
// Node IDs are indexes into Result.Nodes.
func (r *Result) Export() graph.Layout {
	out := graph.Layout{
		Width:      r.Width,
		Height:     r.Height,
		NodeWidth:  r.Config.NodeWidth,
		NodeHeight: r.Config.NodeHeight,
		Depth:      r.Depth,
		Leaves:     r.Leaves,
		Nodes:      make([]graph.PositionedNode, len(r.Nodes)),
		Links:      make([]graph.Link, len(r.Links)),
		Catalog:    []string{},
	}
	for i, n := range r.Nodes {
		parent := -1
		if n.Parent != nil {
			parent = n.Parent.Index
		}
		out.Nodes[i] = graph.PositionedNode{
			ID:      n.Index,
			Name:    n.Node.Name,
			X:       n.X,
			Y:       n.Y,
			Depth:   n.Depth,
			Parent:  parent,
			Cyclic:  n.Node.Cyclic,
			Unknown: n.Node.Unknown,
		}
	}
	for i, l := range r.Links {
		out.Links[i] = graph.Link{From: l.From.Index, To: l.To.Index}
	}
	return out
}

// Parse rebuilds a layout result, including its tree, from the
// serialization format. Links are derived from parent references.
func Parse(l graph.Layout) (*Result, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if l.NodeWidth > 0 {
		cfg.NodeWidth = l.NodeWidth
	}
	if l.NodeHeight > 0 {
		cfg.NodeHeight = l.NodeHeight
	}

	res := &Result{
		Nodes:  make([]*PositionedNode, len(l.Nodes)),
		Width:  l.Width,
		Height: l.Height,
		Config: cfg,
		index:  make(map[*tree.Node]*PositionedNode, len(l.Nodes)),
	}
	for i, n := range l.Nodes {
		pn := &PositionedNode{
			Node:  &tree.Node{Name: n.Name, Cyclic: n.Cyclic, Unknown: n.Unknown},
			X:     n.X,
			Y:     n.Y,
			Depth: n.Depth,
			Index: i,
		}
		if n.Parent >= 0 {
			p := res.Nodes[n.Parent]
			if n.Depth != p.Depth+1 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "node %d: depth %d under parent at depth %d", i, n.Depth, p.Depth)
			}
			pn.Parent = p
			p.Children = append(p.Children, pn)
			p.Node.Children = append(p.Node.Children, pn.Node)
			res.Links = append(res.Links, Link{From: p, To: pn})
		}
		res.Nodes[i] = pn
		res.index[pn.Node] = pn
		res.Depth = max(res.Depth, n.Depth)
	}
	for _, pn := range res.Nodes {
		if len(pn.Children) == 0 {
			res.Leaves++
		}
	}
	return res, nil
}
