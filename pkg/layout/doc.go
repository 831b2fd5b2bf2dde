// Package layout computes node positions for derivation tree visualizations.
//
// # Overview
//
// Given a tree from pkg/tree and a canvas size, [Layout] assigns every node
// a centre point and every parent → child pair a [Link]. The result holds
// everything a renderer needs:
//
//   - Node positions in pre-order, with parent/child back-references
//   - Links in node order
//   - Canvas dimensions, depth and leaf count
//
// # Algorithm
//
// Positions come from the Buchheim–Jünger–Leipert linear-time variant of the
// Walker tidy-tree algorithm (Reingold–Tilford family): y is proportional to
// depth, subtrees are packed left to right so their contours never overlap,
// and parents sit centred above their children.
//
// Horizontal spacing between adjacent same-depth nodes is controlled by a
// [SeparationFunc]. The default, [Config.Separation], is non-uniform:
//
//	BaseMultiplier
//	  × (same parent ? 1 : SiblingGroupFactor)
//	  × 2^(max depth · DepthExponent)
//	  × max(1, log2(sibling count))
//
// Deeper levels and larger sibling groups get more room, so recipes with
// many ingredients do not crowd their labels together.
//
// After packing, coordinates are fitted to the drawable area (canvas minus
// [Margins]): the extreme nodes sit half a separation inside the left and
// right bounds, and the deepest level lands on the bottom margin line.
//
// # Canvas Size
//
// [CanvasSize] derives the canvas from [tree.LeafCount] and [tree.MaxDepth],
// clamped to [Config.MinWidth] and [Config.MinHeight]. [Auto] combines the
// two steps:
//
//	root := tree.Build("Smoke", recipes)
//	res := layout.Auto(root)
//	for _, l := range res.Links {
//	    fmt.Println(layout.LinkPath(l))
//	}
//
// # Options
//
//   - [WithConfig]: Tuning constants (default [DefaultConfig])
//   - [WithSeparation]: Replace the separation function entirely
//
// # Serialization
//
// [Result.Export] converts a result to [graph.Layout] for JSON output and
// the renderers in pkg/render; [Parse] reverses it.
//
// [graph.Layout]: github.com/crafttree/crafttree/pkg/graph.Layout
package layout
