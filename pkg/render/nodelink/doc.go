// Package nodelink renders derivation trees as Graphviz node-link diagrams.
//
// # Overview
//
// This is the alternative to the tidy-tree view in pkg/render/sink. Graphviz
// chooses the positions; the package only supplies structure and labels
// from a [graph.Layout]:
//
//	dot := nodelink.ToDOT(l, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)
//
// # Options
//
//   - Detailed: labels also carry depth and cycle/unknown markers
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded box
// nodes so the diagram reads in the same direction as the tidy tree.
//
// # Dependencies
//
// SVG rendering runs in-process via [github.com/goccy/go-graphviz]. PDF and
// PNG conversion requires librsvg (rsvg-convert).
//
// [graph.Layout]: github.com/crafttree/crafttree/pkg/graph.Layout
package nodelink
