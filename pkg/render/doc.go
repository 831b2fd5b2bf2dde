// Package render provides visualization rendering for derivation trees.
//
// # Overview
//
// This package holds the pieces shared by every renderer:
//
//   - Format conversion from SVG to PDF/PNG ([ToPDF], [ToPNG])
//   - Visual styles (in [styles] subpackage)
//   - Output sinks for the tidy-tree view (in [sink] subpackage)
//   - Node-link diagrams via Graphviz (in [nodelink] subpackage)
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg). Use
// [Available] to check for it before offering those formats:
//
//	svg, _ := sink.RenderSVG(layout, sink.WithLegend())
//	if render.Available() {
//	    png, err := render.ToPNG(svg, 2.0) // 2x scale
//	}
//
// When the tool is missing the converters return an error with code
// UNSUPPORTED and install instructions.
//
// [styles]: github.com/crafttree/crafttree/pkg/render/styles
// [sink]: github.com/crafttree/crafttree/pkg/render/sink
// [nodelink]: github.com/crafttree/crafttree/pkg/render/nodelink
package render
