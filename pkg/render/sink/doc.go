// Package sink provides output format renderers for derivation trees.
//
// # Overview
//
// A "sink" transforms a serialized [graph.Layout] into a final output format:
//
//   - SVG: Static vector graphics
//   - JSON: Layout data export for external tools and re-rendering
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// Sinks read only the serialized layout, so a layout.json written by one run
// can be rendered again later without the original search payload.
//
// # SVG Output
//
//	svg := sink.RenderSVG(l,
//	    sink.WithStyle(styles.Simple{}),
//	    sink.WithLegend(),
//	    sink.WithSteps(),
//	)
//
// # SVG Options
//
//   - [WithStyle]: Visual style ([styles.Classic] or [styles.Simple])
//   - [WithLegend]: Element catalog panel below the tree
//   - [WithSteps]: Recipe steps panel below the tree
//   - [WithHeader]: Element name and search statistics in the top margin
//   - [WithIDPrefix], [WithUniqueIDs]: Namespace DOM ids for inlining
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render SVG first, then convert using
// rsvg-convert. Pass SVG options through [WithPDFSVGOptions] or
// [WithPNGSVGOptions].
//
// [graph.Layout]: github.com/crafttree/crafttree/pkg/graph.Layout
package sink
