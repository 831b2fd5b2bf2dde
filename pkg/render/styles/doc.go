// Package styles defines visual styles for derivation tree rendering.
//
// # Overview
//
// A style controls how the SVG sink draws each visual element:
//
//   - [Style]: The interface that all styles implement
//   - [Classic]: Green rounded boxes with white labels (default)
//   - [Simple]: White outlined boxes for print
//
// Use [ByName] to resolve a style from configuration or a CLI flag:
//
//	style, err := styles.ByName("simple")
//	svg := sink.RenderSVG(layout, sink.WithStyle(style))
//
// # Element Colours
//
// [ColorForName] derives a stable colour from an element name. The sink uses
// it for the small swatch on each node and for the matching legend entry, so
// an element can be found in the tree from the legend.
//
// # Node Flags
//
// Both styles draw cyclic leaves (branches cut by the cycle guard) with a
// dashed outline and unknown elements in a muted colour.
package styles
