package styles

import (
	"bytes"

	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/graph"
)

// Style defines the visual appearance of a rendered derivation tree.
// Implementations control how nodes, links, labels and legend entries are
// drawn.
type Style interface {
	// Name returns the style identifier ("classic", "simple").
	Name() string
	// RenderDefs writes SVG <defs> content (markers, patterns).
	RenderDefs(buf *bytes.Buffer)
	// RenderNode writes the SVG for a single node box.
	RenderNode(buf *bytes.Buffer, n Node)
	// RenderLink writes the SVG for a parent → child link.
	RenderLink(buf *bytes.Buffer, l Link)
	// RenderText writes the SVG for a node's label.
	RenderText(buf *bytes.Buffer, n Node)
	// RenderLegendEntry writes one catalog entry of the legend.
	RenderLegendEntry(buf *bytes.Buffer, e LegendEntry)
	// TextColor is the colour used for free text such as headings.
	TextColor() string
}

// Node contains all data needed to render one tree node.
type Node struct {
	ID         string  // DOM id, unique within the document
	Label      string  // Element name
	X, Y, W, H float64 // Top-left corner and size of the box
	CX, CY     float64 // Centre (for text)
	Color      string  // Element colour, matching its legend swatch
	Cyclic     bool    // Branch truncated by the cycle guard
	Unknown    bool    // Element not reported by the search service
}

// Link contains the path data for one parent → child link.
type Link struct {
	FromID, ToID string
	Path         string // SVG path data
}

// LegendEntry is one element in the legend panel.
type LegendEntry struct {
	Label string
	X, Y  float64 // Top-left of the swatch
	Size  float64 // Swatch edge length
	Color string
}

// ByName returns the style registered under name.
func ByName(name string) (Style, error) {
	switch name {
	case graph.StyleClassic, "":
		return Classic{}, nil
	case graph.StyleSimple:
		return Simple{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (want %s or %s)", name, graph.StyleClassic, graph.StyleSimple)
	}
}
