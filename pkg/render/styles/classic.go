package styles

import (
	"bytes"
	"fmt"

	"github.com/crafttree/crafttree/pkg/graph"
)

const (
	classicFill       = "#677D6A"
	classicLinkStroke = "#555"
	classicRadius     = 10.0
	classicFontSize   = 14.0
	swatchRadius      = 5.0
)

// Classic draws green rounded boxes with white labels joined by dark grey
// curves: the look of the recipe explorer web UI.
type Classic struct{}

func (Classic) Name() string      { return graph.StyleClassic }
func (Classic) TextColor() string { return "#1a1a1a" }

func (Classic) RenderDefs(buf *bytes.Buffer) {}

func (Classic) RenderNode(buf *bytes.Buffer, n Node) {
	dash := ""
	if n.Cyclic {
		dash = ` stroke="#e0e0e0" stroke-width="2" stroke-dasharray="6 4"`
	}
	fill := classicFill
	if n.Unknown {
		fill = "#9a9a9a"
	}
	fmt.Fprintf(buf, `  <rect id="node-%s" class="node" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.0f" ry="%.0f" fill="%s"%s/>`+"\n",
		EscapeXML(n.ID), n.X, n.Y, n.W, n.H, classicRadius, classicRadius, fill, dash)
	if n.Color != "" {
		fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.0f" fill="%s" stroke="white" stroke-width="1"/>`+"\n",
			n.X+classicRadius, n.Y+classicRadius, swatchRadius, EscapeXML(n.Color))
	}
}

func (Classic) RenderLink(buf *bytes.Buffer, l Link) {
	fmt.Fprintf(buf, `  <path class="link" d="%s" fill="none" stroke="%s" stroke-width="2"/>`+"\n", l.Path, classicLinkStroke)
}

func (Classic) RenderText(buf *bytes.Buffer, n Node) {
	label := TruncateLabel(n.Label, n.W, classicFontSize)
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" dy=".35em" text-anchor="middle" font-family="sans-serif" font-size="%.0fpx" fill="white">%s</text>`+"\n",
		n.CX, n.CY, classicFontSize, EscapeXML(label))
}

func (c Classic) RenderLegendEntry(buf *bytes.Buffer, e LegendEntry) {
	renderLegendEntry(buf, e, c.TextColor(), classicRadius/2)
}

func renderLegendEntry(buf *bytes.Buffer, e LegendEntry, textColor string, radius float64) {
	fmt.Fprintf(buf, `  <rect class="legend-swatch" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.0f" fill="%s"/>`+"\n",
		e.X, e.Y, e.Size, e.Size, radius, EscapeXML(e.Color))
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" dy=".35em" font-family="sans-serif" font-size="13px" fill="%s">%s</text>`+"\n",
		e.X+e.Size+8, e.Y+e.Size/2, textColor, EscapeXML(e.Label))
}
