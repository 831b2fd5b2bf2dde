package styles

import (
	"bytes"
	"fmt"

	"github.com/crafttree/crafttree/pkg/graph"
)

const simpleFontSize = 13.0

// Simple draws white outlined boxes with dark labels and thin grey links,
// suited to print.
type Simple struct{}

func (Simple) Name() string      { return graph.StyleSimple }
func (Simple) TextColor() string { return "#333" }

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderNode(buf *bytes.Buffer, n Node) {
	extra := ""
	if n.Cyclic {
		extra = ` stroke-dasharray="5 3"`
	}
	stroke := "#333"
	if n.Unknown {
		stroke = "#999"
	}
	fmt.Fprintf(buf, `  <rect id="node-%s" class="node" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="4" ry="4" fill="white" stroke="%s" stroke-width="1.5"%s/>`+"\n",
		EscapeXML(n.ID), n.X, n.Y, n.W, n.H, stroke, extra)
	if n.Color != "" {
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="4" height="%.2f" fill="%s"/>`+"\n",
			n.X, n.Y, n.H, EscapeXML(n.Color))
	}
}

func (Simple) RenderLink(buf *bytes.Buffer, l Link) {
	fmt.Fprintf(buf, `  <path class="link" d="%s" fill="none" stroke="#999" stroke-width="1.5"/>`+"\n", l.Path)
}

func (s Simple) RenderText(buf *bytes.Buffer, n Node) {
	label := TruncateLabel(n.Label, n.W, simpleFontSize)
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" dy=".35em" text-anchor="middle" font-family="sans-serif" font-size="%.0fpx" fill="%s">%s</text>`+"\n",
		n.CX, n.CY, simpleFontSize, s.TextColor(), EscapeXML(label))
}

func (s Simple) RenderLegendEntry(buf *bytes.Buffer, e LegendEntry) {
	renderLegendEntry(buf, e, s.TextColor(), 2)
}
