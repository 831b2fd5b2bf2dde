package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/render/styles"
)

const (
	panelPadding     = 40.0
	panelTitleHeight = 36.0
	legendColWidth   = 180.0
	legendRowHeight  = 26.0
	legendSwatch     = 14.0
	stepRowHeight    = 24.0
)

// panel is a block of content stacked below the tree.
type panel struct {
	height float64
	render func(buf *bytes.Buffer, s styles.Style, top float64)
}

func legendPanel(catalog []string, width float64, color func(string) string) panel {
	cols := max(1, int((width-2*panelPadding)/legendColWidth))
	rows := (len(catalog) + cols - 1) / cols
	return panel{
		height: panelTitleHeight + float64(rows)*legendRowHeight + panelPadding,
		render: func(buf *bytes.Buffer, s styles.Style, top float64) {
			renderPanelTitle(buf, s, "Elements", top)
			buf.WriteString("  <g class=\"legend\">\n")
			for i, name := range catalog {
				s.RenderLegendEntry(buf, styles.LegendEntry{
					Label: name,
					X:     panelPadding + float64(i%cols)*legendColWidth,
					Y:     top + panelTitleHeight + float64(i/cols)*legendRowHeight,
					Size:  legendSwatch,
					Color: color(name),
				})
			}
			buf.WriteString("  </g>\n")
		},
	}
}

func stepsPanel(steps []graph.Recipe) panel {
	return panel{
		height: panelTitleHeight + float64(len(steps))*stepRowHeight + panelPadding,
		render: func(buf *bytes.Buffer, s styles.Style, top float64) {
			renderPanelTitle(buf, s, "Recipe steps", top)
			buf.WriteString("  <g class=\"steps\">\n")
			for i, r := range steps {
				y := top + panelTitleHeight + float64(i)*stepRowHeight + stepRowHeight/2
				fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" dy=".35em" font-family="sans-serif" font-size="13px" fill="%s">%s</text>`+"\n",
					panelPadding, y, s.TextColor(), styles.EscapeXML(FormatStep(i, r)))
			}
			buf.WriteString("  </g>\n")
		},
	}
}

// FormatStep formats a recipe as a numbered step: "1. Air + Fire ➜ Smoke".
func FormatStep(i int, r graph.Recipe) string {
	return fmt.Sprintf("%d. %s", i+1, r.String())
}

func renderPanelTitle(buf *bytes.Buffer, s styles.Style, title string, top float64) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="16px" font-weight="bold" fill="%s">%s</text>`+"\n",
		panelPadding, top+panelTitleHeight*0.6, s.TextColor(), styles.EscapeXML(title))
}

func renderHeader(buf *bytes.Buffer, l graph.Layout, s styles.Style) {
	if l.Element != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="24px" font-weight="bold" fill="%s">%s</text>`+"\n",
			panelPadding, panelPadding+8, s.TextColor(), styles.EscapeXML(l.Element))
	}
	if info := HeaderInfo(l); info != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="13px" fill="%s">%s</text>`+"\n",
			panelPadding, panelPadding+32, s.TextColor(), styles.EscapeXML(info))
	}
}

// HeaderInfo summarizes the search statistics of a layout:
// "algorithm BFS · 0.42 ms · 12 nodes visited".
func HeaderInfo(l graph.Layout) string {
	var parts []string
	if l.Algo != "" {
		parts = append(parts, "algorithm "+strings.ToUpper(l.Algo))
	}
	if l.Elapsed != "" {
		parts = append(parts, l.Elapsed+" ms")
	}
	if l.VisitedNodes > 0 {
		parts = append(parts, fmt.Sprintf("%d nodes visited", l.VisitedNodes))
	}
	return strings.Join(parts, " · ")
}
