package sink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/layout"
	"github.com/crafttree/crafttree/pkg/render/styles"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	legend   bool
	steps    bool
	header   bool
	idPrefix string
	colors   map[string]string
}

// WithStyle sets the visual style (default [styles.Classic]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLegend appends a panel listing every catalog element with its colour.
func WithLegend() SVGOption { return func(r *svgRenderer) { r.legend = true } }

// WithSteps appends a panel listing the recipe steps ("Air + Fire ➜ Smoke").
func WithSteps() SVGOption { return func(r *svgRenderer) { r.steps = true } }

// WithHeader draws the element name and search statistics in the top margin.
func WithHeader() SVGOption { return func(r *svgRenderer) { r.header = true } }

// WithIDPrefix prefixes every DOM id in the document.
func WithIDPrefix(prefix string) SVGOption { return func(r *svgRenderer) { r.idPrefix = prefix } }

// WithUniqueIDs prefixes DOM ids with a random token so several trees can be
// inlined into one HTML page without id collisions.
func WithUniqueIDs() SVGOption {
	return func(r *svgRenderer) { r.idPrefix = "t" + uuid.NewString()[:8] + "-" }
}

// WithColors overrides the colour of the named elements. Elements not in
// the map keep their hashed colour.
func WithColors(colors map[string]string) SVGOption {
	return func(r *svgRenderer) { r.colors = colors }
}

// RenderSVG draws a serialized layout as a standalone SVG document.
//
// Links are drawn first so node boxes cover their ends. Panels requested via
// options are stacked below the tree and extend the document height.
func RenderSVG(l graph.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var panels []panel
	if r.legend && len(l.Catalog) > 0 {
		panels = append(panels, legendPanel(l.Catalog, l.Width, r.colorFor))
	}
	if r.steps && len(l.Steps) > 0 {
		panels = append(panels, stepsPanel(l.Steps))
	}

	totalHeight := l.Height
	for _, p := range panels {
		totalHeight += p.height
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, totalHeight, l.Width, totalHeight)

	r.style.RenderDefs(&buf)
	if r.header {
		renderHeader(&buf, l, r.style)
	}
	renderTree(&buf, &r, l)

	y := l.Height
	for _, p := range panels {
		p.render(&buf, r.style, y)
		y += p.height
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Classic{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) colorFor(name string) string {
	if c, ok := r.colors[name]; ok && c != "" {
		return c
	}
	return styles.ColorForName(name)
}

func renderTree(buf *bytes.Buffer, r *svgRenderer, l graph.Layout) {
	nodes := buildNodes(l, r.idPrefix, r.colorFor)

	fmt.Fprintf(buf, "  <g id=\"%slinks\">\n", r.idPrefix)
	for _, lk := range l.Links {
		from, to := l.Endpoints(lk)
		r.style.RenderLink(buf, styles.Link{
			FromID: nodes[lk.From].ID,
			ToID:   nodes[lk.To].ID,
			Path:   layout.VerticalLink(from.X, from.Y, to.X, to.Y),
		})
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, "  <g id=\"%snodes\">\n", r.idPrefix)
	for _, n := range nodes {
		r.style.RenderNode(buf, n)
	}
	for _, n := range nodes {
		r.style.RenderText(buf, n)
	}
	buf.WriteString("  </g>\n")
}

func buildNodes(l graph.Layout, prefix string, color func(string) string) []styles.Node {
	w, h := l.NodeWidth, l.NodeHeight
	if w <= 0 {
		w = layout.DefaultNodeWidth
	}
	if h <= 0 {
		h = layout.DefaultNodeHeight
	}

	nodes := make([]styles.Node, len(l.Nodes))
	for i, n := range l.Nodes {
		nodes[i] = styles.Node{
			ID:      prefix + strconv.Itoa(n.ID),
			Label:   n.Name,
			X:       n.X - w/2,
			Y:       n.Y - h/2,
			W:       w,
			H:       h,
			CX:      n.X,
			CY:      n.Y,
			Color:   color(n.Name),
			Cyclic:  n.Cyclic,
			Unknown: n.Unknown,
		}
	}
	return nodes
}
