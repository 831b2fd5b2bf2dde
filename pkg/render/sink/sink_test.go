package sink

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/layout"
	"github.com/crafttree/crafttree/pkg/render"
	"github.com/crafttree/crafttree/pkg/render/styles"
	"github.com/crafttree/crafttree/pkg/tree"
)

func smokeLayout(t *testing.T) graph.Layout {
	t.Helper()
	recipes := []graph.Recipe{
		{Ingredients: []string{"Air", "Fire"}, Result: "Smoke", Step: 2},
		{Ingredients: []string{"Earth", "Energy"}, Result: "Fire", Step: 1},
	}
	root := tree.Build("Smoke", recipes)
	l := layout.Auto(root).Export()
	l.Element = "Smoke"
	l.Algo = "bfs"
	l.Elapsed = "0.42"
	l.VisitedNodes = 12
	l.Catalog = tree.Collect(recipes)
	l.Steps = recipes
	return l
}

func TestRenderSVG_WellFormed(t *testing.T) {
	svg := RenderSVG(smokeLayout(t), WithLegend(), WithSteps(), WithHeader())
	dec := xml.NewDecoder(bytes.NewReader(svg))
	for {
		_, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("invalid XML: %v\n%s", err, svg)
		}
	}
}

func TestRenderSVG_Content(t *testing.T) {
	l := smokeLayout(t)
	out := string(RenderSVG(l))

	if got := strings.Count(out, `class="node"`); got != len(l.Nodes) {
		t.Errorf("node boxes = %d, want %d", got, len(l.Nodes))
	}
	if got := strings.Count(out, `class="link"`); got != len(l.Links) {
		t.Errorf("links = %d, want %d", got, len(l.Links))
	}
	for _, name := range []string{"Smoke", "Air", "Fire", "Earth", "Energy"} {
		if !strings.Contains(out, ">"+name+"</text>") {
			t.Errorf("missing label %s", name)
		}
	}
	if strings.Index(out, `class="link"`) > strings.Index(out, `class="node"`) {
		t.Error("links should be drawn before nodes")
	}
	if strings.Contains(out, "Recipe steps") || strings.Contains(out, "Elements") {
		t.Error("panels should be off by default")
	}
	if !strings.Contains(out, `fill="#677D6A"`) {
		t.Error("default style should be classic")
	}
}

func TestRenderSVG_Panels(t *testing.T) {
	l := smokeLayout(t)
	out := string(RenderSVG(l, WithLegend(), WithSteps(), WithStyle(styles.Simple{})))

	if !strings.Contains(out, ">Elements</text>") {
		t.Error("legend title missing")
	}
	if got := strings.Count(out, `class="legend-swatch"`); got != len(l.Catalog) {
		t.Errorf("legend entries = %d, want %d", got, len(l.Catalog))
	}
	if !strings.Contains(out, "1. Air + Fire ➜ Smoke") || !strings.Contains(out, "2. Earth + Energy ➜ Fire") {
		t.Errorf("steps missing:\n%s", out)
	}

	re := regexp.MustCompile(`viewBox="0 0 ([0-9.]+) ([0-9.]+)"`)
	m := re.FindStringSubmatch(out)
	if m == nil {
		t.Fatal("viewBox missing")
	}
	plain := re.FindStringSubmatch(string(RenderSVG(l)))
	if m[2] == plain[2] {
		t.Error("panels should extend the document height")
	}
}

func TestRenderSVG_Header(t *testing.T) {
	out := string(RenderSVG(smokeLayout(t), WithHeader()))
	if !strings.Contains(out, "algorithm BFS · 0.42 ms · 12 nodes visited") {
		t.Errorf("header info missing:\n%s", out)
	}
}

func TestRenderSVG_IDPrefix(t *testing.T) {
	l := smokeLayout(t)
	out := string(RenderSVG(l, WithIDPrefix("a-")))
	if !strings.Contains(out, `id="node-a-0"`) || !strings.Contains(out, `id="a-links"`) {
		t.Error("prefix not applied")
	}

	first := string(RenderSVG(l, WithUniqueIDs()))
	second := string(RenderSVG(l, WithUniqueIDs()))
	if first == second {
		t.Error("unique ids should differ between renders")
	}
}

func TestRenderSVG_CyclicDashed(t *testing.T) {
	root := tree.Build("X", []graph.Recipe{{Ingredients: []string{"X"}, Result: "X"}})
	out := string(RenderSVG(layout.Auto(root).Export()))
	if !strings.Contains(out, "stroke-dasharray") {
		t.Error("cyclic leaf should be dashed")
	}
}

func TestRenderSVG_Colors(t *testing.T) {
	l := smokeLayout(t)
	out := string(RenderSVG(l, WithLegend(), WithColors(map[string]string{"Fire": "#ff0000"})))

	// one node swatch plus one legend swatch
	if got := strings.Count(out, `"#ff0000"`); got != 2 {
		t.Errorf("override used %d times, want 2", got)
	}
	if !strings.Contains(out, `"`+styles.ColorForName("Air")+`"`) {
		t.Error("elements without override should keep their hashed colour")
	}
}

func TestHeaderInfo(t *testing.T) {
	tests := []struct {
		name string
		l    graph.Layout
		want string
	}{
		{"Empty", graph.Layout{}, ""},
		{"ElapsedOnly", graph.Layout{Elapsed: "3.10"}, "3.10 ms"},
		{"All", graph.Layout{Algo: "dfs", Elapsed: "1", VisitedNodes: 5}, "algorithm DFS · 1 ms · 5 nodes visited"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeaderInfo(tt.l); got != tt.want {
				t.Errorf("HeaderInfo = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	l := smokeLayout(t)
	data, err := RenderJSON(l, WithJSONStyle("simple"))
	if err != nil {
		t.Fatal(err)
	}
	back, err := graph.UnmarshalLayout(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.Style != "simple" || back.Element != "Smoke" || back.VisitedNodes != 12 {
		t.Errorf("header lost: %+v", back)
	}
	if len(back.Nodes) != len(l.Nodes) || len(back.Steps) != 2 {
		t.Errorf("content lost: %d nodes, %d steps", len(back.Nodes), len(back.Steps))
	}

	data, _ = RenderJSON(l, WithoutJSONSteps())
	if strings.Contains(string(data), `"steps"`) {
		t.Error("steps should be omitted")
	}
}

func TestRenderJSON_EmptyCollections(t *testing.T) {
	l := graph.Layout{Nodes: []graph.PositionedNode{{ID: 0, Name: "Water", Parent: -1}}}
	data, err := RenderJSON(l)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"catalog": []`) || !strings.Contains(string(data), `"links": []`) {
		t.Errorf("empty collections should serialize as []:\n%s", data)
	}
}

func TestRenderPNG(t *testing.T) {
	if !render.Available() {
		t.Skip("rsvg-convert not installed")
	}
	png, err := RenderPNG(smokeLayout(t), WithScale(1), WithPNGSVGOptions(WithLegend()))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("not a PNG")
	}
}

func TestRenderPDF(t *testing.T) {
	if !render.Available() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := RenderPDF(smokeLayout(t), WithPDFSVGOptions(WithSteps()))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("not a PDF")
	}
}
