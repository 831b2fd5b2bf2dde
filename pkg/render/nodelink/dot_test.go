package nodelink

import (
	"strings"
	"testing"

	"github.com/crafttree/crafttree/pkg/graph"
)

func smokeLayout() graph.Layout {
	return graph.Layout{
		Element: "Smoke",
		Nodes: []graph.PositionedNode{
			{ID: 0, Name: "Smoke", Parent: -1},
			{ID: 1, Name: "Air", Depth: 1, Parent: 0},
			{ID: 2, Name: "Smoke", Depth: 1, Parent: 0, Cyclic: true},
		},
		Links: []graph.Link{{From: 0, To: 1}, {From: 0, To: 2}},
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(smokeLayout(), Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, want := range []string{`n0 [label="Smoke"`, `n1 [label="Air"`, `n2 [label="Smoke"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
	if !strings.Contains(dot, "n0 -> n1;") || !strings.Contains(dot, "n0 -> n2;") {
		t.Error("ToDOT() output missing edges")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(smokeLayout(), Options{Detailed: true})

	if !strings.Contains(dot, `depth: 1`) {
		t.Error("ToDOT() detailed output missing depth")
	}
	if !strings.Contains(dot, `cycle`) {
		t.Error("ToDOT() detailed output missing cycle marker")
	}
}

func TestToDOT_Cyclic(t *testing.T) {
	dot := ToDOT(smokeLayout(), Options{})

	if strings.Count(dot, "dashed") != 1 {
		t.Errorf("ToDOT() should mark exactly one dashed node:\n%s", dot)
	}
	if !strings.Contains(dot, "lightgrey") {
		t.Error("ToDOT() cyclic node missing lightgrey fill")
	}
}

func TestFmtLabel(t *testing.T) {
	n := graph.PositionedNode{Name: "Mud", Depth: 2, Unknown: true}

	if got := fmtLabel(n, false); got != "Mud" {
		t.Errorf("fmtLabel() simple = %q, want %q", got, "Mud")
	}
	if got, want := fmtLabel(n, true), "Mud\ndepth: 2\nunknown"; got != want {
		t.Errorf("fmtLabel() detailed = %q, want %q", got, want)
	}
}

func TestFmtAttrs(t *testing.T) {
	tests := []struct {
		name string
		node graph.PositionedNode
		want int
		sub  string
	}{
		{"regular", graph.PositionedNode{Name: "Air"}, 1, "label="},
		{"cyclic", graph.PositionedNode{Name: "Air", Cyclic: true}, 4, "dashed"},
		{"unknown", graph.PositionedNode{Name: "Air", Unknown: true}, 3, "dotted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := fmtAttrs(tt.node, tt.node.Name)
			if len(attrs) != tt.want {
				t.Errorf("fmtAttrs() = %d attrs, want %d: %v", len(attrs), tt.want, attrs)
			}
			if !strings.Contains(strings.Join(attrs, " "), tt.sub) {
				t.Errorf("fmtAttrs() missing %q: %v", tt.sub, attrs)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(smokeLayout(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
	if !strings.Contains(string(svg), "Air") {
		t.Error("RenderSVG() output missing node label")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(`not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
