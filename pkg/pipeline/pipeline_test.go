package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/observability"
	"github.com/crafttree/crafttree/pkg/render"
)

func smokeData() graph.GraphData {
	return graph.GraphData{
		Nodes: []graph.Node{{ID: 1, Name: "Smoke"}, {ID: 2, Name: "Air"}, {ID: 3, Name: "Fire"}},
		Recipes: []graph.Recipe{
			{Ingredients: []string{"Air", "Fire"}, Result: "Smoke", Step: 1},
		},
		Elapsed:      "0.42",
		VisitedNodes: 7,
	}
}

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"classic", false},
		{"simple", false},
		{"fancy", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"tree", false},
		{"nodelink", false},
		{"sankey", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	if opts.VizType != DefaultVizType || opts.Style != DefaultStyle || opts.Scale != DefaultScale {
		t.Errorf("defaults not applied: %+v", opts)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Layout.BaseMultiplier == 0 || opts.Logger == nil {
		t.Error("layout config and logger should be defaulted")
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Options)
		code errors.Code
	}{
		{"bad format", func(o *Options) { o.Formats = []string{"gif"} }, errors.ErrCodeInvalidFormat},
		{"bad style", func(o *Options) { o.Style = "neon" }, errors.ErrCodeInvalidStyle},
		{"bad viz", func(o *Options) { o.VizType = "sankey" }, errors.ErrCodeInvalidVizType},
		{"bad algo", func(o *Options) { o.Algo = "astar" }, errors.ErrCodeInvalidAlgo},
		{"bad element", func(o *Options) { o.Element = "   " }, errors.ErrCodeInvalidElement},
		{"negative path", func(o *Options) { o.Path = -1 }, errors.ErrCodeInvalidInput},
		{"negative width", func(o *Options) { o.Width = -5 }, errors.ErrCodeInvalidInput},
		{"bad layout", func(o *Options) { o.Layout.DepthExponent = -1 }, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts Options
			opts.SetDefaults()
			tt.mod(&opts)
			err := opts.Validate()
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOptionsVizType(t *testing.T) {
	opts := Options{}
	if !opts.IsTree() || opts.IsNodelink() {
		t.Error("Empty VizType should be tree")
	}
	opts.VizType = "nodelink"
	if opts.IsTree() || !opts.IsNodelink() {
		t.Error("nodelink VizType should be nodelink")
	}
}

func TestBuildTree(t *testing.T) {
	root, err := BuildTree(smokeData(), Options{})
	if err != nil {
		t.Fatalf("BuildTree() error: %v", err)
	}
	if root.Name != "Smoke" || len(root.Children) != 2 {
		t.Errorf("BuildTree() = %s", root)
	}

	if _, err := BuildTree(graph.GraphData{}, Options{}); !errors.Is(err, errors.ErrCodeEmptyRecipes) {
		t.Errorf("empty path error = %v, want EMPTY_RECIPES", err)
	}

	water, err := BuildTree(graph.GraphData{}, Options{Element: "Water"})
	if err != nil {
		t.Fatalf("BuildTree(Water) error: %v", err)
	}
	if water.Name != "Water" || !water.IsLeaf() {
		t.Errorf("base element should be a single leaf, got %s", water)
	}
}

func TestComputeLayout_CanvasSize(t *testing.T) {
	root, _ := BuildTree(smokeData(), Options{})

	var opts Options
	opts.SetDefaults()
	auto := ComputeLayout(root, opts)
	if auto.Width <= 0 || auto.Height <= 0 {
		t.Fatalf("auto canvas = %gx%g", auto.Width, auto.Height)
	}

	opts.Width = 999
	fixed := ComputeLayout(root, opts)
	if fixed.Width != 999 || fixed.Height != auto.Height {
		t.Errorf("fixed width = %gx%g, want 999x%g", fixed.Width, fixed.Height, auto.Height)
	}
}

func TestExecute(t *testing.T) {
	opts := Options{Formats: []string{FormatSVG, FormatJSON}, Algo: "bfs", Legend: true}
	res, err := quietRunner().Execute(context.Background(), smokeData(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if res.Element != "Smoke" {
		t.Errorf("Element = %q, want Smoke", res.Element)
	}
	if res.Stats.Nodes != 3 || res.Stats.Leaves != 2 || res.Stats.Depth != 1 {
		t.Errorf("Stats = %+v", res.Stats.TreeStats)
	}
	if got := strings.Join(res.Catalog, ","); got != "Smoke,Air,Fire" {
		t.Errorf("Catalog = %s", got)
	}
	if len(res.Geometry.Nodes) != 3 || len(res.Layout.Nodes) != 3 {
		t.Error("layout should hold every node")
	}
	if res.Layout.Algo != "bfs" || res.Layout.Elapsed != "0.42" || res.Layout.VisitedNodes != 7 {
		t.Errorf("header = %q %q %d", res.Layout.Algo, res.Layout.Elapsed, res.Layout.VisitedNodes)
	}

	svg := string(res.Artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, ">Elements</text>") {
		t.Errorf("svg artifact missing or without legend:\n%s", svg)
	}

	var decoded graph.Layout
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &decoded); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if decoded.Element != "Smoke" || decoded.Style != "classic" || len(decoded.Steps) != 1 {
		t.Errorf("json artifact = %+v", decoded)
	}
}

func TestExecute_Deterministic(t *testing.T) {
	r := quietRunner()
	opts := Options{Formats: []string{FormatSVG}}
	a, err := r.Execute(context.Background(), smokeData(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(context.Background(), smokeData(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Artifacts[FormatSVG], b.Artifacts[FormatSVG]) {
		t.Error("identical inputs should render identical SVG")
	}
}

func TestExecute_Errors(t *testing.T) {
	r := quietRunner()
	ctx := context.Background()

	if _, err := r.Execute(ctx, graph.GraphData{}, Options{}); !errors.Is(err, errors.ErrCodeEmptyRecipes) {
		t.Errorf("empty recipes error = %v, want EMPTY_RECIPES", err)
	}
	if _, err := r.Execute(ctx, smokeData(), Options{Style: "neon"}); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("bad style error = %v, want INVALID_STYLE", err)
	}

	bad := graph.GraphData{Recipes: []graph.Recipe{{Ingredients: []string{"Air"}, Result: ""}}}
	if _, err := r.Execute(ctx, bad, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("invalid name error = %v, want INVALID_INPUT", err)
	}
}

func TestExecute_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := quietRunner().Execute(ctx, smokeData(), Options{})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestExecute_BaseElement(t *testing.T) {
	res, err := quietRunner().Execute(context.Background(), graph.GraphData{}, Options{Element: "Water"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Stats.Nodes != 1 || len(res.Layout.Links) != 0 {
		t.Errorf("Water should be a single node, got %+v", res.Stats.TreeStats)
	}
}

func TestExecute_Logs(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
	cyclic := graph.GraphData{Recipes: []graph.Recipe{{Ingredients: []string{"X"}, Result: "X"}}}

	if _, err := r.Execute(context.Background(), cyclic, Options{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"built tree", "computed layout", "rendered outputs", "recipe cycle truncated"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

// doublingChain returns k recipes where each element combines the previous
// one with itself, giving a tree with 2^k leaves.
func doublingChain(k int) graph.GraphData {
	recipes := make([]graph.Recipe, 0, k)
	prev := "E0"
	for i := 1; i <= k; i++ {
		cur := fmt.Sprintf("E%d", i)
		recipes = append([]graph.Recipe{{Ingredients: []string{prev, prev}, Result: cur, Step: i}}, recipes...)
		prev = cur
	}
	return graph.GraphData{Recipes: recipes}
}

func TestExecute_WarnsOnLargeTree(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		wantWarn  bool
	}{
		{"above threshold", 50, true},
		{"below threshold", 1000, false},
		{"disabled", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewRunner(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
			r.LargeTreeNodes = tt.threshold

			res, err := r.Execute(context.Background(), doublingChain(6), Options{Formats: []string{FormatJSON}})
			if err != nil {
				t.Fatal(err)
			}
			if res.Stats.Leaves != 64 || res.Stats.Nodes != 127 {
				t.Fatalf("stats = %+v, want 64 leaves and 127 nodes", res.Stats.TreeStats)
			}
			if got := strings.Contains(buf.String(), "large derivation tree"); got != tt.wantWarn {
				t.Errorf("warned = %v, want %v:\n%s", got, tt.wantWarn, buf.String())
			}
		})
	}
}

func TestNewRunner_LargeTreeDefault(t *testing.T) {
	if got := NewRunner(nil).LargeTreeNodes; got != DefaultLargeTreeNodes {
		t.Errorf("LargeTreeNodes = %d, want %d", got, DefaultLargeTreeNodes)
	}
}

func TestExecute_Nodelink(t *testing.T) {
	opts := Options{VizType: graph.VizTypeNodelink, Formats: []string{FormatSVG, FormatJSON}}
	res, err := quietRunner().Execute(context.Background(), smokeData(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(string(res.Artifacts[FormatSVG]), "<svg") {
		t.Error("nodelink svg missing")
	}
	if len(res.Artifacts[FormatJSON]) == 0 {
		t.Error("nodelink json missing")
	}
}

func TestExecute_PNG(t *testing.T) {
	if !render.Available() {
		t.Skip("rsvg-convert not installed")
	}
	res, err := quietRunner().Execute(context.Background(), smokeData(), Options{Formats: []string{FormatPNG}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !bytes.HasPrefix(res.Artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact missing signature")
	}
}

func TestExecuteResponse(t *testing.T) {
	second := graph.GraphData{Recipes: []graph.Recipe{
		{Ingredients: []string{"Fire", "Water"}, Result: "Steam", Step: 1},
	}}
	resp := graph.Response{
		Algo:         "dfs",
		Element:      "Smoke",
		Paths:        []graph.GraphData{smokeData(), second},
		VisitedNodes: 40,
	}
	r := quietRunner()
	ctx := context.Background()

	one, err := r.ExecuteResponse(ctx, resp, Options{Path: 1})
	if err != nil {
		t.Fatalf("ExecuteResponse() error: %v", err)
	}
	if len(one) != 1 || one[0].Element != "Steam" {
		t.Fatalf("ExecuteResponse(path 2) = %d results", len(one))
	}
	if one[0].Layout.Algo != "dfs" || one[0].Layout.VisitedNodes != 40 {
		t.Errorf("header should fall back to response: %+v", one[0].Layout)
	}

	all, err := r.ExecuteResponse(ctx, resp, Options{All: true})
	if err != nil {
		t.Fatalf("ExecuteResponse(all) error: %v", err)
	}
	if len(all) != 2 || all[0].Element != "Smoke" || all[0].Layout.VisitedNodes != 7 {
		t.Errorf("ExecuteResponse(all) = %d results", len(all))
	}

	if _, err := r.ExecuteResponse(ctx, resp, Options{Path: 5}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("out of range error = %v, want INVALID_INPUT", err)
	}
	if _, err := r.ExecuteResponse(ctx, graph.Response{}, Options{All: true}); !errors.Is(err, errors.ErrCodeEmptyRecipes) {
		t.Errorf("no paths error = %v, want EMPTY_RECIPES", err)
	}
}

func TestRenderFromLayoutData(t *testing.T) {
	res, err := quietRunner().Execute(context.Background(), smokeData(),
		Options{Formats: []string{FormatJSON}, Style: "simple"})
	if err != nil {
		t.Fatal(err)
	}

	artifacts, err := RenderFromLayoutData(res.Artifacts[FormatJSON], Options{Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("RenderFromLayoutData() error: %v", err)
	}
	if !strings.Contains(string(artifacts[FormatSVG]), `stroke="#333"`) {
		t.Error("recorded style should be reused")
	}

	if _, err := RenderFromLayoutData([]byte("{"), Options{}); err == nil {
		t.Error("invalid JSON should fail")
	}
}

func TestRunner_Hooks(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetPipelineHooks(rec)
	defer observability.Reset()

	if _, err := quietRunner().Execute(context.Background(), smokeData(), Options{}); err != nil {
		t.Fatal(err)
	}
	want := []string{"build-start", "build-done", "layout-start", "layout-done", "render-start", "render-done"}
	if got := strings.Join(rec.events, ","); got != strings.Join(want, ",") {
		t.Errorf("hook events = %s", got)
	}
}

type recordingHooks struct {
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) add(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnBuildStart(context.Context, string, int) { h.add("build-start") }
func (h *recordingHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {
	h.add("build-done")
}
func (h *recordingHooks) OnLayoutStart(context.Context, string, int) { h.add("layout-start") }
func (h *recordingHooks) OnLayoutComplete(context.Context, string, time.Duration, error) {
	h.add("layout-done")
}
func (h *recordingHooks) OnRenderStart(context.Context, []string) { h.add("render-start") }
func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.add("render-done")
}
