package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crafttree/crafttree/pkg/errors"
)

const smokeJSON = `{
	"nodes": [{"id": 0, "name": "Smoke"}, {"id": 1, "name": "Air"}, {"id": 2, "name": "Fire"}],
	"recipes": [{"ingredients": ["Air", "Fire"], "result": "Smoke", "step": 1}],
	"elapsed": "0.42"
}`

func TestReadResponse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPaths   int
		wantElement string
		wantAlgo    string
		wantVisited int
		wantCode    errors.Code
	}{
		{
			name:        "BareGraphData",
			input:       smokeJSON,
			wantPaths:   1,
			wantElement: "Smoke",
		},
		{
			name:        "SinglePathEnvelope",
			input:       `{"error": false, "data": {"nodes": [], "recipes": [{"ingredients": ["Air", "Fire"], "result": "Smoke", "step": 1}], "visitedNodes": 12}}`,
			wantPaths:   1,
			wantElement: "Smoke",
			wantVisited: 12,
		},
		{
			name: "MultiPathEnvelope",
			input: `{"data": {"algo": "dfs", "element": "Steam", "visitedNodes": 40, "paths": [
				{"nodes": [], "recipes": [{"ingredients": ["Water", "Fire"], "result": "Steam", "step": 1}]},
				{"nodes": [], "recipes": [{"ingredients": ["Water", "Energy"], "result": "Steam", "step": 1}]}
			]}}`,
			wantPaths:   2,
			wantElement: "Steam",
			wantAlgo:    "dfs",
			wantVisited: 40,
		},
		{
			name:        "BareMultiPath",
			input:       `{"element": "Mud", "algo": "bfs", "paths": [{"nodes": [], "recipes": [{"ingredients": ["Water", "Earth"], "result": "Mud", "step": 1}]}]}`,
			wantPaths:   1,
			wantElement: "Mud",
			wantAlgo:    "bfs",
		},
		{
			name:     "FailureEnvelope",
			input:    `{"error": true, "type": "not_found", "message": "element not found"}`,
			wantCode: errors.ErrCodeSearchFailed,
		},
		{
			name:     "StringErrorEnvelope",
			input:    `{"error": "element not found"}`,
			wantCode: errors.ErrCodeSearchFailed,
		},
		{
			name:        "EmptyStringErrorIsNotFailure",
			input:       `{"error": "", "data": {"nodes": [], "recipes": [{"ingredients": ["Air", "Fire"], "result": "Smoke", "step": 1}]}}`,
			wantPaths:   1,
			wantElement: "Smoke",
		},
		{
			name:     "Unrecognized",
			input:    `{"foo": 1}`,
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "Malformed",
			input:    `{"nodes": [`,
			wantCode: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ReadResponse(strings.NewReader(tt.input))
			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("expected error with code %s", tt.wantCode)
				}
				if got := errors.GetCode(err); got != tt.wantCode {
					t.Fatalf("code = %s, want %s", got, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadResponse: %v", err)
			}
			if len(resp.Paths) != tt.wantPaths {
				t.Errorf("paths = %d, want %d", len(resp.Paths), tt.wantPaths)
			}
			if resp.Title() != tt.wantElement {
				t.Errorf("title = %q, want %q", resp.Title(), tt.wantElement)
			}
			if resp.Algo != tt.wantAlgo {
				t.Errorf("algo = %q, want %q", resp.Algo, tt.wantAlgo)
			}
			if resp.VisitedNodes != tt.wantVisited {
				t.Errorf("visited = %d, want %d", resp.VisitedNodes, tt.wantVisited)
			}
		})
	}
}

func TestReadResponse_FailureCarriesServiceMessage(t *testing.T) {
	_, err := ReadResponse(strings.NewReader(`{"error": true, "type": "timeout", "message": "search timed out"}`))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := errors.UserMessage(err); got != "search timed out" {
		t.Errorf("UserMessage = %q, want %q", got, "search timed out")
	}
}

func TestReadResponse_StringErrorBecomesMessage(t *testing.T) {
	_, err := ReadResponse(strings.NewReader(`{"error": "element not found"}`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeSearchFailed) {
		t.Fatalf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeSearchFailed)
	}
	if got := errors.UserMessage(err); got != "element not found" {
		t.Errorf("UserMessage = %q, want %q", got, "element not found")
	}
}

func TestReadResponseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "smoke.json")
	if err := os.WriteFile(path, []byte(smokeJSON), 0644); err != nil {
		t.Fatal(err)
	}

	resp, err := ReadResponseFile(path)
	if err != nil {
		t.Fatalf("ReadResponseFile: %v", err)
	}
	data, err := resp.Path(0)
	if err != nil {
		t.Fatal(err)
	}
	if data.Elapsed != "0.42" {
		t.Errorf("elapsed = %q, want 0.42", data.Elapsed)
	}

	_, err = ReadResponseFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: got %v, want FILE_NOT_FOUND", err)
	}
}

func TestResponsePath(t *testing.T) {
	resp := Response{Paths: []GraphData{{}, {}}}
	if _, err := resp.Path(1); err != nil {
		t.Errorf("Path(1): %v", err)
	}
	if _, err := resp.Path(2); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Path(2): got %v, want INVALID_INPUT", err)
	}
	if _, err := (Response{}).Path(0); !errors.Is(err, errors.ErrCodeEmptyRecipes) {
		t.Errorf("empty: got %v, want EMPTY_RECIPES", err)
	}
}

func TestGraphDataRoot(t *testing.T) {
	g := GraphData{Recipes: []Recipe{
		{Ingredients: []string{"Fire", "Water"}, Result: "Steam"},
		{Ingredients: []string{"Air", "Fire"}, Result: "Smoke"},
	}}
	root, err := g.Root()
	if err != nil {
		t.Fatal(err)
	}
	if root != "Steam" {
		t.Errorf("root = %q, want Steam", root)
	}

	if _, err := (GraphData{}).Root(); !errors.Is(err, errors.ErrCodeEmptyRecipes) {
		t.Errorf("empty: got %v, want EMPTY_RECIPES", err)
	}
}

func TestGraphDataValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    GraphData
		wantErr errors.Code
	}{
		{"Valid", GraphData{Recipes: []Recipe{{Ingredients: []string{"Air", "Fire"}, Result: "Smoke"}}}, ""},
		{"NoRecipes", GraphData{}, errors.ErrCodeEmptyRecipes},
		{"BlankResult", GraphData{Recipes: []Recipe{{Ingredients: []string{"Air"}, Result: " "}}}, errors.ErrCodeInvalidInput},
		{"BadIngredient", GraphData{Recipes: []Recipe{{Ingredients: []string{"Air\x00"}, Result: "Smoke"}}}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %s", err, tt.wantErr)
			}
		})
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
		multi   bool
	}{
		{"SinglePath", Request{Element: "Smoke", Algo: "bfs"}, false, false},
		{"MultiPath", Request{Element: "Smoke", Algo: "DFS", Max: 5}, false, true},
		{"EmptyElement", Request{Algo: "bfs"}, true, false},
		{"BadAlgo", Request{Element: "Smoke", Algo: "astar"}, true, false},
		{"NegativeMax", Request{Element: "Smoke", Algo: "bfs", Max: -1}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.req.MultiPath() != tt.multi {
				t.Errorf("MultiPath() = %v, want %v", tt.req.MultiPath(), tt.multi)
			}
		})
	}
}

func TestWriteGraphDataRoundTrip(t *testing.T) {
	g, err := ReadGraphData(strings.NewReader(smokeJSON))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteGraphData(g, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"result": "Smoke"`) {
		t.Errorf("output missing recipe result:\n%s", buf.String())
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteGraphDataFile(g, path); err != nil {
		t.Fatal(err)
	}
	resp, err := ReadResponseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Paths[0].Recipes) != 1 || len(resp.Paths[0].Nodes) != 3 {
		t.Errorf("round trip lost data: %+v", resp.Paths[0])
	}
}

func TestLayoutValidate(t *testing.T) {
	valid := Layout{
		Nodes: []PositionedNode{
			{ID: 0, Name: "Smoke", Parent: -1},
			{ID: 1, Name: "Air", Parent: 0},
			{ID: 2, Name: "Fire", Parent: 0},
		},
		Links: []Link{{From: 0, To: 1}, {From: 0, To: 2}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid layout: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(l *Layout)
	}{
		{"Empty", func(l *Layout) { l.Nodes = nil }},
		{"IDMismatch", func(l *Layout) { l.Nodes[1].ID = 5 }},
		{"ForwardParent", func(l *Layout) { l.Nodes[1].Parent = 2 }},
		{"OrphanChild", func(l *Layout) { l.Nodes[2].Parent = -1 }},
		{"LinkOutOfRange", func(l *Layout) { l.Links = append(l.Links, Link{From: 0, To: 9}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid
			l.Nodes = append([]PositionedNode(nil), valid.Nodes...)
			l.Links = append([]Link(nil), valid.Links...)
			tt.mutate(&l)
			if err := l.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	l := Layout{
		Element: "Smoke",
		Width:   1600,
		Height:  1000,
		Nodes: []PositionedNode{
			{ID: 0, Name: "Smoke", X: 800, Y: 150, Parent: -1},
			{ID: 1, Name: "Air", X: 700, Y: 850, Depth: 1, Parent: 0, Unknown: true},
		},
		Links:   []Link{{From: 0, To: 1}},
		Catalog: []string{"Smoke", "Air"},
	}

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatal(err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Element != "Smoke" || len(got.Nodes) != 2 || !got.Nodes[1].Unknown {
		t.Errorf("round trip mismatch: %+v", got)
	}
	from, to := got.Endpoints(got.Links[0])
	if from.Name != "Smoke" || to.Name != "Air" {
		t.Errorf("Endpoints = %s→%s", from.Name, to.Name)
	}
	if !got.Root().IsRoot() {
		t.Error("root should report IsRoot")
	}
}

func TestUnmarshalLayout_Invalid(t *testing.T) {
	if _, err := UnmarshalLayout([]byte(`{"nodes": []}`)); err == nil {
		t.Error("expected error for empty layout")
	}
	if _, err := UnmarshalLayout([]byte(`not json`)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("got %v, want INVALID_INPUT", err)
	}
}

func TestRecipeString(t *testing.T) {
	r := Recipe{Ingredients: []string{"Air", "Fire"}, Result: "Smoke"}
	if got := r.String(); got != "Air + Fire ➜ Smoke" {
		t.Errorf("String() = %q", got)
	}
}

func TestReadResponseFile_Examples(t *testing.T) {
	tests := []struct {
		file    string
		element string
		paths   int
	}{
		{"smoke.json", "Smoke", 1},
		{"mud-paths.json", "Mud", 2},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			resp, err := ReadResponseFile(filepath.Join("..", "..", "examples", tt.file))
			if err != nil {
				t.Fatal(err)
			}
			if resp.Title() != tt.element || len(resp.Paths) != tt.paths {
				t.Errorf("got %q with %d paths", resp.Title(), len(resp.Paths))
			}
			for i, p := range resp.Paths {
				if err := p.Validate(); err != nil {
					t.Errorf("path %d: %v", i+1, err)
				}
			}
		})
	}
}
