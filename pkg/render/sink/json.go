package sink

import (
	"github.com/crafttree/crafttree/pkg/graph"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style   string
	noSteps bool
}

// WithJSONStyle records the style name (e.g., "classic", "simple") in the JSON
// output so the layout can be re-rendered identically.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithoutJSONSteps omits the recipe steps from the output.
func WithoutJSONSteps() JSONOption { return func(r *jsonRenderer) { r.noSteps = true } }

// RenderJSON exports the layout as a pretty-printed JSON document: header,
// node positions, links, catalog and steps. The output can be read back with
// graph.UnmarshalLayout and rendered again by any sink.
//
// RenderJSON does not modify l and is safe to call concurrently.
func RenderJSON(l graph.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style != "" {
		l.Style = r.style
	}
	if r.noSteps {
		l.Steps = nil
	}
	if l.Catalog == nil {
		l.Catalog = []string{}
	}
	if l.Links == nil {
		l.Links = []graph.Link{}
	}
	return graph.MarshalLayout(l)
}
