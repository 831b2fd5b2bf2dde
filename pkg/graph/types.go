package graph

import (
	"strings"

	"github.com/crafttree/crafttree/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visualization types.
const (
	VizTypeTree     = "tree"
	VizTypeNodelink = "nodelink"
)

// Visual styles for rendering.
const (
	StyleClassic = "classic"
	StyleSimple  = "simple"
)

// Search algorithms understood by the recipe search service.
const (
	AlgoBFS = "bfs"
	AlgoDFS = "dfs"
)

// =============================================================================
// GraphData - Search Result Payload
// =============================================================================

// Node is an element entry in a search result.
type Node struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Recipe maps an ordered multiset of ingredient names to one result name.
// Several recipes may share a result; ingredients need not be produced by
// any recipe (base elements).
type Recipe struct {
	Ingredients []string `json:"ingredients"`
	Result      string   `json:"result"`
	Step        int      `json:"step"`
}

// String formats the recipe as "Air + Fire ➜ Smoke".
func (r Recipe) String() string {
	return strings.Join(r.Ingredients, " + ") + " ➜ " + r.Result
}

// GraphData is one derivation path returned by the search service.
//
// Recipe and node names are not cross-checked: a recipe may reference an
// element missing from Nodes and the tree builder must cope with that.
type GraphData struct {
	Nodes        []Node   `json:"nodes"`
	Recipes      []Recipe `json:"recipes"`
	Elapsed      string   `json:"elapsed,omitempty"`
	VisitedNodes int      `json:"visitedNodes,omitempty"`
}

// Root returns the element the derivation is rooted at: the result of the
// first recipe. An empty recipe list is a precondition violation.
func (g GraphData) Root() (string, error) {
	if len(g.Recipes) == 0 {
		return "", errors.New(errors.ErrCodeEmptyRecipes, "graph data has no recipes")
	}
	return g.Recipes[0].Result, nil
}

// NodeNames returns the names listed in Nodes, in order.
func (g GraphData) NodeNames() []string {
	names := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		names = append(names, n.Name)
	}
	return names
}

// Validate checks that the payload can be turned into a tree: at least one
// recipe, and every result and ingredient is a usable element name.
func (g GraphData) Validate() error {
	if len(g.Recipes) == 0 {
		return errors.New(errors.ErrCodeEmptyRecipes, "graph data has no recipes")
	}
	for i, r := range g.Recipes {
		if err := errors.ValidateElementName(r.Result); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "recipe %d: invalid result", i)
		}
		for _, ing := range r.Ingredients {
			if err := errors.ValidateElementName(ing); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "recipe %d: invalid ingredient", i)
			}
		}
	}
	return nil
}

// =============================================================================
// Request / Response - Search Service Contract
// =============================================================================

// Request describes a query to the recipe search service. crafttree does not
// send requests itself; the type documents and validates the contract for
// callers that do.
type Request struct {
	Element string `json:"element"`
	Algo    string `json:"algo"`
	Max     int    `json:"max,omitempty"` // result-count cap; 0 means single-path mode
}

// Validate checks the element name, algorithm selector and cap.
func (r Request) Validate() error {
	if err := errors.ValidateElementName(r.Element); err != nil {
		return err
	}
	if err := errors.ValidateAlgo(r.Algo); err != nil {
		return err
	}
	if r.Max < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max must be >= 0, got %d", r.Max)
	}
	return nil
}

// MultiPath reports whether the request asks for several derivation paths.
func (r Request) MultiPath() bool { return r.Max > 0 }

// Response is a decoded, successful search-service reply. Single-path replies
// are normalized to a one-element Paths slice.
type Response struct {
	Algo         string      `json:"algo,omitempty"`
	Element      string      `json:"element,omitempty"`
	Paths        []GraphData `json:"paths"`
	VisitedNodes int         `json:"visitedNodes,omitempty"`
}

// Path returns the i-th derivation path (0-based).
func (r Response) Path(i int) (GraphData, error) {
	if len(r.Paths) == 0 {
		return GraphData{}, errors.New(errors.ErrCodeEmptyRecipes, "response contains no paths")
	}
	if i < 0 || i >= len(r.Paths) {
		return GraphData{}, errors.New(errors.ErrCodeInvalidInput, "path %d out of range (have %d)", i+1, len(r.Paths))
	}
	return r.Paths[i], nil
}

// Title returns the element name for display, falling back to the root of
// the first path when the envelope did not carry one.
func (r Response) Title() string {
	if r.Element != "" {
		return r.Element
	}
	for _, p := range r.Paths {
		if root, err := p.Root(); err == nil {
			return root
		}
	}
	return ""
}
