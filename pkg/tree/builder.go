package tree

import (
	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/graph"
)

// Node is an element in a derivation tree. A node with no children is a leaf.
type Node struct {
	Name     string
	Children []*Node

	// Cyclic marks a leaf whose name was already being expanded higher up
	// the same branch.
	Cyclic bool
	// Unknown marks a leaf produced by no recipe and absent from the known
	// element set. Only set when BuildWith is given WithKnownElements.
	Unknown bool
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// BuildOption configures BuildWith.
type BuildOption func(*builder)

// WithKnownElements supplies the set of element names the search service
// reported (typically GraphData.Nodes). Leaves outside the set are flagged
// Unknown.
func WithKnownElements(names []string) BuildOption {
	return func(b *builder) {
		b.known = make(map[string]struct{}, len(names))
		for _, name := range names {
			b.known[name] = struct{}{}
		}
	}
}

// Build reconstructs the derivation tree for target.
//
// The first recipe in list order whose result is target supplies the node's
// children, one per ingredient in order. Targets with no recipe are leaves;
// with no recipes at all, target is returned as a single leaf. Cycles end in
// a leaf flagged Cyclic.
//
// An element used by several recipes is expanded again under each use, so
// the tree can grow exponentially with the recipe count: a chain of k
// recipes that each combine the previous result with itself has 2^k leaves.
// Callers rendering untrusted input should check Stats(root).Nodes.
func Build(target string, recipes []graph.Recipe) *Node {
	return BuildWith(target, recipes)
}

// BuildWith is Build with options.
func BuildWith(target string, recipes []graph.Recipe, opts ...BuildOption) *Node {
	b := &builder{
		first:     indexFirst(recipes),
		recipes:   recipes,
		expanding: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b.build(target)
}

// BuildRoot builds the tree rooted at the result of the first recipe.
// An empty recipe list has no root and is rejected.
func BuildRoot(recipes []graph.Recipe, opts ...BuildOption) (*Node, error) {
	if len(recipes) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyRecipes, "cannot build tree: no recipes")
	}
	return BuildWith(recipes[0].Result, recipes, opts...), nil
}

// FromGraphData builds the tree for one derivation path, tagging unknown
// leaves against the path's node list when it has one.
func FromGraphData(data graph.GraphData) (*Node, error) {
	var opts []BuildOption
	if len(data.Nodes) > 0 {
		opts = append(opts, WithKnownElements(data.NodeNames()))
	}
	return BuildRoot(data.Recipes, opts...)
}

type builder struct {
	recipes   []graph.Recipe
	first     map[string]int
	known     map[string]struct{}
	expanding map[string]bool
}

// indexFirst maps each result to the position of the first recipe producing it.
func indexFirst(recipes []graph.Recipe) map[string]int {
	idx := make(map[string]int, len(recipes))
	for i, r := range recipes {
		if _, ok := idx[r.Result]; !ok {
			idx[r.Result] = i
		}
	}
	return idx
}

func (b *builder) build(target string) *Node {
	node := &Node{Name: target}
	if b.expanding[target] {
		node.Cyclic = true
		return node
	}

	i, ok := b.first[target]
	if !ok {
		if b.known != nil {
			_, listed := b.known[target]
			node.Unknown = !listed
		}
		return node
	}

	b.expanding[target] = true
	ingredients := b.recipes[i].Ingredients
	node.Children = make([]*Node, 0, len(ingredients))
	for _, ing := range ingredients {
		node.Children = append(node.Children, b.build(ing))
	}
	delete(b.expanding, target)
	return node
}
