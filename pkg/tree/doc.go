// Package tree reconstructs a derivation tree from a flat recipe list.
//
// # Overview
//
// The recipe search service returns a derivation path as an ordered list of
// recipes ("Air + Fire ➜ Smoke"). This package turns that flat relation back
// into the hierarchy it describes: the searched element at the root, each
// node's children being the ingredients of the recipe that produces it.
//
//	recipes := []graph.Recipe{{Ingredients: []string{"Air", "Fire"}, Result: "Smoke"}}
//	root := tree.Build("Smoke", recipes)
//	// Smoke
//	// ├── Air
//	// └── Fire
//
// # Resolution Rules
//
// When several recipes produce the same element, only the first in list order
// is used. An element that no recipe produces is a leaf: a base element, or
// an element the search never expanded. Pass [WithKnownElements] to
// [BuildWith] to tell the two apart; leaves missing from the known set are
// flagged [Node.Unknown].
//
// Recipe data may be cyclic. The builder tracks the names on the current
// expansion path and, when an element reappears on its own path, ends the
// branch at a leaf flagged [Node.Cyclic]. A self-recipe X ➜ X yields X with a
// single cyclic child X.
//
// # Catalog and Metrics
//
// [Collect] produces the legend: every element name in first-seen order.
// [MaxDepth] and [LeafCount] are the metrics the layout engine sizes the
// canvas from; [Metrics] memoizes both for one layout pass and [Stats]
// summarizes a tree for logging.
//
// # Concurrency
//
// All functions are pure. Trees are immutable once built and may be shared
// between goroutines; a [Metrics] value is not safe for concurrent use.
package tree
