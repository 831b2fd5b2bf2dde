package tree

import "github.com/crafttree/crafttree/pkg/graph"

// Collect returns every element name in the recipes, deduplicated, in the
// order first seen: each recipe contributes its result, then its ingredients.
// The result is never nil.
func Collect(recipes []graph.Recipe) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(recipes)*3)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, r := range recipes {
		add(r.Result)
		for _, ing := range r.Ingredients {
			add(ing)
		}
	}
	return names
}
