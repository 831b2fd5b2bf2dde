// Package graph provides serialization types for recipe search results and
// rendered tree layouts.
//
// This package defines the canonical wire format for crafttree's input and
// output: the GraphData payloads produced by the recipe search service, the
// success/failure envelopes wrapping them, and the Layout document that
// carries computed node positions to renderers and JSON consumers.
//
// # Architecture
//
// The package sits at the serialization boundary:
//
//   - [GraphData], [Recipe], [Node]: input payload (this package)
//   - [Response]: decoded search-service envelope (single or multi path)
//   - pkg/tree.Node: in-memory derivation tree
//   - pkg/layout.Result: in-memory positioned tree
//   - [Layout]: serialized positioned tree (this package)
//
// # Constants
//
// This package is the single source of truth for visualization constants:
//
//	graph.VizTypeTree      // "tree"
//	graph.VizTypeNodelink  // "nodelink"
//	graph.StyleClassic     // "classic"
//	graph.StyleSimple      // "simple"
//
// # Payload Formats
//
// A bare GraphData payload:
//
//	{
//	  "nodes": [{"id": 0, "name": "Smoke"}, {"id": 1, "name": "Air"}],
//	  "recipes": [{"ingredients": ["Air", "Fire"], "result": "Smoke", "step": 1}],
//	  "elapsed": "1.25"
//	}
//
// Search-service envelopes are recognized by [ReadResponse]:
//
//	{"error": false, "data": {...GraphData, "visitedNodes": 12}}
//	{"data": {"algo": "bfs", "element": "Smoke", "paths": [...], "visitedNodes": 40}}
//	{"element": "Smoke", "algo": "bfs", "paths": [...]}
//	{"error": true, "type": "not_found", "message": "element not found"}
//
// A failure envelope is returned as an error with code SEARCH_FAILED.
//
// Common operations:
//
//	resp, _ := graph.ReadResponseFile("smoke.json")   // File → Response
//	data, _ := resp.Path(0)                          // first derivation path
//	root, _ := data.Root()                           // recipes[0].Result
//
// # Concurrency
//
// All functions are safe for concurrent use; decoded values are plain data.
package graph
