// Package pkg holds the crafttree libraries.
//
// # Overview
//
// crafttree turns the replies of a recipe search service into derivation
// trees: each element is expanded into the ingredients of the recipe that
// produced it, down to base elements, and the tree is laid out and drawn.
//
//  1. [graph] - Search payload and layout serialization types
//  2. [tree] - Derivation tree reconstruction, metrics and text output
//  3. [layout] - Tidy-tree coordinates with recipe-aware spacing
//  4. [render] - SVG, PNG, PDF and JSON sinks, styles and Graphviz node-link output
//  5. [pipeline] - Orchestration (build → layout → render)
//  6. [config], [errors], [observability] - Ambient support
//
// # Architecture
//
//	Search service JSON
//	         ↓
//	    [graph] package (decode single or multi-path replies)
//	         ↓
//	    [tree] package (first-match recipe expansion, cycle guard)
//	         ↓
//	    [layout] package (tidy tree, separation, canvas)
//	         ↓
//	    [render/sink] package (SVG/PDF/PNG/JSON)
//
// # Quick Start
//
//	resp, _ := graph.ReadResponseFile("smoke.json")
//	runner := pipeline.NewRunner(logger)
//	results, _ := runner.ExecuteResponse(ctx, resp, pipeline.Options{
//	    Formats: []string{"svg"},
//	    Legend:  true,
//	})
//	os.WriteFile("smoke.svg", results[0].Artifacts["svg"], 0o644)
package pkg
