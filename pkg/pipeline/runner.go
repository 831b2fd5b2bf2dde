package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/observability"
	"github.com/crafttree/crafttree/pkg/tree"
)

// Runner encapsulates pipeline execution with logging and hooks.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger

	// LargeTreeNodes is the node count above which a built tree is logged
	// as a warning. Zero disables the warning.
	LargeTreeNodes int
}

// DefaultLargeTreeNodes is the LargeTreeNodes value set by NewRunner.
const DefaultLargeTreeNodes = 10000

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, LargeTreeNodes: DefaultLargeTreeNodes}
}

// Execute runs the complete build → layout → render pipeline for one path.
// The context is checked between stages.
func (r *Runner) Execute(ctx context.Context, data graph.GraphData, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if len(data.Recipes) > 0 {
		if err := data.Validate(); err != nil {
			return nil, err
		}
	}

	result := &Result{}

	// Stage 1: Build
	root, err := r.build(ctx, data, opts, &result.Stats)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Tree = root
	result.Element = root.Name
	result.Catalog = tree.Collect(data.Recipes)

	// Stage 2: Layout
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.VizType, result.Stats.Nodes)
	layoutStart := time.Now()
	result.Geometry = ComputeLayout(root, opts)
	result.Layout = ExportLayout(result.Geometry, data, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, opts.VizType, result.Stats.LayoutTime, nil)

	r.Logger.Info("computed layout",
		"width", result.Layout.Width,
		"height", result.Layout.Height,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderStart := time.Now()
	artifacts, err := r.render(ctx, result.Layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ExecuteResponse runs the pipeline for a decoded search response: the path
// at opts.Path, or every path when opts.All is set. Header fields missing
// from a path are taken from the response.
func (r *Runner) ExecuteResponse(ctx context.Context, resp graph.Response, opts Options) ([]*Result, error) {
	if len(resp.Paths) == 0 {
		_, err := resp.Path(0)
		return nil, err
	}
	if opts.Algo == "" {
		opts.Algo = resp.Algo
	}

	indexes := []int{opts.Path}
	if opts.All {
		indexes = make([]int, len(resp.Paths))
		for i := range indexes {
			indexes[i] = i
		}
	}

	results := make([]*Result, 0, len(indexes))
	for _, i := range indexes {
		data, err := resp.Path(i)
		if err != nil {
			return nil, err
		}
		if data.VisitedNodes == 0 {
			data.VisitedNodes = resp.VisitedNodes
		}
		if len(resp.Paths) > 1 {
			r.Logger.Info("rendering path", "path", i+1, "of", len(resp.Paths))
		}
		res, err := r.Execute(ctx, data, opts)
		if err != nil {
			if len(resp.Paths) > 1 {
				return nil, fmt.Errorf("path %d: %w", i+1, err)
			}
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RenderLayout renders a previously exported layout.
func (r *Runner) RenderLayout(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	opts = applyLayoutMetadata(opts, l)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return r.render(ctx, l, opts)
}

func (r *Runner) build(ctx context.Context, data graph.GraphData, opts Options, stats *Stats) (*tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, opts.Element, len(data.Recipes))
	start := time.Now()

	root, err := BuildTree(data, opts)
	stats.BuildTime = time.Since(start)
	if err != nil {
		hooks.OnBuildComplete(ctx, opts.Element, 0, stats.BuildTime, err)
		return nil, err
	}
	stats.TreeStats = tree.Stats(root)
	hooks.OnBuildComplete(ctx, root.Name, stats.Nodes, stats.BuildTime, nil)

	r.Logger.Info("built tree",
		"element", root.Name,
		"nodes", stats.Nodes,
		"leaves", stats.Leaves,
		"depth", stats.Depth,
		"duration", stats.BuildTime)
	if stats.Cyclic > 0 {
		r.Logger.Warn("recipe cycle truncated", "element", root.Name, "leaves", stats.Cyclic)
	}
	if r.LargeTreeNodes > 0 && stats.Nodes > r.LargeTreeNodes {
		r.Logger.Warn("large derivation tree",
			"element", root.Name,
			"nodes", stats.Nodes,
			"recipes", len(data.Recipes),
			"threshold", r.LargeTreeNodes)
	}
	return root, nil
}

func (r *Runner) render(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts, err := Render(l, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}
