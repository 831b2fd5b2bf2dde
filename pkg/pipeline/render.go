package pipeline

import (
	"fmt"

	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/render/nodelink"
	"github.com/crafttree/crafttree/pkg/render/sink"
	"github.com/crafttree/crafttree/pkg/render/styles"
)

// Render generates output artifacts in the requested formats.
func Render(l graph.Layout, opts Options) (map[string][]byte, error) {
	if opts.IsNodelink() {
		return renderNodelink(l, opts)
	}
	return renderTree(l, opts)
}

// RenderFromLayoutData renders output from serialized layout data, such as a
// JSON artifact written by an earlier run. The style recorded in the layout
// is used unless opts.Style overrides it.
func RenderFromLayoutData(data []byte, opts Options) (map[string][]byte, error) {
	l, err := graph.UnmarshalLayout(data)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	opts = applyLayoutMetadata(opts, l)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return Render(l, opts)
}

// applyLayoutMetadata applies layout metadata to options if not already set.
func applyLayoutMetadata(opts Options, l graph.Layout) Options {
	if opts.Style == "" && l.Style != "" {
		opts.Style = l.Style
	}
	return opts
}

// renderNodelink hands the tree structure to Graphviz.
func renderNodelink(l graph.Layout, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Detailed})
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(dot)
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONStyle(opts.Style))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderTree generates tidy-tree outputs.
func renderTree(l graph.Layout, opts Options) (map[string][]byte, error) {
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONStyle(opts.Style))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported tree format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions translates pipeline options into sink options.
func buildSVGOptions(opts Options) ([]sink.SVGOption, error) {
	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}

	if opts.Legend {
		svgOpts = append(svgOpts, sink.WithLegend())
	}
	if opts.Steps {
		svgOpts = append(svgOpts, sink.WithSteps())
	}
	if opts.Header {
		svgOpts = append(svgOpts, sink.WithHeader())
	}
	if opts.UniqueIDs {
		svgOpts = append(svgOpts, sink.WithUniqueIDs())
	}
	if len(opts.Colors) > 0 {
		svgOpts = append(svgOpts, sink.WithColors(opts.Colors))
	}
	return svgOpts, nil
}
