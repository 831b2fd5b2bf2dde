// Package pipeline provides the core visualization pipeline for crafttree.
//
// This package implements the complete build → layout → render pipeline that
// the CLI commands share. Centralizing it keeps defaults, validation and
// logging identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Reconstruct the derivation tree from a path's recipes
//  2. Layout: Compute node positions (tidy tree) or defer to Graphviz (nodelink)
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Formats: []string{"svg", "json"},
//	    Legend:  true,
//	}
//	result, err := runner.Execute(ctx, data, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Multi-path responses are handled by [Runner.ExecuteResponse], which runs
// the selected path, or every path when Options.All is set.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/layout"
	"github.com/crafttree/crafttree/pkg/tree"
)

// =============================================================================
// Default Values - Single Source of Truth for all commands
// =============================================================================

// DefaultVizType is the default visualization type.
const DefaultVizType = graph.VizTypeTree

// DefaultStyle is the default visual style.
const DefaultStyle = graph.StyleClassic

// DefaultScale is the default PNG scale factor.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	graph.StyleClassic: true,
	graph.StyleSimple:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	graph.VizTypeTree:     true,
	graph.VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
type Options struct {
	// Build options
	Element string `json:"element,omitempty"` // Target element; defaults to the first recipe's result
	Algo    string `json:"algo,omitempty"`    // Search algorithm, shown in the header
	Path    int    `json:"path,omitempty"`    // 0-based path index for multi-path responses
	All     bool   `json:"all,omitempty"`     // Render every path of a response

	// Layout options
	VizType string        `json:"viz_type,omitempty"`
	Width   float64       `json:"width,omitempty"`  // 0 derives the canvas from the tree
	Height  float64       `json:"height,omitempty"` // 0 derives the canvas from the tree
	Layout  layout.Config `json:"layout"`

	// Render options
	Formats   []string          `json:"formats,omitempty"`
	Style     string            `json:"style,omitempty"`
	Legend    bool              `json:"legend,omitempty"`
	Steps     bool              `json:"steps,omitempty"`
	Header    bool              `json:"header,omitempty"`
	UniqueIDs bool              `json:"unique_ids,omitempty"`
	Detailed  bool              `json:"detailed,omitempty"` // Nodelink labels carry depth and markers
	Scale     float64           `json:"scale,omitempty"`    // PNG scale factor
	Colors    map[string]string `json:"colors,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run for one derivation path.
type Result struct {
	// Element is the root element name.
	Element string

	// Tree is the reconstructed derivation tree.
	Tree *tree.Node

	// Catalog lists every element of the path in discovery order.
	Catalog []string

	// Geometry is the computed tidy-tree layout.
	Geometry *layout.Result

	// Layout is the serializable form of Geometry plus header, catalog and steps.
	Layout graph.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	tree.TreeStats
	BuildTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: classic, simple)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: tree, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero-valued fields. It is idempotent.
func (o *Options) SetDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.Layout.SetDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks every option. Call SetDefaults first.
func (o *Options) Validate() error {
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Algo != "" {
		if err := errors.ValidateAlgo(o.Algo); err != nil {
			return err
		}
	}
	if o.Element != "" {
		if err := errors.ValidateElementName(o.Element); err != nil {
			return err
		}
	}
	if o.Path < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "path index must be >= 0, got %d", o.Path)
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas size must be >= 0")
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be > 0, got %g", o.Scale)
	}
	return o.Layout.Validate()
}

// ValidateAndSetDefaults applies defaults and validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// IsTree returns true if this is a tidy-tree visualization.
func (o *Options) IsTree() bool {
	return o.VizType == "" || o.VizType == graph.VizTypeTree
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == graph.VizTypeNodelink
}
