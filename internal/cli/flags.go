package cli

import (
	"github.com/spf13/cobra"

	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/pipeline"
)

// renderFlags holds the flags shared by commands that produce artifacts.
// Flags that mirror a config value only override it when set explicitly.
type renderFlags struct {
	output    string
	formats   string
	style     string
	vizType   string
	element   string
	path      int // 1-based; 0 selects the first path
	all       bool
	legend    bool
	steps     bool
	header    bool
	uniqueIDs bool
	detailed  bool
	width     float64
	height    float64
	scale     float64
}

// registerOutput adds the flags controlling what is drawn and how.
func (f *renderFlags) registerOutput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: classic (default), simple")
	cmd.Flags().StringVarP(&f.vizType, "type", "t", "", "visualization type: tree (default), nodelink")
	cmd.Flags().BoolVar(&f.legend, "legend", false, "append the element legend")
	cmd.Flags().BoolVar(&f.steps, "steps", false, "append the numbered recipe steps")
	cmd.Flags().BoolVar(&f.header, "header", false, "draw element name and search statistics")
	cmd.Flags().BoolVar(&f.uniqueIDs, "unique-ids", false, "prefix SVG ids with a random token for inlining")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "show depth and markers in node labels (nodelink)")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
}

// registerSelection adds the flags choosing the derivation path and canvas.
func (f *renderFlags) registerSelection(cmd *cobra.Command, withPath bool) {
	cmd.Flags().StringVar(&f.element, "element", "", "root element (default: result of the first recipe)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "canvas width (default: derived from the tree)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "canvas height (default: derived from the tree)")
	if withPath {
		cmd.Flags().IntVarP(&f.path, "path", "p", 0, "path number to render for multi-path results (1-based)")
		cmd.Flags().BoolVar(&f.all, "all", false, "render every path of a multi-path result")
	}
}

// apply copies the flags onto opts.
func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if flags.Changed("style") {
		opts.Style = f.style
	}
	if flags.Changed("legend") {
		opts.Legend = f.legend
	}
	if flags.Changed("steps") {
		opts.Steps = f.steps
	}
	if f.vizType != "" {
		opts.VizType = f.vizType
	}
	if f.path < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--path must be >= 1, got %d", f.path)
	}
	if f.path > 0 {
		opts.Path = f.path - 1
	}
	if f.all && f.path > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--all and --path are mutually exclusive")
	}

	opts.Element = f.element
	opts.All = f.all
	opts.Header = f.header
	opts.UniqueIDs = f.uniqueIDs
	opts.Detailed = f.detailed
	opts.Width = f.width
	opts.Height = f.height
	opts.Scale = f.scale
	return nil
}

// commandOptions builds pipeline options from the config file with the
// command's flags applied on top.
func (c *CLI) commandOptions(cmd *cobra.Command, f *renderFlags) (pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := optionsFromConfig(cfg)
	if err := f.apply(cmd, &opts); err != nil {
		return opts, err
	}
	opts.Logger = c.Logger
	opts.SetDefaults()
	return opts, nil
}
