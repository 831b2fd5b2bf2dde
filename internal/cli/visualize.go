package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a previously computed layout",
		Long: `Render a previously computed layout.

The visualize command takes a layout.json file (produced by 'layout' or
'render -f json') and renders it to SVG, PNG, PDF or JSON. The layout holds
every position, so this step only draws. The style recorded in the layout
is used unless --style is given.

Use 'render' as a shortcut to go directly from a search result to output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.commandOptions(cmd, &flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("style") {
				opts.Style = ""
			}
			return c.runVisualize(cmd.Context(), args[0], opts, flags.output)
		},
	}

	flags.registerOutput(cmd)

	return cmd
}

// runVisualize loads the layout and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string) error {
	if err := errors.ValidatePath(input); err != nil {
		return err
	}
	prog := newProgress(loggerFromContext(ctx))
	l, err := graph.ReadLayoutFile(input)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", l.Element))
	spinner.Start()

	artifacts, err := c.newRunner().RenderLayout(ctx, l, opts)
	if err != nil {
		spinner.Stop()
		return err
	}

	paths, err := writeArtifacts(ctx, artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
	})
	if err != nil {
		spinner.Stop()
		return err
	}

	name := l.Element
	if name == "" {
		name = input
	}
	spinner.StopWithSuccess("Rendered " + name)
	prog.done("Wrote artifacts", "element", name, "files", len(paths))

	for _, p := range paths {
		printFile(p)
	}
	printDetail("%d nodes · %d leaves · depth %d", len(l.Nodes), l.Leaves, l.Depth)
	return nil
}
