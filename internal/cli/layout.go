package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crafttree/crafttree/pkg/pipeline"
)

// layoutCommand creates the layout command for computing tree layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "layout [response.json|-]",
		Short: "Compute a derivation tree layout without rendering it",
		Long: `Compute a derivation tree layout without rendering it.

The layout command builds the derivation tree of a search result and writes
its positioned nodes, links, catalog and steps to <input>.layout.json (the
same document as 'render -f json'). Render it later with 'visualize'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.commandOptions(cmd, &flags)
			if err != nil {
				return err
			}
			opts.Formats = []string{pipeline.FormatJSON}
			return c.runLayout(cmd.Context(), args[0], opts, flags.output)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&flags.style, "style", "", "style recorded in the layout: classic (default), simple")
	flags.registerSelection(cmd, true)

	return cmd
}

// runLayout loads the response, computes the layout and writes it as JSON.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string) error {
	prog := newProgress(loggerFromContext(ctx))
	resp, err := readResponse(input)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", resp.Title()))
	spinner.Start()

	results, err := c.newRunner().ExecuteResponse(ctx, resp, opts)
	spinner.Stop()
	if err != nil {
		return err
	}

	multi := opts.All && len(resp.Paths) > 1
	base := basePath(output, input)
	var written []string
	for i, res := range results {
		path := artifactPath(base, pipeline.FormatJSON, 0)
		switch {
		case multi:
			path = artifactPath(base, pipeline.FormatJSON, i+1)
		case output != "":
			path = output
		}
		if err := writeFile(ctx, pipeline.FormatJSON, path, res.Artifacts[pipeline.FormatJSON]); err != nil {
			return err
		}
		printSuccess("Layout of %s complete", res.Element)
		printFile(path)
		printStats(res.Stats.TreeStats)
		written = append(written, path)
	}
	prog.done("Computed layout of "+resp.Title(), "paths", len(results))

	if len(written) > 0 {
		printNewline()
		printNextStep("Render", appName+" visualize "+written[0])
	}
	return nil
}
