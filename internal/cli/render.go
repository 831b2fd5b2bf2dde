package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crafttree/crafttree/pkg/pipeline"
	"github.com/crafttree/crafttree/pkg/render/sink"
)

// renderCommand creates the render command: search result in, artifacts out.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [response.json|-]",
		Short: "Render a recipe search result as a derivation tree",
		Long: `Render a recipe search result as a derivation tree.

The input is the JSON reply of the recipe search service, either a single
derivation ({"nodes": [...], "recipes": [...]}) or a multi-path envelope.
Use "-" to read from stdin. The first recipe's result is the root unless
--element names another element.

Multi-path results render the first path by default; choose another with
--path N, render every path with --all, or pick one interactively with
the 'pick' command.`,
		Example: `  crafttree render smoke.json
  crafttree render -f svg,png --legend --steps smoke.json
  crafttree render --all -o out/brick brick.json
  curl -s "$API/search?element=Smoke&algo=bfs" | crafttree render -o smoke.svg -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.commandOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, flags.output)
		},
	}

	flags.registerSelection(cmd, true)
	flags.registerOutput(cmd)

	return cmd
}

// runRender loads the response, runs the pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string) error {
	prog := newProgress(loggerFromContext(ctx))
	resp, err := readResponse(input)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", resp.Title()))
	spinner.Start()

	results, err := c.newRunner().ExecuteResponse(ctx, resp, opts)
	spinner.Stop()
	if err != nil {
		return err
	}

	multi := opts.All && len(resp.Paths) > 1
	for i, res := range results {
		pathNum := 0
		if multi {
			pathNum = i + 1
		}
		paths, err := writeArtifacts(ctx, artifactWriteParams{
			artifacts: res.Artifacts,
			formats:   opts.Formats,
			input:     input,
			output:    output,
			pathNum:   pathNum,
		})
		if err != nil {
			return err
		}
		printRenderSummary(res, pathNum, paths)
	}
	prog.done("Rendered "+resp.Title(), "paths", len(results))

	if !opts.All && len(resp.Paths) > 1 {
		printNewline()
		printInfo("Response has %d paths, rendered path %d", len(resp.Paths), opts.Path+1)
		printNextStep("Render all", appName+" render --all "+input)
		printNextStep("Choose one", appName+" pick "+input)
	}
	return nil
}

func printRenderSummary(res *pipeline.Result, pathNum int, paths []string) {
	if pathNum > 0 {
		printSuccess("Rendered %s (path %d)", res.Element, pathNum)
	} else {
		printSuccess("Rendered %s", res.Element)
	}
	for _, p := range paths {
		printFile(p)
	}
	printStats(res.Stats.TreeStats)
	if info := sink.HeaderInfo(res.Layout); info != "" {
		printDetail("%s", info)
	}
	if res.Stats.Cyclic > 0 {
		printWarning("%d branch(es) cut at a recipe cycle", res.Stats.Cyclic)
	}
}
