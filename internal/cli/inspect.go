package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/pipeline"
	"github.com/crafttree/crafttree/pkg/render/sink"
	"github.com/crafttree/crafttree/pkg/render/styles"
	"github.com/crafttree/crafttree/pkg/tree"
)

// selectedPaths returns the 0-based indexes of the paths a command acts on.
func selectedPaths(resp graph.Response, opts pipeline.Options) ([]int, error) {
	if !opts.All {
		if _, err := resp.Path(opts.Path); err != nil {
			return nil, err
		}
		return []int{opts.Path}, nil
	}
	if len(resp.Paths) == 0 {
		_, err := resp.Path(0)
		return nil, err
	}
	indexes := make([]int, len(resp.Paths))
	for i := range indexes {
		indexes[i] = i
	}
	return indexes, nil
}

// inspectCommand builds a read-only command that prints something about
// each selected path of a search result.
func (c *CLI) inspectCommand(use, short string, run func(w io.Writer, data graph.GraphData, opts pipeline.Options) error) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   use + " [response.json|-]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.commandOptions(cmd, &flags)
			if err != nil {
				return err
			}
			resp, err := readResponse(args[0])
			if err != nil {
				return err
			}
			indexes, err := selectedPaths(resp, opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for n, i := range indexes {
				if len(indexes) > 1 {
					if n > 0 {
						fmt.Fprintln(w)
					}
					fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Path %d", i+1)))
				}
				if err := run(w, resp.Paths[i], opts); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.element, "element", "", "root element (default: result of the first recipe)")
	cmd.Flags().IntVarP(&flags.path, "path", "p", 0, "path number for multi-path results (1-based)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "show every path of a multi-path result")

	return cmd
}

// treeCommand prints the derivation tree as indented text.
func (c *CLI) treeCommand() *cobra.Command {
	return c.inspectCommand("tree", "Print the derivation tree as text", func(w io.Writer, data graph.GraphData, opts pipeline.Options) error {
		root, err := pipeline.BuildTree(data, opts)
		if err != nil {
			return err
		}
		if err := tree.Fprint(w, root); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, formatStats(tree.Stats(root)))
		return err
	})
}

// stepsCommand prints the numbered recipe steps.
func (c *CLI) stepsCommand() *cobra.Command {
	return c.inspectCommand("steps", "List the recipe steps of a derivation", func(w io.Writer, data graph.GraphData, _ pipeline.Options) error {
		if err := data.Validate(); err != nil {
			return err
		}
		for i, r := range data.Recipes {
			if _, err := fmt.Fprintln(w, sink.FormatStep(i, r)); err != nil {
				return err
			}
		}
		return nil
	})
}

// catalogCommand lists every element of a derivation with its colour.
func (c *CLI) catalogCommand() *cobra.Command {
	return c.inspectCommand("catalog", "List the elements of a derivation with their colours", func(w io.Writer, data graph.GraphData, opts pipeline.Options) error {
		if err := data.Validate(); err != nil {
			return err
		}
		for _, name := range tree.Collect(data.Recipes) {
			color := opts.Colors[name]
			if color == "" {
				color = styles.ColorForName(name)
			}
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(iconSwatch)
			if _, err := fmt.Fprintf(w, "%s %-20s %s\n", swatch, name, StyleDim.Render(color)); err != nil {
				return err
			}
		}
		return nil
	})
}
