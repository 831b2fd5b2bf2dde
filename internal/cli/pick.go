package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/pipeline"
)

// pickCommand creates the pick command: choose one path of a multi-path
// result in a table, then render it.
func (c *CLI) pickCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "pick [response.json]",
		Short: "Choose a derivation path interactively and render it",
		Long: `Choose a derivation path interactively and render it.

Lists every path of a multi-path search result with its size, depth and
cycle count. Selecting a path renders it exactly like 'render --path N'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.commandOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runPick(cmd.Context(), args[0], opts, flags.output)
		},
	}

	cmd.Flags().StringVar(&flags.element, "element", "", "root element (default: result of the first recipe)")
	cmd.Flags().Float64Var(&flags.width, "width", 0, "canvas width (default: derived from the tree)")
	cmd.Flags().Float64Var(&flags.height, "height", 0, "canvas height (default: derived from the tree)")
	flags.registerOutput(cmd)

	return cmd
}

func (c *CLI) runPick(ctx context.Context, input string, opts pipeline.Options, output string) error {
	if input == stdinName {
		return errors.New(errors.ErrCodeInvalidInput, "pick needs a file: stdin is used by the terminal UI")
	}
	resp, err := readResponse(input)
	if err != nil {
		return err
	}
	if len(resp.Paths) == 0 {
		_, err := resp.Path(0)
		return err
	}

	selected := 0
	if len(resp.Paths) > 1 {
		p := tea.NewProgram(NewPathListModel(resp), tea.WithContext(ctx))
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("path selection: %w", err)
		}
		m := final.(PathListModel)
		if m.Selected < 0 {
			printInfo("No path selected")
			return nil
		}
		selected = m.Selected
	}

	opts.Path = selected
	opts.All = false
	return c.runRender(ctx, input, opts, output)
}
