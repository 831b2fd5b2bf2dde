package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/crafttree/crafttree/pkg/buildinfo"
	"github.com/crafttree/crafttree/pkg/config"
	"github.com/crafttree/crafttree/pkg/observability"
	"github.com/crafttree/crafttree/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "crafttree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// EnableDebugHooks routes pipeline and output events to the logger at
// debug level.
func (c *CLI) EnableDebugHooks() {
	h := observability.LogHooks{Logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetOutputHooks(h)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "crafttree draws recipe derivation trees",
		Long: `crafttree turns recipe search results into derivation trees: every element
is expanded into the ingredients of the recipe that produced it, down to the
base elements, and the tree is laid out and rendered as SVG, PNG, PDF or JSON.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/crafttree/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.stepsCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	c.Logger.Debug("loaded config", "style", cfg.Render.Style, "formats", cfg.Render.Formats)
	return cfg, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// optionsFromConfig seeds pipeline options from the user configuration.
// Command flags are applied on top.
func optionsFromConfig(cfg config.Config) pipeline.Options {
	return pipeline.Options{
		Layout:  cfg.Layout,
		Style:   cfg.Render.Style,
		Formats: append([]string(nil), cfg.Render.Formats...),
		Legend:  cfg.Render.ShowLegend,
		Steps:   cfg.Render.ShowSteps,
		Colors:  cfg.Render.Colors,
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
