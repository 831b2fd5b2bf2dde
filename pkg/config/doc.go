// Package config loads user preferences for crafttree.
//
// The file lives at $XDG_CONFIG_HOME/crafttree/config.toml (falling back to
// ~/.config/crafttree/config.toml) and has two tables:
//
//	[layout]
//	base_multiplier = 6.0
//	sibling_group_factor = 1.5
//	depth_exponent = 0.3
//
//	[render]
//	style = "classic"
//	formats = ["svg", "json"]
//	show_legend = true
//
//	[render.colors]
//	Fire = "#d9534f"
//
// Omitted keys keep their [Default] value; unknown keys are an error.
//
// # Precedence
//
// [Load] resolves settings in this order, later wins:
//
//  1. [Default]
//  2. The TOML file
//  3. A .env file in the working directory (loaded into the environment)
//     and the process environment: CRAFTTREE_STYLE, CRAFTTREE_FORMATS,
//     CRAFTTREE_BASE_MULTIPLIER, CRAFTTREE_SIBLING_FACTOR,
//     CRAFTTREE_DEPTH_EXPONENT
//
// Command-line flags are applied on top by the CLI.
package config
