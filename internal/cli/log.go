// Package cli implements the crafttree command-line interface.
//
// The CLI reads recipe search results (the JSON replies of the search
// service), rebuilds their derivation trees and renders them. It is built on
// cobra, reports progress with charmbracelet/log and uses bubbletea for the
// interactive path picker.
//
// # Commands
//
//   - render: search result to SVG, PNG, PDF or JSON in one step
//   - layout: search result to a layout.json document
//   - visualize: layout.json to SVG, PNG, PDF or JSON
//   - pick: choose one path of a multi-path result interactively
//   - tree, steps, catalog: print a derivation as text
//   - config: create and inspect the config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// routes pipeline events to the logger. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Pipeline stages and command completion
// lines go through it; user-facing results are printed separately by ui.go.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command and logs a single completion line for it.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock for a command.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and the elapsed time, rounded to
// the millisecond.
// Example output: "Rendered Mud paths=2 elapsed=12ms"
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", p.elapsed())
	p.logger.Info(msg, keyvals...)
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default() when a command runs without one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
