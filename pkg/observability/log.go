package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and output events at debug level.
// The CLI registers it when --verbose is set.
type LogHooks struct {
	Logger *log.Logger
}

func (h LogHooks) OnBuildStart(_ context.Context, element string, recipeCount int) {
	h.Logger.Debug("build start", "element", element, "recipes", recipeCount)
}

func (h LogHooks) OnBuildComplete(_ context.Context, element string, nodeCount int, d time.Duration, err error) {
	h.done("build", d, err, "element", element, "nodes", nodeCount)
}

func (h LogHooks) OnLayoutStart(_ context.Context, vizType string, nodeCount int) {
	h.Logger.Debug("layout start", "viz", vizType, "nodes", nodeCount)
}

func (h LogHooks) OnLayoutComplete(_ context.Context, vizType string, d time.Duration, err error) {
	h.done("layout", d, err, "viz", vizType)
}

func (h LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render", d, err, "formats", formats)
}

func (h LogHooks) OnArtifactWritten(_ context.Context, format, path string, size int) {
	h.Logger.Debug("wrote artifact", "format", format, "path", path, "bytes", size)
}

func (h LogHooks) OnArtifactError(_ context.Context, format, path string, err error) {
	h.Logger.Debug("artifact write failed", "format", format, "path", path, "err", err)
}

func (h LogHooks) done(stage string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "duration", d)
	if err != nil {
		h.Logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.Logger.Debug(stage+" done", kv...)
}
