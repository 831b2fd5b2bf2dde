package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crafttree/crafttree/pkg/errors"
	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/observability"
	"github.com/crafttree/crafttree/pkg/pipeline"
)

const (
	// stdinName is the input argument that reads from standard input.
	stdinName = "-"

	// layoutExt is the extension of layout documents.
	layoutExt = "layout.json"
)

// readResponse decodes a search-service payload from a file or stdin.
func readResponse(input string) (graph.Response, error) {
	if input == stdinName {
		return graph.ReadResponse(os.Stdin)
	}
	if err := errors.ValidatePath(input); err != nil {
		return graph.Response{}, err
	}
	return graph.ReadResponseFile(input)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// format extension (.svg, .pdf, etc.), it strips that extension. A trailing
// ".layout" left by a layout document is stripped in both cases.
func basePath(output, input string) string {
	if output == "" {
		if input == stdinName {
			return appName
		}
		output = strings.TrimSuffix(input, filepath.Ext(input))
	} else if ext := filepath.Ext(output); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		output = strings.TrimSuffix(output, ext)
	}
	return strings.TrimSuffix(output, ".layout")
}

// artifactPath names the file for one format. JSON artifacts are layouts
// and get the ".layout.json" extension so they never replace a ".json"
// search result. pathNum > 0 adds a "_path<N>" suffix used when every path
// of a response is rendered.
func artifactPath(base, format string, pathNum int) string {
	ext := format
	if format == pipeline.FormatJSON {
		ext = layoutExt
	}
	if pathNum > 0 {
		return fmt.Sprintf("%s_path%d.%s", base, pathNum, ext)
	}
	return base + "." + ext
}

// artifactWriteParams describes one batch of artifacts to write.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string // write order
	input     string
	output    string
	pathNum   int
}

// writeArtifacts writes every artifact and returns the paths written.
// A single artifact is written to output verbatim when output is given.
func writeArtifacts(ctx context.Context, p artifactWriteParams) ([]string, error) {
	base := basePath(p.output, p.input)
	paths := make([]string, 0, len(p.formats))

	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := artifactPath(base, format, p.pathNum)
		if len(p.formats) == 1 && p.pathNum == 0 && p.output != "" {
			path = p.output
		}
		if samePath(path, p.input) {
			return paths, errors.New(errors.ErrCodeInvalidPath, "refusing to overwrite input %s, use --output", path)
		}
		if err := writeFile(ctx, format, path, data); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// samePath reports whether a and b name the same file, comparing cleaned
// absolute paths and, when both exist, the files themselves.
func samePath(a, b string) bool {
	if a == "" || b == "" || a == "-" || b == "-" {
		return false
	}
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}

func writeFile(ctx context.Context, format, path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			observability.Output().OnArtifactError(ctx, format, path, err)
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		observability.Output().OnArtifactError(ctx, format, path, err)
		return fmt.Errorf("write %s: %w", path, err)
	}
	observability.Output().OnArtifactWritten(ctx, format, path, len(data))
	return nil
}
