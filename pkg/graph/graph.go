package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crafttree/crafttree/pkg/errors"
)

// =============================================================================
// GraphData Serialization API
// =============================================================================

// MarshalGraphData converts a GraphData to indented JSON bytes.
func MarshalGraphData(g GraphData) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphData writes a GraphData as JSON to an io.Writer.
func WriteGraphData(g GraphData, w io.Writer) error {
	return writeJSONTo(g, w)
}

// WriteGraphDataFile writes a GraphData to a JSON file.
func WriteGraphDataFile(g GraphData, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSONTo(g, f)
}

// ReadGraphData decodes a bare GraphData payload from an io.Reader.
// Use ReadResponse when the input may be wrapped in a service envelope.
func ReadGraphData(r io.Reader) (GraphData, error) {
	var g GraphData
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return GraphData{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode graph data")
	}
	return g, nil
}

// =============================================================================
// Response Decoding API
// =============================================================================

// ReadResponseFile reads a search-service payload from a file.
func ReadResponseFile(path string) (Response, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Response{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Response{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadResponse(f)
}

// ReadResponse decodes any payload shape the search service produces:
// single-path and multi-path success envelopes, the bare multi-path form,
// and a bare GraphData. A failure envelope is returned as an error with
// code SEARCH_FAILED carrying the service's type and message.
func ReadResponse(r io.Reader) (Response, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Response{}, fmt.Errorf("read: %w", err)
	}
	return UnmarshalResponse(data)
}

// UnmarshalResponse is ReadResponse over in-memory bytes.
func UnmarshalResponse(data []byte) (Response, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Response{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode response")
	}

	if failed, msg := env.failure(); failed {
		return Response{}, errors.Search(env.Type, msg)
	}

	switch {
	case len(env.Data) > 0 && !isNull(env.Data):
		return decodeData(env.Data)
	case env.Paths != nil:
		return Response{
			Algo:         env.Algo,
			Element:      env.Element,
			Paths:        env.Paths,
			VisitedNodes: env.VisitedNodes,
		}, nil
	case env.Recipes != nil || env.Nodes != nil:
		var g GraphData
		if err := json.Unmarshal(data, &g); err != nil {
			return Response{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode graph data")
		}
		return single(g), nil
	default:
		return Response{}, errors.New(errors.ErrCodeInvalidInput, "unrecognized payload: expected data, paths or recipes")
	}
}

// =============================================================================
// Internal Implementation
// =============================================================================

// envelope is the union of every top-level key the service emits.
type envelope struct {
	Error        json.RawMessage `json:"error"`
	Type         string          `json:"type"`
	Message      string          `json:"message"`
	Data         json.RawMessage `json:"data"`
	Algo         string          `json:"algo"`
	Element      string          `json:"element"`
	Paths        []GraphData     `json:"paths"`
	VisitedNodes int             `json:"visitedNodes"`
	Nodes        []Node          `json:"nodes"`
	Recipes      []Recipe        `json:"recipes"`
}

// failure reports whether the envelope signals a failed search. The
// service sends either a boolean flag or the failure text itself; a
// string error fills in the message when none was sent.
func (e envelope) failure() (bool, string) {
	raw := bytes.TrimSpace(e.Error)
	if len(raw) == 0 || isNull(raw) {
		return false, ""
	}
	var flag bool
	if err := json.Unmarshal(raw, &flag); err == nil {
		return flag, e.Message
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil && text != "" {
		if e.Message != "" {
			return true, e.Message
		}
		return true, text
	}
	return false, ""
}

// dataBody covers both the single-path and multi-path "data" objects.
type dataBody struct {
	GraphData
	Algo    string      `json:"algo"`
	Element string      `json:"element"`
	Paths   []GraphData `json:"paths"`
}

func decodeData(raw json.RawMessage) (Response, error) {
	var body dataBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return Response{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode response data")
	}
	if body.Paths != nil {
		return Response{
			Algo:         body.Algo,
			Element:      body.Element,
			Paths:        body.Paths,
			VisitedNodes: body.VisitedNodes,
		}, nil
	}
	resp := single(body.GraphData)
	resp.Algo = body.Algo
	if body.Element != "" {
		resp.Element = body.Element
	}
	return resp, nil
}

func single(g GraphData) Response {
	resp := Response{Paths: []GraphData{g}, VisitedNodes: g.VisitedNodes}
	if root, err := g.Root(); err == nil {
		resp.Element = root
	}
	return resp
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func writeJSONTo(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
