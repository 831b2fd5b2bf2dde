package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crafttree/crafttree/pkg/errors"
)

// =============================================================================
// Layout - Serialized Positioned Tree
// =============================================================================

// Layout is the serialization format shared by every renderer.
//
// It is produced from an in-memory pkg/layout.Result via layout.Export and
// carries everything a sink needs to draw without rebuilding the tree:
//
//   - Nodes: positioned nodes in pre-order; Parent indexes into Nodes (-1 for root)
//   - Links: parent → child pairs as indexes into Nodes
//   - Catalog: deduplicated element names in discovery order (legend)
//   - Steps: the recipes of the derivation, for the steps panel
//
// Header fields (Element, Algo, Elapsed, VisitedNodes) are informational and
// are omitted when unknown.
type Layout struct {
	// Header
	Element      string `json:"element,omitempty"`
	Algo         string `json:"algo,omitempty"`
	Elapsed      string `json:"elapsed,omitempty"`
	VisitedNodes int    `json:"visited_nodes,omitempty"`

	// Frame
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Style  string  `json:"style,omitempty"`

	// Geometry
	NodeWidth  float64 `json:"node_width"`
	NodeHeight float64 `json:"node_height"`
	Depth      int     `json:"depth"`
	Leaves     int     `json:"leaves"`

	Nodes   []PositionedNode `json:"nodes"`
	Links   []Link           `json:"links"`
	Catalog []string         `json:"catalog"`
	Steps   []Recipe         `json:"steps,omitempty"`
}

// PositionedNode is a tree node with its computed coordinates.
type PositionedNode struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Depth   int     `json:"depth"`
	Parent  int     `json:"parent"`
	Cyclic  bool    `json:"cyclic,omitempty"`
	Unknown bool    `json:"unknown,omitempty"`
}

// IsRoot reports whether the node has no parent.
func (n PositionedNode) IsRoot() bool { return n.Parent < 0 }

// Link connects a parent node to one of its children by node ID.
type Link struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Root returns the root node. The layout must be non-empty.
func (l Layout) Root() PositionedNode { return l.Nodes[0] }

// Endpoints resolves a link to its parent and child nodes.
func (l Layout) Endpoints(lk Link) (from, to PositionedNode) {
	return l.Nodes[lk.From], l.Nodes[lk.To]
}

// Validate checks structural consistency: at least one node, IDs matching
// positions, and every parent and link reference in range.
func (l Layout) Validate() error {
	if len(l.Nodes) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "layout has no nodes")
	}
	for i, n := range l.Nodes {
		if n.ID != i {
			return errors.New(errors.ErrCodeInvalidInput, "node %d has id %d", i, n.ID)
		}
		if n.Parent >= i || n.Parent < -1 || (i > 0 && n.Parent < 0) {
			return errors.New(errors.ErrCodeInvalidInput, "node %d has invalid parent %d", i, n.Parent)
		}
	}
	for _, lk := range l.Links {
		if lk.From < 0 || lk.From >= len(l.Nodes) || lk.To < 0 || lk.To >= len(l.Nodes) {
			return errors.New(errors.ErrCodeInvalidInput, "link %d→%d out of range", lk.From, lk.To)
		}
	}
	return nil
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
