package tree

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented text rendering of the tree:
//
//	Smoke
//	├── Air
//	└── Fire
//
// Cyclic leaves are suffixed with "↺" and unknown leaves with "?".
func Fprint(w io.Writer, root *Node) error {
	if _, err := fmt.Fprintln(w, label(root)); err != nil {
		return err
	}
	return fprintChildren(w, root, "")
}

// String returns the Fprint rendering of the tree.
func (n *Node) String() string {
	var sb strings.Builder
	_ = Fprint(&sb, n)
	return sb.String()
}

func fprintChildren(w io.Writer, n *Node, prefix string) error {
	for i, c := range n.Children {
		branch, indent := "├── ", "│   "
		if i == len(n.Children)-1 {
			branch, indent = "└── ", "    "
		}
		if _, err := fmt.Fprintln(w, prefix+branch+label(c)); err != nil {
			return err
		}
		if err := fprintChildren(w, c, prefix+indent); err != nil {
			return err
		}
	}
	return nil
}

func label(n *Node) string {
	switch {
	case n.Cyclic:
		return n.Name + " ↺"
	case n.Unknown:
		return n.Name + " ?"
	default:
		return n.Name
	}
}
