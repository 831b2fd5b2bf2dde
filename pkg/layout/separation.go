package layout

import (
	"math"

	"github.com/crafttree/crafttree/pkg/tree"
)

// Neighbor describes one side of a pair of horizontally adjacent nodes, as
// seen by a separation function.
type Neighbor struct {
	Node     *tree.Node
	Parent   *tree.Node // nil for the root
	Depth    int
	Siblings int // child count of Parent; 1 for the root
}

// SeparationFunc returns the minimum horizontal distance, in layout units,
// between the centres of two adjacent nodes at the same depth. It must be
// positive.
type SeparationFunc func(a, b Neighbor) float64

// Separation is the default separation function:
//
//	BaseMultiplier
//	  × (same parent ? 1 : SiblingGroupFactor)
//	  × 2^(max(depthA, depthB) · DepthExponent)
//	  × max(1, log2(siblings of a's parent))
//
// Spacing grows with depth and with the size of the sibling group, so wide
// recipe fan-outs and deep branches get more room than shallow pairs.
func (c Config) Separation(a, b Neighbor) float64 {
	group := 1.0
	if a.Parent != b.Parent {
		group = c.SiblingGroupFactor
	}
	depth := math.Pow(2, float64(max(a.Depth, b.Depth))*c.DepthExponent)
	return c.BaseMultiplier * group * depth * siblingFactor(a.Siblings)
}

// siblingFactor is log2(n) for n >= 2 and 1 below that.
func siblingFactor(n int) float64 {
	return math.Max(1, math.Log2(float64(n)))
}
