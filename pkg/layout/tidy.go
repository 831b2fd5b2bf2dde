package layout

import "github.com/crafttree/crafttree/pkg/tree"

// wnode carries the per-node state of the Buchheim–Jünger–Leipert
// linear-time Walker algorithm.
type wnode struct {
	node     *tree.Node
	parent   *wnode
	children []*wnode
	depth    int
	i        int // index among siblings

	a *wnode // ancestor
	A *wnode // default ancestor
	t *wnode // thread

	z float64 // preliminary x
	m float64 // modifier
	c float64 // change
	s float64 // shift

	x float64 // final, unfitted x
}

// tidy assigns unfitted x coordinates to every node of root using sep
// between adjacent same-depth nodes. It returns the wrapped root.
func tidy(root *tree.Node, sep SeparationFunc) *wnode {
	t := wrap(root, nil, 0, 0)
	// Synthetic parent so the root can be treated like any other node.
	t.parent = &wnode{children: []*wnode{t}}

	firstWalk(t, sep)
	t.parent.m = -t.z
	secondWalk(t)
	return t
}

func wrap(n *tree.Node, parent *wnode, depth, i int) *wnode {
	w := &wnode{node: n, parent: parent, depth: depth, i: i}
	w.a = w
	if len(n.Children) > 0 {
		w.children = make([]*wnode, len(n.Children))
		for j, c := range n.Children {
			w.children[j] = wrap(c, w, depth+1, j)
		}
	}
	return w
}

func (v *wnode) neighbor() Neighbor {
	nb := Neighbor{Node: v.node, Depth: v.depth, Siblings: 1}
	if v.parent != nil && v.parent.node != nil {
		nb.Parent = v.parent.node
		nb.Siblings = len(v.parent.children)
	}
	return nb
}

func separate(sep SeparationFunc, a, b *wnode) float64 {
	return sep(a.neighbor(), b.neighbor())
}

func nextLeft(v *wnode) *wnode {
	if len(v.children) > 0 {
		return v.children[0]
	}
	return v.t
}

func nextRight(v *wnode) *wnode {
	if len(v.children) > 0 {
		return v.children[len(v.children)-1]
	}
	return v.t
}

// firstWalk computes preliminary x and modifiers in post-order.
func firstWalk(v *wnode, sep SeparationFunc) {
	for _, c := range v.children {
		firstWalk(c, sep)
	}

	siblings := v.parent.children
	var w *wnode
	if v.i > 0 {
		w = siblings[v.i-1]
	}

	if len(v.children) > 0 {
		executeShifts(v)
		midpoint := (v.children[0].z + v.children[len(v.children)-1].z) / 2
		if w != nil {
			v.z = w.z + separate(sep, v, w)
			v.m = v.z - midpoint
		} else {
			v.z = midpoint
		}
	} else if w != nil {
		v.z = w.z + separate(sep, v, w)
	}

	ancestor := v.parent.A
	if ancestor == nil {
		ancestor = siblings[0]
	}
	v.parent.A = apportion(v, w, ancestor, sep)
}

// secondWalk resolves absolute x from accumulated modifiers in pre-order.
func secondWalk(v *wnode) {
	v.x = v.z + v.parent.m
	v.m += v.parent.m
	for _, c := range v.children {
		secondWalk(c)
	}
}

// apportion pushes the subtree of v right until its left contour clears the
// right contour of the subtrees to its left.
func apportion(v, w, ancestor *wnode, sep SeparationFunc) *wnode {
	if w == nil {
		return ancestor
	}

	vip, vop := v, v
	vim := w
	vom := v.parent.children[0]
	sip, sop, sim, som := vip.m, vop.m, vim.m, vom.m

	for {
		vim = nextRight(vim)
		vip = nextLeft(vip)
		if vim == nil || vip == nil {
			break
		}
		vom = nextLeft(vom)
		vop = nextRight(vop)
		vop.a = v

		shift := vim.z + sim - vip.z - sip + separate(sep, vim, vip)
		if shift > 0 {
			moveSubtree(nextAncestor(vim, v, ancestor), v, shift)
			sip += shift
			sop += shift
		}
		sim += vim.m
		sip += vip.m
		som += vom.m
		sop += vop.m
	}

	if vim != nil && nextRight(vop) == nil {
		vop.t = vim
		vop.m += sim - sop
	}
	if vip != nil && nextLeft(vom) == nil {
		vom.t = vip
		vom.m += sip - som
		ancestor = v
	}
	return ancestor
}

func moveSubtree(wm, wp *wnode, shift float64) {
	change := shift / float64(wp.i-wm.i)
	wp.c -= change
	wp.s += shift
	wm.c += change
	wp.z += shift
	wp.m += shift
}

func executeShifts(v *wnode) {
	var shift, change float64
	for i := len(v.children) - 1; i >= 0; i-- {
		w := v.children[i]
		w.z += shift
		w.m += shift
		change += w.c
		shift += w.s + change
	}
}

func nextAncestor(vim, v, ancestor *wnode) *wnode {
	if vim.a.parent == v.parent {
		return vim.a
	}
	return ancestor
}
