package easel

import (
	"iter"
	"slices"
)

// CanDirectUpdate reports whether re-compositing n over its previous output
// is exact: the node asks for it, or its surface is opaque or has a
// background, so each paste fully covers the previous pixels.
func CanDirectUpdate(n *Node) bool {
	c := n.config
	return c.Direct || c.Opaque || c.Background != nil
}

// DirectUpdate re-renders the node once per placement recorded in the current
// cycle and composites each result straight onto target at every absolute
// position of that placement, without walking the ancestors. Cover nodes are
// then direct-updated onto the same target. A parentless node just renders.
func (n *Node) DirectUpdate(target *Node) error {
	return n.directUpdate(target, make(map[*Node]bool))
}

func (n *Node) directUpdate(target *Node, visited map[*Node]bool) error {
	if visited[n] {
		return nil
	}
	visited[n] = true

	if n.parent == nil {
		return n.Render(nil)
	}

	placements := slices.Clone(n.placements)
	snaps := slices.Clone(n.propSnaps)
	for i, at := range placements {
		n.stageProps(snaps[i], true)
		if err := n.Render(nil); err != nil {
			return err
		}
		for _, abs := range n.parent.AbsolutePositions() {
			Composite(n, target, at.Add(abs))
		}
	}
	frameStats.directRenders++

	for _, c := range n.updater.covers {
		if err := c.directUpdate(target, visited); err != nil {
			return err
		}
	}
	return nil
}

// Walk returns a pre-order traversal of the subtree rooted at n. It uses an
// explicit stack over a snapshot of each node's children, so the tree may be
// modified while iterating and the sequence can be restarted.
func (n *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{n}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			for i := len(cur.children) - 1; i >= 0; i-- {
				stack = append(stack, cur.children[i])
			}
		}
	}
}

// CollectAndDirectRender direct-updates, onto root, every node in the tree
// flagged with RequestDirectRender, clearing the flags. Each direct-rendered
// node is then marked Stale again (with its ancestors) so the next ordinary
// pass reconciles the tree. It returns the nodes that were direct-rendered.
func CollectAndDirectRender(root *Node) ([]*Node, error) {
	if root == nil {
		return nil, nil
	}
	var (
		direct []*Node
		err    error
	)
	for n := range root.Walk() {
		if !n.updater.needDirect {
			continue
		}
		if err = n.DirectUpdate(root); err != nil {
			break
		}
		n.updater.needDirect = false
		direct = append(direct, n)
	}
	for _, n := range direct {
		n.SignalStale(Stale, nil)
	}
	return direct, err
}
