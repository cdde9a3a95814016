package easel

// updater is a node's direct-render record: a request flag and the cover
// nodes that must be redrawn on top whenever this node is direct-rendered.
type updater struct {
	needDirect bool
	covers     []*Node
}

// RequestDirectRender flags the node for the direct-update path on the next
// CollectAndDirectRender. The node's stale status becomes Updater, which
// ordinary propagation never downgrades.
func (n *Node) RequestDirectRender() {
	n.updater.needDirect = true
	n.stale = Updater
}

// NeedsDirectRender reports whether the node is flagged for direct rendering.
func (n *Node) NeedsDirectRender() bool {
	return n.updater.needDirect
}

// AddCover registers an overlay node that is direct-rendered after this one.
// Adding the same node twice, or the node itself, is a no-op.
func (n *Node) AddCover(cover *Node) {
	if cover == nil || cover == n {
		return
	}
	for _, c := range n.updater.covers {
		if c == cover {
			return
		}
	}
	n.updater.covers = append(n.updater.covers, cover)
}

// RemoveCover unregisters an overlay node.
func (n *Node) RemoveCover(cover *Node) {
	for i, c := range n.updater.covers {
		if c == cover {
			n.updater.covers = append(n.updater.covers[:i], n.updater.covers[i+1:]...)
			return
		}
	}
}

// Covers returns the registered overlay nodes. The returned slice MUST NOT be
// mutated by the caller.
func (n *Node) Covers() []*Node {
	return n.updater.covers
}
