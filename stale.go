package easel

// SignalStale marks the node with status and walks toward the root, marking
// on every parent the call-site (slot) that rendered the child below it and
// marking the parent Stale. An Updater node keeps its status. The walk stops
// after boundary (which is itself marked) or at the root.
func (n *Node) SignalStale(status StaleStatus, boundary *Node) {
	for leaf := n; leaf != nil; leaf = leaf.parent {
		if leaf.stale != Updater {
			leaf.stale = status
		}
		if leaf == boundary || leaf.parent == nil {
			return
		}
		leaf.parent.pending[leaf.parentSlot] = struct{}{}
		status = Stale
	}
}

// invalidate is the reactive stale signal: a value this node read has been
// written. Direct-eligible nodes are queued for the direct-update path;
// everything else propagates staleness to the root.
func (n *Node) invalidate() {
	if n.disposed {
		return
	}
	if n.directEligible() {
		n.RequestDirectRender()
		return
	}
	n.SignalStale(Stale, nil)
}

// directEligible reports whether a state change on n can be served by the
// direct-update path: n must be allowed to, and must have been placed at
// least once so there is a history to replay.
func (n *Node) directEligible() bool {
	return CanDirectUpdate(n) && n.parent != nil && n.hasInit && len(n.placements) > 0
}
