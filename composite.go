package easel

import "fmt"

// Composite draws src's surface onto dst's surface at offset, scaled to src's
// pixel ratio, inside a Save/Restore bracket on dst. Afterwards every
// post-process callback pending on src runs once with dst as its target and
// the pending list is cleared.
func Composite(src, dst *Node, offset Point) {
	s := dst.surface
	s.Save()
	defer s.Restore()

	at := offset.Scale(src.config.PixelRatio)
	s.Translate(at.X, at.Y)
	s.DrawSurface(src.surface)
	frameStats.composites++

	post := src.post
	src.post = nil
	for _, fn := range post {
		fn(dst)
	}
}

// AddPostProcess queues fn to run, once, the next time this node is
// composited. fn receives the target node; its surface is translated to the
// paste offset.
func (n *Node) AddPostProcess(fn func(target *Node)) {
	if fn == nil {
		return
	}
	n.post = append(n.post, fn)
}

// PasteToParent records a placement snapshot and composites the node onto its
// parent at offset. The first paste of a cycle resets the snapshot lists.
// Returns ErrNoParent for a detached node.
func (n *Node) PasteToParent(offset Point) error {
	if n.disposed {
		return ErrDisposed
	}
	if n.parent == nil {
		return fmt.Errorf("paste %q: %w", n.name, ErrNoParent)
	}

	if !n.snapArmed {
		n.snapArmed = true
		n.placements = n.placements[:0]
		n.propSnaps = n.propSnaps[:0]
	}
	if n.parent.currentSlot >= 0 {
		n.parentSlot = n.parent.currentSlot
	}
	n.placements = append(n.placements, offset)
	n.propSnaps = append(n.propSnaps, n.props.Values())

	Composite(n, n.parent, offset)
	if h := n.config.Hooks.Pasted; h != nil {
		h(n)
	}
	return nil
}

// EndCycle closes the current cycle for the tree under root: every node in
// the tree resets its snapshot lists on its next paste. The Stage calls it
// once per frame, after all synchronous render work.
func EndCycle(root *Node) {
	if root == nil {
		return
	}
	for n := range root.Walk() {
		n.snapArmed = false
	}
}
