package easel

import "slices"

// renderStack holds the nodes whose render pass is in progress; the top is
// the currently rendering node. A slot that renders another node pushes it
// and pops it on return. Plain slice: easel is single-threaded.
var renderStack []*Node

// CurrentNode returns the node whose render pass is executing, or nil.
func CurrentNode() *Node {
	if len(renderStack) == 0 {
		return nil
	}
	return renderStack[len(renderStack)-1]
}

// RenderDepth returns the number of nested render passes in progress. It is
// zero between top-level passes.
func RenderDepth() int {
	return len(renderStack)
}

func pushRendering(n *Node) {
	renderStack = append(renderStack, n)
}

func popRendering() {
	renderStack[len(renderStack)-1] = nil
	renderStack = renderStack[:len(renderStack)-1]
}

// Render runs the node's pending drawing logic. Non-nil props are staged
// first. A node that is not stale is left untouched.
//
// The first completed pass calls the node's factory and runs every slot;
// later passes run only the pending slots. Each slot runs inside a
// Save/Restore bracket on the node's surface.
//
// If a slot fails, its surface state is restored, the failing slot and every
// slot not yet run stay pending, the node stays stale, and a *RenderError is
// returned. A node whose first pass failed calls its factory again next time.
func (n *Node) Render(props Props) error {
	if n.disposed {
		return ErrDisposed
	}
	if props != nil {
		n.stageProps(props, false)
	}
	if n.stale == UnStale {
		return nil
	}

	pushRendering(n)
	defer popRendering()
	defer func() { n.currentSlot = -1 }()

	if !n.hasInit {
		n.slots = nil
		if n.factory != nil {
			n.slots = n.factory(n)
		}
		clear(n.pending)
		for i := range n.slots {
			n.pending[i] = struct{}{}
		}
	}
	order := sortedSlots(n.pending)
	frameStats.passes++

	for _, idx := range order {
		if err := n.runSlot(idx); err != nil {
			return &RenderError{Node: n.name, Slot: idx, Err: err}
		}
	}

	first := !n.hasInit
	n.stale = UnStale
	n.hasInit = true
	n.currentSlot = -1
	if h := n.config.Hooks.Updated; h != nil {
		h(n)
	}
	if first {
		if h := n.config.Hooks.Painted; h != nil {
			h(n)
		}
	}
	return nil
}

// runSlot executes one slot. The slot leaves the pending set when it starts
// and returns to it if it does not complete.
func (n *Node) runSlot(idx int) (err error) {
	delete(n.pending, idx)
	done := false
	defer func() {
		if !done {
			n.pending[idx] = struct{}{}
		}
	}()

	n.currentSlot = idx
	n.childUse = 0
	if p := n.parent; p != nil && p.currentSlot >= 0 {
		n.parentSlot = p.currentSlot
	}
	for b := range n.deps {
		b.forgetSlot(n, idx)
	}

	if idx < 0 || idx >= len(n.slots) || n.slots[idx] == nil {
		done = true
		return nil
	}
	s := n.surface
	s.Save()
	defer s.Restore()
	frameStats.slotRuns++
	if err := n.slots[idx](&Brush{Surface: s, node: n}); err != nil {
		return err
	}
	done = true
	return nil
}

// stageProps replaces the node's props. Slots reading a changed key are
// scheduled; with force, every slot that reads any prop is scheduled. The
// node is marked stale without propagating past itself.
func (n *Node) stageProps(props Props, force bool) {
	changed := n.props.replace(props)
	var slots []int
	if force {
		slots = n.props.slotsReadingAny(n)
	} else {
		slots = n.props.readersOf(n, changed)
	}
	for _, s := range slots {
		n.pending[s] = struct{}{}
	}
	if len(slots) > 0 || force {
		n.SignalStale(Stale, n)
	}
}

// sortedSlots returns the members of set in ascending order.
func sortedSlots(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

