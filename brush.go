package easel

import "fmt"

// Brush is the context handle passed to drawing logic. It embeds the node's
// surface for the drawing primitives and gives access to props, state and
// children. A Brush is only valid during the slot it was passed to.
type Brush struct {
	Surface
	node *Node
}

// Node returns the node being rendered.
func (b *Brush) Node() *Node { return b.node }

// Props returns the node's observable props. Reads are tracked.
func (b *Brush) Props() *Bag { return b.node.props }

// State returns the node's observable state. Reads are tracked.
func (b *Brush) State() *Bag { return b.node.state }

// Slot returns the index of the executing slot.
func (b *Brush) Slot() int { return b.node.currentSlot }

// Child returns a chainable handle to the child registered under name.
func (b *Brush) Child(name string) *ChildHandle {
	b.node.childUse++
	c := b.node.childMap[name]
	if c == nil {
		return &ChildHandle{err: fmt.Errorf("%w: %q on %q", ErrUnknownChild, name, b.node.name)}
	}
	return &ChildHandle{node: c}
}

// ChildrenUsed returns how many child handles the executing slot has taken.
func (b *Brush) ChildrenUsed() int { return b.node.childUse }

// RenderSlot runs the named slot process registered with Node.SetSlot inside
// a Save/Restore bracket. Unknown names are ignored.
func (b *Brush) RenderSlot(name string) {
	fn := b.node.namedSlots[name]
	if fn == nil {
		return
	}
	b.Save()
	defer b.Restore()
	fn(b)
}

// ChildConfig adjusts a child while its props are updated.
type ChildConfig struct {
	// Width and Height, when both positive and different from the child's
	// current size, give the child a new surface.
	Width, Height int
}

// ChildHandle is the chainable child-invocation surface. It carries the first
// error encountered; after a failure further calls are no-ops.
//
//	err := b.Child("box").UpdateProps(easel.Props{"color": "red"}).Paste(easel.Pt(10, 10)).Err()
type ChildHandle struct {
	node *Node
	err  error
}

// Node returns the child node, or nil for an unknown child.
func (h *ChildHandle) Node() *Node { return h.node }

// Err returns the first error encountered by the chain.
func (h *ChildHandle) Err() error { return h.err }

// UpdateProps stages props on the child and re-renders it immediately if it
// became stale.
func (h *ChildHandle) UpdateProps(props Props, cfg ...ChildConfig) *ChildHandle {
	if h.err != nil {
		return h
	}
	if props == nil {
		props = Props{}
	}
	for _, c := range cfg {
		if c.Width > 0 && c.Height > 0 {
			h.node.Resize(c.Width, c.Height)
		}
	}
	h.node.stageProps(props, false)
	if h.node.IsStale() {
		h.err = h.node.Render(nil)
	}
	return h
}

// Paste composites the child's surface onto its parent at offset.
func (h *ChildHandle) Paste(offset Point) *ChildHandle {
	if h.err != nil {
		return h
	}
	h.err = h.node.PasteToParent(offset)
	return h
}
