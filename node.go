package easel

import (
	"errors"
	"math"
)

// DrawFunc is one drawing-logic slot. It reads the node's props and state
// through the Brush and issues drawing calls against it; it has no other
// observable effect.
type DrawFunc func(b *Brush) error

// DrawFactory is called once, on a node's first render, and returns the
// node's slots. Each slot is independently re-runnable.
type DrawFactory func(n *Node) []DrawFunc

// Hooks are the lifecycle call points. Nil hooks are skipped.
type Hooks struct {
	Created   func(n *Node) // end of NewNode
	Updated   func(n *Node) // end of every completed render pass
	Painted   func(n *Node) // after the first completed render pass
	Pasted    func(n *Node) // after each paste into the parent
	Destroyed func(n *Node) // from Dispose
}

// NodeConfig describes a node's surface and direct-render eligibility.
type NodeConfig struct {
	Name string
	// Width and Height are the logical surface size. The backing surface is
	// PixelRatio times larger.
	Width, Height int
	// PixelRatio is the device pixel ratio. Zero defaults to 1.
	PixelRatio float64
	// Direct marks the node as always eligible for direct rendering.
	Direct bool
	// Opaque disables the alpha channel: the surface starts filled with
	// Background (black when unset). An opaque node is direct-eligible.
	Opaque bool
	// Background, when set, fills the surface on creation. A node with a
	// background is direct-eligible.
	Background *Color
	// Backend creates the surface. Nil uses DefaultBackend.
	Backend Backend
	Hooks   Hooks
}

// nodeIDCounter is a plain counter; easel is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a component instance in the composition tree. It owns its surface,
// its observable props and state, and all render bookkeeping. Every field is
// unexported; the only way to mutate a node is through its methods.
type Node struct {
	id      uint32
	name    string
	config  NodeConfig
	factory DrawFactory
	surface Surface

	// Hierarchy
	parent    *Node
	root      *Node
	children  []*Node
	childMap  map[string]*Node
	childName map[*Node]string

	// Reactive containers
	props *Bag
	state *Bag
	deps  map[*Bag]struct{} // bags holding read records of this node

	// Render bookkeeping
	stale       StaleStatus
	hasInit     bool
	slots       []DrawFunc
	pending     map[int]struct{}
	currentSlot int
	parentSlot  int
	childUse    int
	namedSlots  map[string]func(b *Brush)

	// Placement history for the current cycle
	placements []Point
	propSnaps  []Props
	snapArmed  bool

	updater updater
	post    []func(target *Node)

	disposed bool
}

// NewNode creates a node with the given configuration and drawing-logic
// factory. The surface is created immediately, and the Created hook fires
// once the node is fully wired.
func NewNode(cfg NodeConfig, factory DrawFactory) *Node {
	if cfg.PixelRatio <= 0 {
		cfg.PixelRatio = 1
	}
	if cfg.Backend == nil {
		cfg.Backend = DefaultBackend
	}
	n := &Node{
		id:          nextNodeID(),
		name:        cfg.Name,
		config:      cfg,
		factory:     factory,
		stale:       Stale,
		pending:     make(map[int]struct{}),
		currentSlot: -1,
	}
	n.root = n
	n.props = newBag(n)
	n.state = newBag(n)

	w := int(math.Ceil(float64(cfg.Width) * cfg.PixelRatio))
	h := int(math.Ceil(float64(cfg.Height) * cfg.PixelRatio))
	n.surface = cfg.Backend(max(w, 1), max(h, 1))
	switch {
	case cfg.Background != nil:
		n.surface.Clear(*cfg.Background)
	case cfg.Opaque:
		n.surface.Clear(ColorBlack)
	}

	if cfg.Hooks.Created != nil {
		cfg.Hooks.Created(n)
	}
	return n
}

// ID returns the node's unique identifier. Zero after Dispose.
func (n *Node) ID() uint32 { return n.id }

// Name returns the node's configured name.
func (n *Node) Name() string { return n.name }

// Config returns the node's configuration.
func (n *Node) Config() NodeConfig { return n.config }

// Surface returns the node's backing surface.
func (n *Node) Surface() Surface { return n.surface }

// Props returns the node's observable props.
func (n *Node) Props() *Bag { return n.props }

// State returns the node's observable private state.
func (n *Node) State() *Bag { return n.state }

// StaleStatus returns the node's staleness.
func (n *Node) StaleStatus() StaleStatus { return n.stale }

// IsStale reports whether the node's output is out of date.
func (n *Node) IsStale() bool { return n.stale != UnStale }

// HasInit reports whether the node has ever completed a render pass.
func (n *Node) HasInit() bool { return n.hasInit }

// PixelRatio returns the device pixel ratio of the node's surface.
func (n *Node) PixelRatio() float64 { return n.config.PixelRatio }

// PendingSlots returns the slot indices awaiting re-run, in ascending order.
func (n *Node) PendingSlots() []int {
	return sortedSlots(n.pending)
}

// Placements returns a copy of the offsets recorded by the current cycle's
// pastes.
func (n *Node) Placements() []Point {
	return append([]Point(nil), n.placements...)
}

// SetState merges values into the node's state. Every changed key notifies
// its readers.
func (n *Node) SetState(values Props) {
	for k, v := range values {
		n.state.Set(k, v)
	}
}

// SetSlot registers a named slot process that drawing logic can run with
// Brush.RenderSlot. A nil fn removes it.
func (n *Node) SetSlot(name string, fn func(b *Brush)) {
	if fn == nil {
		delete(n.namedSlots, name)
		return
	}
	if n.namedSlots == nil {
		n.namedSlots = make(map[string]func(b *Brush))
	}
	n.namedSlots[name] = fn
}

// Resize replaces the node's surface with a new one of the given logical
// size. The node is marked for a full re-render.
func (n *Node) Resize(w, h int) {
	if w == n.config.Width && h == n.config.Height {
		return
	}
	n.config.Width, n.config.Height = w, h
	pw := int(math.Ceil(float64(w) * n.config.PixelRatio))
	ph := int(math.Ceil(float64(h) * n.config.PixelRatio))
	n.surface.Dispose()
	n.surface = n.config.Backend(max(pw, 1), max(ph, 1))
	if n.config.Background != nil {
		n.surface.Clear(*n.config.Background)
	} else if n.config.Opaque {
		n.surface.Clear(ColorBlack)
	}
	n.hasInit = false
	if n.parent != nil && CurrentNode() == n.parent {
		// The parent is rendering and will paste the new surface itself.
		n.SignalStale(Stale, n)
		return
	}
	n.SignalStale(Stale, nil)
}

// --- Tree manipulation ---

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Root returns the topmost ancestor. A detached node is its own root.
func (n *Node) Root() *Node { return n.root }

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the child registered under name, or nil.
func (n *Node) Child(name string) *Node { return n.childMap[name] }

// AddChild registers child under name. If child already has a parent, it is
// removed from that parent first. A previous child with the same name is
// detached.
// Panics if child is nil, disposed, or an ancestor of this node (cycle).
func (n *Node) AddChild(name string, child *Node) {
	if child == nil {
		misuse("AddChild", errors.New("cannot add nil child"))
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if child.disposed {
		misuse("AddChild", ErrDisposed)
	}
	if isAncestor(child, n) {
		misuse("AddChild", errors.New("adding child would create a cycle"))
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	if old := n.childMap[name]; old != nil {
		n.RemoveChild(old)
	}
	if n.childMap == nil {
		n.childMap = make(map[string]*Node)
		n.childName = make(map[*Node]string)
	}
	child.parent = n
	child.parentSlot = 0
	n.children = append(n.children, child)
	n.childMap[name] = child
	n.childName[child] = name
	setSubtreeRoot(child, n.root)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node. Placement history of the
// detached subtree is discarded.
// Panics if child's parent is not this node.
func (n *Node) RemoveChild(child *Node) {
	if child.parent != n {
		misuse("RemoveChild", errors.New("child's parent is not this node"))
	}
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			break
		}
	}
	delete(n.childMap, n.childName[child])
	delete(n.childName, child)
	child.parent = nil
	for d := range child.Walk() {
		d.placements = nil
		d.propSnaps = nil
		d.snapArmed = false
	}
	setSubtreeRoot(child, child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

// --- Disposal ---

// Dispose removes this node from its parent, fires Destroyed, releases the
// surface and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	for _, child := range n.children {
		child.parent = nil
		child.dispose()
	}
	if n.config.Hooks.Destroyed != nil {
		n.config.Hooks.Destroyed(n)
	}
	n.disposed = true
	n.id = 0
	n.children = nil
	n.childMap = nil
	n.childName = nil
	n.parent = nil
	n.root = n
	for b := range n.deps {
		b.forgetNode(n)
	}
	n.deps = nil
	n.slots = nil
	n.placements = nil
	n.propSnaps = nil
	n.post = nil
	n.updater = updater{}
	if n.surface != nil {
		n.surface.Dispose()
		n.surface = nil
	}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// setSubtreeRoot points node and all its descendants at root.
func setSubtreeRoot(node, root *Node) {
	node.root = root
	for _, child := range node.children {
		setSubtreeRoot(child, root)
	}
}
