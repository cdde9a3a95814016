package easel

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

// Props is a plain property map, used to stage props and to snapshot them.
type Props map[string]any

// reservedPrefix marks keys owned by the engine.
const reservedPrefix = "$"

// slotRef identifies one drawing-logic slot of one node.
type slotRef struct {
	node *Node
	slot int
}

// Bag is an observable property container. Reads made while a node's slot is
// executing are recorded against that slot; a write that changes a value
// schedules every recorded slot and invalidates its node.
type Bag struct {
	owner   *Node
	values  map[string]any
	readers map[string]map[slotRef]struct{}
}

func newBag(owner *Node) *Bag {
	return &Bag{
		owner:   owner,
		values:  make(map[string]any),
		readers: make(map[string]map[slotRef]struct{}),
	}
}

// Get returns the value stored under key, or nil.
func (b *Bag) Get(key string) any {
	b.track(key)
	return b.values[key]
}

// Lookup returns the value stored under key and whether it was present.
func (b *Bag) Lookup(key string) (any, bool) {
	b.track(key)
	v, ok := b.values[key]
	return v, ok
}

// String returns the value under key as a string, or "" if it is not one.
func (b *Bag) String(key string) string {
	s, _ := b.Get(key).(string)
	return s
}

// Float returns the value under key as a float64. Integer values convert;
// anything else yields 0.
func (b *Bag) Float(key string) float64 {
	switch v := b.Get(key).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Int returns the value under key as an int. Floats truncate; anything else
// yields 0.
func (b *Bag) Int(key string) int {
	switch v := b.Get(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Bool returns the value under key as a bool.
func (b *Bag) Bool(key string) bool {
	v, _ := b.Get(key).(bool)
	return v
}

// Color returns the value under key as a Color. Color keyword strings
// resolve through ColorByName.
func (b *Bag) Color(key string) Color {
	switch v := b.Get(key).(type) {
	case Color:
		return v
	case string:
		c, _ := ColorByName(v)
		return c
	default:
		return Color{}
	}
}

// Set stores value under key. If the value changed, every slot that read the
// key is scheduled and its node invalidated.
// Panics with a MisuseError if key is in the reserved "$" namespace.
func (b *Bag) Set(key string, value any) {
	checkKey(key)
	if old, ok := b.values[key]; ok && reflect.DeepEqual(old, value) {
		return
	}
	b.values[key] = value
	b.notify(key)
}

// Delete removes key, notifying its readers if it was present.
func (b *Bag) Delete(key string) {
	if _, ok := b.values[key]; !ok {
		return
	}
	delete(b.values, key)
	b.notify(key)
}

// Len returns the number of stored keys.
func (b *Bag) Len() int {
	return len(b.values)
}

// Values returns a copy of the stored values. Reading through Values does not
// record dependencies.
func (b *Bag) Values() Props {
	return maps.Clone(Props(b.values))
}

// replace swaps in values wholesale and returns the keys whose value changed,
// without notifying anyone.
func (b *Bag) replace(values Props) []string {
	var changed []string
	for k, v := range values {
		checkKey(k)
		if old, ok := b.values[k]; !ok || !reflect.DeepEqual(old, v) {
			changed = append(changed, k)
		}
	}
	for k := range b.values {
		if _, ok := values[k]; !ok {
			changed = append(changed, k)
		}
	}
	b.values = make(map[string]any, len(values))
	maps.Copy(b.values, values)
	return changed
}

// track records a read by the currently executing slot.
func (b *Bag) track(key string) {
	n := CurrentNode()
	if n == nil || n.currentSlot < 0 {
		return
	}
	set := b.readers[key]
	if set == nil {
		set = make(map[slotRef]struct{})
		b.readers[key] = set
	}
	set[slotRef{node: n, slot: n.currentSlot}] = struct{}{}
	if n.deps == nil {
		n.deps = make(map[*Bag]struct{})
	}
	n.deps[b] = struct{}{}
}

// notify schedules the readers of key and invalidates their nodes.
func (b *Bag) notify(key string) {
	set := b.readers[key]
	if len(set) == 0 {
		return
	}
	var nodes []*Node
	seen := make(map[*Node]bool, len(set))
	for ref := range set {
		ref.node.pending[ref.slot] = struct{}{}
		if !seen[ref.node] {
			seen[ref.node] = true
			nodes = append(nodes, ref.node)
		}
	}
	for _, n := range nodes {
		n.invalidate()
	}
}

// readersOf returns the slots of n that read any of keys.
func (b *Bag) readersOf(n *Node, keys []string) []int {
	var out []int
	for _, k := range keys {
		for ref := range b.readers[k] {
			if ref.node == n {
				out = append(out, ref.slot)
			}
		}
	}
	return out
}

// slotsReadingAny returns the slots of n that read any key of this bag.
func (b *Bag) slotsReadingAny(n *Node) []int {
	var out []int
	for _, set := range b.readers {
		for ref := range set {
			if ref.node == n {
				out = append(out, ref.slot)
			}
		}
	}
	return out
}

// forgetSlot drops the read records of one slot, before it re-runs.
func (b *Bag) forgetSlot(n *Node, slot int) {
	ref := slotRef{node: n, slot: slot}
	for k, set := range b.readers {
		delete(set, ref)
		if len(set) == 0 {
			delete(b.readers, k)
		}
	}
}

// forgetNode drops every read record of n.
func (b *Bag) forgetNode(n *Node) {
	for k, set := range b.readers {
		for ref := range set {
			if ref.node == n {
				delete(set, ref)
			}
		}
		if len(set) == 0 {
			delete(b.readers, k)
		}
	}
}

func checkKey(key string) {
	if strings.HasPrefix(key, reservedPrefix) {
		misuse("set", fmt.Errorf("%w: %q", ErrReservedKey, key))
	}
}
