package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween is anything a Stage can advance once per tick.
type Tween interface {
	Update(dt float32)
	IsDone() bool
}

var (
	_ Tween = (*TweenGroup)(nil)
	_ Tween = (*ColorTween)(nil)
)

// TweenGroup animates up to 4 numeric state keys of a Node simultaneously.
// Create one with TweenState or TweenStates and call Update(dt) each frame (or
// register it with Stage.AddTween). Every step writes through the node's
// state, so readers of the keys go stale (or direct-render) like any other
// write. If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	keys   [4]string
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target's state. If the target node has been disposed, Done is set to true
// and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.target.state.Set(g.keys[i], float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// IsDone reports whether every tween in the group has finished.
func (g *TweenGroup) IsDone() bool { return g.Done }

// TweenState creates a TweenGroup that animates the float state key of node
// from its current value to the target over the duration using the easing
// function.
func TweenState(node *Node, key string, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenStates(node, map[string]float64{key: to}, duration, fn)
}

// TweenStates animates up to 4 state keys together. Extra keys are ignored,
// in unspecified order.
func TweenStates(node *Node, targets map[string]float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	for key, to := range targets {
		if g.count == len(g.tweens) {
			break
		}
		checkKey(key)
		from := node.state.Values()[key]
		g.tweens[g.count] = gween.New(float32(toFloat(from)), float32(to), duration, fn)
		g.keys[g.count] = key
		g.count++
	}
	return g
}

// TweenColor animates a Color-valued state key component-wise.
func TweenColor(node *Node, key string, to Color, duration float32, fn ease.TweenFunc) *ColorTween {
	from, _ := node.state.Values()[key].(Color)
	ct := &ColorTween{target: node, key: key}
	ct.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	ct.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	ct.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	ct.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	return ct
}

// ColorTween animates one Color-valued state key. It writes a whole Color
// per step so readers are notified once.
type ColorTween struct {
	tweens [4]*gween.Tween
	target *Node
	key    string
	Done   bool
}

// Update advances the tween by dt seconds and writes the color to state.
func (c *ColorTween) Update(dt float32) {
	if c.Done {
		return
	}
	if c.target == nil || c.target.IsDisposed() {
		c.Done = true
		return
	}
	var v [4]float64
	allDone := true
	for i, tw := range c.tweens {
		val, finished := tw.Update(dt)
		v[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	c.target.state.Set(c.key, Color{R: v[0], G: v[1], B: v[2], A: v[3]})
	c.Done = allDone
}

// IsDone reports whether the tween has finished.
func (c *ColorTween) IsDone() bool { return c.Done }

func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	default:
		return 0
	}
}
