package easel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional event forwarding (see the ecs
// submodule). When set on a Stage, render events are emitted to it.
type EventSink interface {
	EmitRenderEvent(event RenderEvent)
}

// RenderEventType identifies a kind of render event.
type RenderEventType uint8

const (
	EventDirectRender RenderEventType = iota // a node was direct-updated onto the root
	EventRenderPass                          // an ordinary top-down pass ran from the root
	EventCycleEnd                            // the frame's cycle closed
)

// RenderEvent carries render data for an EventSink.
type RenderEvent struct {
	Type   RenderEventType
	NodeID uint32
	Name   string
	Frame  uint64
}

// Stage drives a node tree frame by frame. It implements ebiten.Game, so it
// can be handed to Run or ebiten.RunGame directly; headless callers invoke
// Frame themselves.
type Stage struct {
	root  *Node
	sink  EventSink
	debug bool
	frame uint64

	updateFunc func() error
	tweens     []Tween

	// ClearColor fills the screen before the root is drawn in Draw.
	ClearColor Color

	// ShowFPS overlays the current FPS and TPS in Draw.
	ShowFPS bool

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string
}

var _ ebiten.Game = (*Stage)(nil)

// NewStage creates a stage for the tree rooted at root.
func NewStage(root *Node) *Stage {
	return &Stage{
		root:          root,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the stage's root node.
func (s *Stage) Root() *Node {
	return s.root
}

// FrameCount returns the number of frames run so far.
func (s *Stage) FrameCount() uint64 {
	return s.frame
}

// SetEventSink sets the sink that receives render events.
func (s *Stage) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables per-frame stats logging and tree-shape checks.
func (s *Stage) SetDebugMode(on bool) {
	s.debug = on
	globalDebug = on
}

// SetUpdateFunc sets a callback run at the start of every Update, before
// tweens advance and the frame renders.
func (s *Stage) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// AddTween registers a tween to be advanced by Update. Finished tweens are
// dropped automatically.
func (s *Stage) AddTween(t Tween) {
	if t != nil {
		s.tweens = append(s.tweens, t)
	}
}

// Frame runs one scheduling pass: nodes flagged for direct rendering are
// direct-updated onto the root, an ordinary pass renders the root if it was
// stale before the direct pass, and the cycle is closed with EndCycle.
func (s *Stage) Frame() error {
	defer func() {
		EndCycle(s.root)
		s.emit(RenderEvent{Type: EventCycleEnd, NodeID: s.root.id, Name: s.root.name})
		s.flushScreenshots()
		s.frame++
	}()

	wasStale := s.root.IsStale()

	t0 := time.Now()
	direct, err := CollectAndDirectRender(s.root)
	frameStats.directTime = time.Since(t0)
	for _, n := range direct {
		s.emit(RenderEvent{Type: EventDirectRender, NodeID: n.id, Name: n.name})
	}
	if err != nil {
		s.debugLog(resetFrameStats())
		return err
	}

	if wasStale {
		t0 = time.Now()
		err = s.root.Render(nil)
		frameStats.renderTime = time.Since(t0)
		s.emit(RenderEvent{Type: EventRenderPass, NodeID: s.root.id, Name: s.root.name})
	}
	s.debugLog(resetFrameStats())
	return err
}

// Update runs the update callback, advances tweens by one tick and renders a
// frame.
func (s *Stage) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.advanceTweens(float32(1.0 / float64(ebiten.TPS())))
	return s.Frame()
}

// Draw composites the root's surface onto the screen.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.ClearColor != (Color{}) {
		screen.Fill(s.ClearColor.toRGBA())
	}
	WrapEbitenImage(screen).DrawSurface(s.root.surface)
	if s.ShowFPS {
		drawFPS(screen)
	}
}

// Layout reports the root surface's size in device pixels as the screen
// size, so Draw blits it 1:1. Ebitengine scales the screen to the window.
func (s *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := s.root.surface.Size()
	return w, h
}

func (s *Stage) advanceTweens(dt float32) {
	live := s.tweens[:0]
	for _, t := range s.tweens {
		t.Update(dt)
		if !t.IsDone() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

func (s *Stage) emit(ev RenderEvent) {
	if s.sink == nil {
		return
	}
	ev.Frame = s.frame
	s.sink.EmitRenderEvent(ev)
}
