// Package easel is a reactive retained-mode 2D rendering engine for
// [Ebitengine].
//
// Every visual element is a [Node] that owns an offscreen [Surface]. A node's
// output is produced by an ordered list of draw slots returned by its
// [DrawFactory]. Slots read the node's props and state through observable
// [Bag]s; writing a key later re-runs exactly the slots that read it, and
// marks the node and its ancestors stale so the next pass repaints only what
// changed.
//
// # Quick start
//
//	root := easel.NewNode(easel.NodeConfig{Name: "root", Width: 320, Height: 240},
//		func(n *easel.Node) []easel.DrawFunc {
//			return []easel.DrawFunc{func(b *easel.Brush) error {
//				b.FillRect(easel.R(0, 0, 320, 240), easel.ColorWhite)
//				return b.Child("ball").UpdateProps(nil).Paste(easel.Pt(40, 40)).Err()
//			}}
//		})
//	root.AddChild("ball", ball)
//
//	stage := easel.NewStage(root)
//	easel.Run(stage, easel.RunConfig{Title: "Demo", Width: 320, Height: 240})
//
// Headless callers (tests, offline rendering) skip Run and call
// [Stage.Frame] themselves, then read the root with [Surface.Image] or
// [SavePNG]. The default backend is the CPU [SoftSurface] built on gogpu/gg;
// set [NodeConfig.Backend] to [EbitenBackend] for GPU images.
//
// # Staleness
//
// A node is UnStale, Stale, or an Updater. Stale propagates to the root along
// the parent chain, recording in each parent which slot pasted the child.
// Nodes whose output fully covers what they painted before ([CanDirectUpdate])
// become Updaters instead: on the next [Stage.Frame] they are re-rendered and
// composited straight onto the root at every position they were pasted at in
// the current cycle, without repainting their ancestors.
//
// # Tweens
//
// [TweenState] and [TweenColor] animate state keys with [gween]. Register
// them with [Stage.AddTween] to advance them once per tick.
//
// # Events
//
// [Stage.SetEventSink] forwards render events; the easel/ecs submodule
// publishes them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package easel
