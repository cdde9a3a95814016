package easel

import (
	"fmt"
	"time"
)

// globalDebug enables tree-shape checks in AddChild. Set by Stage.SetDebugMode.
var globalDebug bool

// debugStats holds per-frame counters and timings. Only logged when the
// Stage is in debug mode; the counters are always maintained.
type debugStats struct {
	directTime    time.Duration
	renderTime    time.Duration
	passes        int
	slotRuns      int
	composites    int
	directRenders int
}

// frameStats accumulates the counters of the frame in progress.
var frameStats debugStats

func resetFrameStats() debugStats {
	s := frameStats
	frameStats = debugStats{}
	return s
}

// debugLog writes timing and render stats at debug level.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("easel: frame",
		"frame", s.frame,
		"direct", stats.directTime,
		"render", stats.renderTime,
		"passes", stats.passes,
		"slots", stats.slotRuns,
		"composites", stats.composites,
		"directRenders", stats.directRenders,
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(&MisuseError{Op: op, Err: fmt.Errorf("%w: %q", ErrDisposed, n.name)})
	}
}

// debugMaxTreeDepth is the depth above which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("easel: tree depth exceeds threshold",
			"node", n.name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugMaxChildCount is the child count above which debugCheckChildCount warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("easel: child count exceeds threshold",
			"node", n.name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
