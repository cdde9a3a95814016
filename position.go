package easel

// AbsolutePositions resolves every position at which the node was placed in
// root coordinates during the current cycle. A parentless node is at the
// origin. Otherwise each of the parent's absolute positions is combined with
// each of the node's recorded placements, so a node pasted k times under a
// parent that resolves to m positions yields m×k positions.
func (n *Node) AbsolutePositions() []Point {
	if n.parent == nil {
		return []Point{{}}
	}
	base := n.parent.AbsolutePositions()
	out := make([]Point, 0, len(base)*len(n.placements))
	for _, p := range base {
		for _, off := range n.placements {
			out = append(out, p.Add(off))
		}
	}
	return out
}
