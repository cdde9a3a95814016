package easel

import (
	"slices"
	"testing"
)

func sortPoints(ps []Point) []Point {
	out := slices.Clone(ps)
	slices.SortFunc(out, func(a, b Point) int {
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		if a.Y < b.Y {
			return -1
		}
		if a.Y > b.Y {
			return 1
		}
		return 0
	})
	return out
}

func TestAbsolutePositionsRoot(t *testing.T) {
	root := solidNode("root", 4, 4, red)
	if got := root.AbsolutePositions(); !slices.Equal(got, []Point{{}}) {
		t.Errorf("root positions = %v, want [(0,0)]", got)
	}
}

func TestAbsolutePositionsProductLaw(t *testing.T) {
	root := solidNode("root", 256, 64, ColorWhite)
	p := solidNode("p", 64, 32, ColorWhite)
	n := solidNode("n", 8, 8, red)
	root.AddChild("p", p)
	p.AddChild("n", n)

	for _, at := range []Point{{0, 0}, {100, 0}} {
		if err := p.PasteToParent(at); err != nil {
			t.Fatal(err)
		}
	}
	for _, at := range []Point{{10, 10}, {50, 10}} {
		if err := n.PasteToParent(at); err != nil {
			t.Fatal(err)
		}
	}

	got := sortPoints(n.AbsolutePositions())
	want := []Point{{10, 10}, {50, 10}, {110, 10}, {150, 10}}
	if !slices.Equal(got, want) {
		t.Errorf("positions = %v, want %v", got, want)
	}
}

func TestAbsolutePositionsUnplaced(t *testing.T) {
	root := solidNode("root", 8, 8, ColorWhite)
	n := solidNode("n", 2, 2, red)
	root.AddChild("n", n)
	if got := n.AbsolutePositions(); len(got) != 0 {
		t.Errorf("unplaced node positions = %v, want none", got)
	}
}
