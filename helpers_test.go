package easel

import (
	"image/color"
	"testing"
)

// --- Test node builders ---

// slotsNode creates a node whose factory returns the given slots and counts
// its invocations in *factoryCalls (if non-nil).
func slotsNode(name string, w, h int, factoryCalls *int, slots ...DrawFunc) *Node {
	return NewNode(NodeConfig{Name: name, Width: w, Height: h}, func(n *Node) []DrawFunc {
		if factoryCalls != nil {
			*factoryCalls++
		}
		return slots
	})
}

// solidNode creates a node that fills its whole surface with c.
func solidNode(name string, w, h int, c Color) *Node {
	return slotsNode(name, w, h, nil, func(b *Brush) error {
		b.FillRect(R(0, 0, float64(w), float64(h)), c)
		return nil
	})
}

// pasteSlot returns a slot that renders the named child and pastes it at each
// of the offsets.
func pasteSlot(child string, offsets ...Point) DrawFunc {
	return func(b *Brush) error {
		h := b.Child(child).UpdateProps(nil)
		for _, at := range offsets {
			h.Paste(at)
		}
		return h.Err()
	}
}

// countSlot returns a slot that increments *runs and does nothing else.
func countSlot(runs *int) DrawFunc {
	return func(b *Brush) error {
		*runs++
		return nil
	}
}

// --- Pixel assertions ---

func pixelAt(n *Node, x, y int) color.RGBA {
	return rgba8(n.Surface().Image().At(x, y))
}

func rgba8(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func assertPixel(t *testing.T, n *Node, x, y int, want Color) {
	t.Helper()
	got := pixelAt(n, x, y)
	w := want.toRGBA()
	if !near(got.R, w.R) || !near(got.G, w.G) || !near(got.B, w.B) || !near(got.A, w.A) {
		t.Errorf("%s pixel (%d,%d) = %v, want %v", n.Name(), x, y, got, w)
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

// sameImage reports whether two nodes' surfaces hold identical pixels.
func sameImage(t *testing.T, a, b *Node) bool {
	t.Helper()
	ia, ib := a.Surface().Image(), b.Surface().Image()
	if ia.Bounds() != ib.Bounds() {
		t.Fatalf("bounds differ: %v vs %v", ia.Bounds(), ib.Bounds())
	}
	r := ia.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pa, pb := rgba8(ia.At(x, y)), rgba8(ib.At(x, y))
			if pa != pb {
				t.Logf("first difference at (%d,%d): %v vs %v", x, y, pa, pb)
				return false
			}
		}
	}
	return true
}

// recoverMisuse runs fn and returns the MisuseError it panicked with, or nil.
func recoverMisuse(fn func()) (me *MisuseError) {
	defer func() {
		if r := recover(); r != nil {
			me, _ = r.(*MisuseError)
		}
	}()
	fn()
	return nil
}

var (
	red   = Color{R: 1, A: 1}
	green = Color{G: 1, A: 1}
	blue  = Color{B: 1, A: 1}
)
