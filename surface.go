package easel

import "image"

// Surface is a node's off-screen backing store together with its drawing
// context. Save/Restore bracket the transform state; the drawing calls are
// the small primitive set the core relies on.
//
// Surfaces composite only onto surfaces of the same backend.
type Surface interface {
	// Size returns the surface dimensions in device pixels.
	Size() (w, h int)

	// Save pushes the current transform.
	Save()
	// Restore pops the most recent Save. Unbalanced calls are ignored.
	Restore()
	// Translate moves the origin by (x, y).
	Translate(x, y float64)
	// Scale scales the coordinate system.
	Scale(sx, sy float64)

	// Clear fills the whole surface with c, ignoring the transform.
	Clear(c Color)
	// FillRect fills r with c.
	FillRect(r Rect, c Color)
	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, radius float64, c Color)
	// DrawImage draws img with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y float64)
	// DrawSurface draws src with its top-left corner at the current origin.
	DrawSurface(src Surface)

	// Image returns the current pixels.
	Image() image.Image
	// Dispose releases the backing store.
	Dispose()
}

// Backend creates surfaces of a given pixel size.
type Backend func(w, h int) Surface

// DefaultBackend is used by nodes whose NodeConfig leaves Backend nil.
var DefaultBackend Backend = SoftBackend

// transformStack is the translate/scale state shared by both backends.
// Only axis-aligned transforms are supported, so a point maps as
// (x*sx + tx, y*sy + ty).
type transformStack struct {
	cur   xform
	saved []xform
}

type xform struct {
	sx, sy, tx, ty float64
}

func identityXform() xform { return xform{sx: 1, sy: 1} }

func (t *transformStack) save() {
	t.saved = append(t.saved, t.cur)
}

func (t *transformStack) restore() {
	if len(t.saved) == 0 {
		return
	}
	t.cur = t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
}

func (t *transformStack) translate(x, y float64) {
	t.cur.tx += x * t.cur.sx
	t.cur.ty += y * t.cur.sy
}

func (t *transformStack) scale(sx, sy float64) {
	t.cur.sx *= sx
	t.cur.sy *= sy
}

func (t *transformStack) apply(x, y float64) (float64, float64) {
	return x*t.cur.sx + t.cur.tx, y*t.cur.sy + t.cur.ty
}

func (t *transformStack) depth() int {
	return len(t.saved)
}
