package easel

import (
	"image"

	"github.com/gogpu/gg"
)

// SoftSurface is a CPU surface backed by a gg.Context. It is the default
// backend: pixels are always readable, so it also serves headless rendering
// and tests.
type SoftSurface struct {
	dc   *gg.Context
	w, h int
}

// SoftBackend creates a SoftSurface. It satisfies Backend.
func SoftBackend(w, h int) Surface {
	return NewSoftSurface(w, h)
}

// NewSoftSurface creates a transparent CPU surface of the given size.
func NewSoftSurface(w, h int) *SoftSurface {
	return &SoftSurface{dc: gg.NewContext(w, h), w: w, h: h}
}

// Context exposes the underlying gg.Context for drawing beyond the Surface
// primitives. Transform changes made through it are bracketed by the same
// Save/Restore calls.
func (s *SoftSurface) Context() *gg.Context {
	return s.dc
}

func (s *SoftSurface) Size() (int, int) { return s.w, s.h }

func (s *SoftSurface) Save() { s.dc.Push() }

func (s *SoftSurface) Restore() { s.dc.Pop() }

func (s *SoftSurface) Translate(x, y float64) { s.dc.Translate(x, y) }

func (s *SoftSurface) Scale(sx, sy float64) { s.dc.Scale(sx, sy) }

func (s *SoftSurface) Clear(c Color) {
	s.dc.ClearWithColor(gg.RGBA2(c.R, c.G, c.B, c.A))
}

func (s *SoftSurface) FillRect(r Rect, c Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	if err := s.dc.Fill(); err != nil {
		Logger().Warn("easel: soft surface fill failed", "err", err)
	}
}

func (s *SoftSurface) FillCircle(cx, cy, radius float64, c Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawCircle(cx, cy, radius)
	if err := s.dc.Fill(); err != nil {
		Logger().Warn("easel: soft surface fill failed", "err", err)
	}
}

func (s *SoftSurface) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	s.dc.DrawImage(gg.ImageBufFromImage(img), x, y)
}

func (s *SoftSurface) DrawSurface(src Surface) {
	if src == nil {
		return
	}
	s.DrawImage(src.Image(), 0, 0)
}

func (s *SoftSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *SoftSurface) Dispose() {
	_ = s.dc.Close()
}
