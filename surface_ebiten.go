package easel

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface is a GPU surface backed by a persistent *ebiten.Image. Use it
// for nodes rendered inside an ebiten game loop (see Run). Pixels can only be
// read back once the game has started.
type EbitenSurface struct {
	image *ebiten.Image
	w, h  int
	xf    transformStack
}

// whitePixel is a 1x1 white image scaled and tinted to fill rectangles.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// EbitenBackend creates an EbitenSurface. It satisfies Backend.
func EbitenBackend(w, h int) Surface {
	return NewEbitenSurface(w, h)
}

// NewEbitenSurface creates a transparent offscreen image of the given size.
func NewEbitenSurface(w, h int) *EbitenSurface {
	return &EbitenSurface{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
		xf:    transformStack{cur: identityXform()},
	}
}

// WrapEbitenImage adapts an existing image, typically the screen passed to
// ebiten.Game.Draw, so nodes can be composited onto it.
func WrapEbitenImage(img *ebiten.Image) *EbitenSurface {
	b := img.Bounds()
	return &EbitenSurface{
		image: img,
		w:     b.Dx(),
		h:     b.Dy(),
		xf:    transformStack{cur: identityXform()},
	}
}

// EbitenImage returns the underlying *ebiten.Image for direct manipulation.
func (s *EbitenSurface) EbitenImage() *ebiten.Image {
	return s.image
}

func (s *EbitenSurface) Size() (int, int) { return s.w, s.h }

func (s *EbitenSurface) Save() { s.xf.save() }

func (s *EbitenSurface) Restore() { s.xf.restore() }

func (s *EbitenSurface) Translate(x, y float64) { s.xf.translate(x, y) }

func (s *EbitenSurface) Scale(sx, sy float64) { s.xf.scale(sx, sy) }

func (s *EbitenSurface) Clear(c Color) {
	s.image.Fill(c.toRGBA())
}

func (s *EbitenSurface) FillRect(r Rect, c Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.GeoM.Concat(s.geoM())
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	s.image.DrawImage(ensureWhitePixel(), &op)
}

func (s *EbitenSurface) FillCircle(cx, cy, radius float64, c Color) {
	x, y := s.xf.apply(cx, cy)
	vector.DrawFilledCircle(s.image, float32(x), float32(y), float32(radius*s.xf.cur.sx), c.toRGBA(), true)
}

func (s *EbitenSurface) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	src, ok := img.(*ebiten.Image)
	if !ok {
		src = ebiten.NewImageFromImage(img)
		defer src.Deallocate()
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geoM())
	s.image.DrawImage(src, &op)
}

func (s *EbitenSurface) DrawSurface(src Surface) {
	if src == nil {
		return
	}
	if es, ok := src.(*EbitenSurface); ok {
		s.DrawImage(es.image, 0, 0)
		return
	}
	s.DrawImage(src.Image(), 0, 0)
}

func (s *EbitenSurface) Image() image.Image {
	return s.image
}

// Dispose deallocates the underlying image. The surface should not be used
// after calling Dispose.
func (s *EbitenSurface) Dispose() {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
}

// geoM converts the current transform into an ebiten.GeoM.
func (s *EbitenSurface) geoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(s.xf.cur.sx, s.xf.cur.sy)
	g.Translate(s.xf.cur.tx, s.xf.cur.ty)
	return g
}
