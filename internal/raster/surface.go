// Package raster holds the drawing substrate: a fixed-size RGBA pixel grid,
// the Color type accepted at the edges, and immutable snapshots of the grid.
//
// Every accessor clips against the surface bounds. Coordinates outside
// [0,width) x [0,height) are never read or written.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"MyPaintBoard/internal/errors"
)

// Surface is an addressable grid of RGBA pixels. It never resizes.
type Surface struct {
	img *image.RGBA
}

// New allocates a transparent surface of the given size.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "surface size %dx%d must be positive", width, height)
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

func (s *Surface) Width() int  { return s.img.Rect.Dx() }
func (s *Surface) Height() int { return s.img.Rect.Dy() }

func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// In reports whether (x, y) addresses a pixel of the surface.
func (s *Surface) In(x, y int) bool {
	return image.Pt(x, y).In(s.img.Rect)
}

// At returns the pixel at (x, y). ok is false outside the surface.
func (s *Surface) At(x, y int) (c Color, ok bool) {
	if !s.In(x, y) {
		return Color{}, false
	}
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	return Color{p[0], p[1], p[2], p[3]}, true
}

// Set writes one pixel. Out of bounds writes are dropped and report false.
func (s *Surface) Set(x, y int, c Color) bool {
	if !s.In(x, y) {
		return false
	}
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	return true
}

// ReadRegion copies the w x h rectangle at (x, y), clipped to the surface.
// The returned buffer keeps surface coordinates in its bounds; it is empty when
// the rectangle lies entirely outside.
func (s *Surface) ReadRegion(x, y, w, h int) *image.RGBA {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Rect)
	out := image.NewRGBA(r)
	if !r.Empty() {
		draw.Draw(out, r, s.img, r.Min, draw.Src)
	}
	return out
}

// WriteRegion copies buf onto the surface with buf's top-left corner at (x, y).
// Whatever falls outside the surface is clipped.
func (s *Surface) WriteRegion(buf *image.RGBA, x, y int) {
	if buf == nil {
		return
	}
	src := buf.Bounds()
	dst := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x, y).Add(src.Size())}
	draw.Draw(s.img, dst, buf, src.Min, draw.Src)
}

// FillAll paints every pixel with c.
func (s *Surface) FillAll(c Color) {
	draw.Draw(s.img, s.img.Rect, &image.Uniform{C: color.RGBA(c)}, image.Point{}, draw.Src)
}

// ClearAll resets every pixel to transparent black.
func (s *Surface) ClearAll() {
	s.FillAll(Transparent)
}

// Image returns a copy of the whole surface for rendering or export.
func (s *Surface) Image() *image.RGBA {
	return s.ReadRegion(0, 0, s.Width(), s.Height())
}
