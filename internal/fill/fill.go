// Package fill implements the bucket tool: a stack-based, 4-connected flood
// fill over a raster.Surface.
package fill

import (
	"image"

	"MyPaintBoard/internal/raster"
)

// Result describes what a fill did.
type Result struct {
	Seed    image.Point
	Start   raster.Color
	Painted int
}

// Changed reports whether any pixel was repainted.
func (r Result) Changed() bool { return r.Painted > 0 }

// Fill repaints the 4-connected region around (x, y) whose pixels share the
// seed's color with c. Colors are compared on their RGB channels; painted
// pixels are written fully opaque.
//
// The surface is read once into a working copy at the start and the copy is
// written back in one operation at the end, so the "matches the start color"
// test never sees a half-filled surface. Seeds outside the surface and seeds
// already showing c paint nothing and leave the surface untouched.
func Fill(s *raster.Surface, x, y int, c raster.Color) Result {
	res := Result{Seed: image.Pt(x, y)}
	start, ok := s.At(x, y)
	if !ok {
		return res
	}
	res.Start = start

	fillColor := c.Opaque()
	w, h := s.Width(), s.Height()
	buf := s.ReadRegion(0, 0, w, h)
	visited := make([]bool, w*h)

	stack := []image.Point{image.Pt(x, y)}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			continue
		}
		idx := p.Y*w + p.X
		if visited[idx] {
			continue
		}

		i := buf.PixOffset(p.X, p.Y)
		px := buf.Pix[i : i+4 : i+4]
		cur := raster.Color{R: px[0], G: px[1], B: px[2], A: px[3]}
		if !cur.SameRGB(start) || cur.SameRGB(fillColor) {
			continue
		}

		visited[idx] = true
		px[0], px[1], px[2], px[3] = fillColor.R, fillColor.G, fillColor.B, fillColor.A
		res.Painted++

		stack = append(stack,
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X, p.Y-1),
			image.Pt(p.X, p.Y+1),
		)
	}

	if res.Painted > 0 {
		s.WriteRegion(buf, 0, 0)
	}
	return res
}
