// Package pen turns a sequence of pointer positions into connected line
// segments on a raster.Surface.
//
// Segments are rasterised with Bresenham's algorithm and a round brush is
// stamped at every step, which gives round caps and round joins without any
// antialiasing. The exact pixel set matters: flood fills rely on stroke
// outlines being closed.
package pen

import (
	"image"
	"math"

	"MyPaintBoard/internal/raster"
)

// State is the engine's position in the stroke state machine.
type State int

const (
	Idle State = iota
	Stroking
)

func (s State) String() string {
	if s == Stroking {
		return "stroking"
	}
	return "idle"
}

// Style is what a segment is drawn with.
type Style struct {
	Color raster.Color
	Width int
}

// Engine tracks one in-progress stroke.
type Engine struct {
	state   State
	prev    image.Point
	brushes map[int][]image.Point
}

func New() *Engine {
	return &Engine{brushes: make(map[int][]image.Point)}
}

func (e *Engine) State() State { return e.state }
func (e *Engine) Active() bool { return e.state == Stroking }

// Start begins a path at p. Nothing is drawn until the path is extended.
func (e *Engine) Start(p image.Point) {
	e.state = Stroking
	e.prev = p
}

// Extend draws the segment from the previous point to p and makes p the new
// previous point. It is a no-op while Idle.
func (e *Engine) Extend(s *raster.Surface, p image.Point, style Style) bool {
	if e.state != Stroking {
		return false
	}
	c := style.Color.Opaque()
	brush := e.brush(style.Width)
	// a brush centred just outside the surface can still reach into it
	area := s.Bounds().Inset(-max(style.Width, 1))
	if a, b, ok := clip(e.prev, p, area); ok {
		line(a, b, func(x, y int) {
			for _, o := range brush {
				s.Set(x+o.X, y+o.Y, c)
			}
		})
	}
	e.prev = p
	return true
}

// End finalizes the path and reports whether a stroke was in progress.
func (e *Engine) End() bool {
	was := e.state == Stroking
	e.state = Idle
	return was
}

// brush returns the pixel offsets of a disc of the given diameter.
func (e *Engine) brush(width int) []image.Point {
	if width < 1 {
		width = 1
	}
	if b, ok := e.brushes[width]; ok {
		return b
	}
	lo := -(width / 2)
	center := float64(lo) + float64(width-1)/2
	r2 := float64(width*width) / 4
	var b []image.Point
	for dy := lo; dy < lo+width; dy++ {
		for dx := lo; dx < lo+width; dx++ {
			fx, fy := float64(dx)-center, float64(dy)-center
			if fx*fx+fy*fy <= r2 {
				b = append(b, image.Pt(dx, dy))
			}
		}
	}
	e.brushes[width] = b
	return b
}

// coordLimit bounds the coordinates clip works with. Points further out are
// pulled in to it first, so the float math below stays exact enough and the
// integer math in line cannot overflow.
const coordLimit = 1 << 30

// clip trims the segment a-b to r (Max exclusive) with Liang-Barsky and
// reports false when the segment misses r. Segments inside r are returned
// unchanged.
func clip(a, b image.Point, r image.Rectangle) (image.Point, image.Point, bool) {
	if a.In(r) && b.In(r) {
		return a, b, true
	}
	a, b = clampPoint(a), clampPoint(b)

	x0, y0 := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - float64(r.Min.X)},
		{dx, float64(r.Max.X-1) - x0},
		{-dy, y0 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y-1) - y0},
	}
	for _, edge := range edges {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}

	at := func(t float64) image.Point {
		x := int(math.Round(x0 + t*dx))
		y := int(math.Round(y0 + t*dy))
		return image.Pt(clampInt(x, r.Min.X, r.Max.X-1), clampInt(y, r.Min.Y, r.Max.Y-1))
	}
	return at(t0), at(t1), true
}

func clampPoint(p image.Point) image.Point {
	return image.Pt(clampInt(p.X, -coordLimit, coordLimit), clampInt(p.Y, -coordLimit, coordLimit))
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// line calls plot for every pixel of the Bresenham line from a to b, both ends
// included.
func line(a, b image.Point, plot func(x, y int)) {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx, sy := -1, -1
	if a.X < b.X {
		sx = 1
	}
	if a.Y < b.Y {
		sy = 1
	}
	err := dx - dy
	x, y := a.X, a.Y
	for {
		plot(x, y)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
