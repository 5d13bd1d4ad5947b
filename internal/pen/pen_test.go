package pen

import (
	"image"
	"math"
	"testing"
	"time"

	"MyPaintBoard/internal/raster"
)

func whiteSurface(t *testing.T, w, h int) *raster.Surface {
	t.Helper()
	s, err := raster.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	s.FillAll(raster.White)
	return s
}

func painted(s *raster.Surface) map[image.Point]bool {
	got := make(map[image.Point]bool)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c, _ := s.At(x, y); c != raster.White {
				got[image.Pt(x, y)] = true
			}
		}
	}
	return got
}

func TestExtendWhileIdleIsNoop(t *testing.T) {
	s := whiteSurface(t, 5, 5)
	e := New()
	if e.Extend(s, image.Pt(3, 3), Style{Color: raster.Black, Width: 1}) {
		t.Error("Extend while Idle reported true")
	}
	if n := len(painted(s)); n != 0 {
		t.Errorf("Extend while Idle painted %d pixels", n)
	}
}

func TestStartDrawsNothing(t *testing.T) {
	s := whiteSurface(t, 5, 5)
	e := New()
	e.Start(image.Pt(2, 2))
	if !e.Active() || e.State() != Stroking {
		t.Fatal("Start did not enter Stroking")
	}
	if n := len(painted(s)); n != 0 {
		t.Errorf("Start painted %d pixels", n)
	}
}

func TestEndReportsActivity(t *testing.T) {
	e := New()
	if e.End() {
		t.Error("End while Idle reported an active stroke")
	}
	e.Start(image.Pt(0, 0))
	if !e.End() {
		t.Error("End after Start reported no stroke")
	}
	if e.Active() {
		t.Error("engine still active after End")
	}
}

func TestWidthOneHorizontalLine(t *testing.T) {
	s := whiteSurface(t, 8, 3)
	e := New()
	e.Start(image.Pt(1, 1))
	e.Extend(s, image.Pt(6, 1), Style{Color: raster.Black, Width: 1})

	got := painted(s)
	if len(got) != 6 {
		t.Fatalf("painted %d pixels, want 6", len(got))
	}
	for x := 1; x <= 6; x++ {
		if !got[image.Pt(x, 1)] {
			t.Errorf("pixel (%d,1) not painted", x)
		}
	}
}

func TestWidthOneDiagonal(t *testing.T) {
	s := whiteSurface(t, 5, 5)
	e := New()
	e.Start(image.Pt(0, 0))
	e.Extend(s, image.Pt(4, 4), Style{Color: raster.Black, Width: 1})

	got := painted(s)
	if len(got) != 5 {
		t.Fatalf("painted %d pixels, want 5", len(got))
	}
	for i := 0; i < 5; i++ {
		if !got[image.Pt(i, i)] {
			t.Errorf("pixel (%d,%d) not painted", i, i)
		}
	}
}

func TestConsecutiveSegmentsConnect(t *testing.T) {
	s := whiteSurface(t, 10, 10)
	e := New()
	style := Style{Color: raster.Black, Width: 1}
	e.Start(image.Pt(2, 2))
	for _, p := range []image.Point{{7, 2}, {7, 7}, {2, 7}, {2, 2}} {
		e.Extend(s, p, style)
	}

	got := painted(s)
	if len(got) != 20 {
		t.Errorf("square border painted %d pixels, want 20", len(got))
	}
	for _, p := range []image.Point{{2, 2}, {7, 2}, {7, 7}, {2, 7}, {4, 2}, {7, 5}} {
		if !got[p] {
			t.Errorf("border pixel %v missing", p)
		}
	}
	if got[image.Pt(4, 4)] {
		t.Error("interior pixel painted")
	}
}

func TestWideBrushIsRound(t *testing.T) {
	s := whiteSurface(t, 11, 11)
	e := New()
	e.Start(image.Pt(5, 5))
	e.Extend(s, image.Pt(5, 5), Style{Color: raster.Black, Width: 5})

	got := painted(s)
	if !got[image.Pt(5, 3)] || !got[image.Pt(7, 5)] || !got[image.Pt(6, 6)] {
		t.Error("disc is missing pixels inside its radius")
	}
	if got[image.Pt(3, 3)] || got[image.Pt(7, 7)] {
		t.Error("disc covers its bounding-box corners")
	}
}

func TestBrushSizes(t *testing.T) {
	e := New()
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{1, 1},
		{2, 4},
		{3, 9},
		{5, 21},
	}
	for _, tt := range tests {
		if got := len(e.brush(tt.width)); got != tt.want {
			t.Errorf("brush(%d) has %d pixels, want %d", tt.width, got, tt.want)
		}
	}
}

func TestStrokeClipsAtEdges(t *testing.T) {
	s := whiteSurface(t, 4, 4)
	e := New()
	e.Start(image.Pt(-3, 1))
	e.Extend(s, image.Pt(8, 1), Style{Color: raster.Black, Width: 1})

	got := painted(s)
	if len(got) != 4 {
		t.Errorf("painted %d pixels, want the 4 in-bounds ones", len(got))
	}
}

func TestStrokeIsOpaque(t *testing.T) {
	s := whiteSurface(t, 3, 3)
	e := New()
	e.Start(image.Pt(1, 1))
	e.Extend(s, image.Pt(1, 1), Style{Color: raster.Color{R: 10, A: 0}, Width: 1})
	if c, _ := s.At(1, 1); c != (raster.Color{R: 10, A: 255}) {
		t.Errorf("At(1,1) = %v, want opaque", c)
	}
}

func TestFarCoordinatesAreClipped(t *testing.T) {
	s := whiteSurface(t, 10, 10)
	style := Style{Color: raster.Black, Width: 1}
	e := New()

	done := make(chan struct{})
	go func() {
		defer close(done)
		e.Start(image.Pt(0, 0))
		e.Extend(s, image.Pt(math.MaxInt, 0), style)
		e.Start(image.Pt(5, 5))
		e.Extend(s, image.Pt(1e9, -1e9), style)
		e.Start(image.Pt(math.MinInt, 7))
		e.Extend(s, image.Pt(math.MaxInt, 7), style)
		e.Extend(s, image.Pt(math.MinInt, math.MinInt), style)
		e.End()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("extending to far coordinates did not return")
	}

	got := painted(s)
	for x := 0; x < 10; x++ {
		for _, y := range []int{0, 7} {
			if !got[image.Pt(x, y)] {
				t.Errorf("(%d,%d) not painted", x, y)
			}
		}
	}
	for _, p := range []image.Point{image.Pt(5, 5), image.Pt(7, 3), image.Pt(9, 1)} {
		if !got[p] {
			t.Errorf("diagonal pixel %v not painted", p)
		}
	}
	if got[image.Pt(4, 6)] || got[image.Pt(2, 2)] {
		t.Error("pixels off the segments painted")
	}
}

func TestClipKeepsInsideSegments(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	a, b, ok := clip(image.Pt(1, 2), image.Pt(8, 9), r)
	if !ok || a != image.Pt(1, 2) || b != image.Pt(8, 9) {
		t.Errorf("clip() = %v %v %v", a, b, ok)
	}
	if _, _, ok := clip(image.Pt(-5, -5), image.Pt(-1, 20), r); ok {
		t.Error("segment left of the rectangle reported as visible")
	}
}
