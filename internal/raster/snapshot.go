package raster

import (
	"bytes"
	"image"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable copy of a surface's pixels.
type Snapshot struct {
	id    uuid.UUID
	rect  image.Rectangle
	pix   []byte
	taken time.Time
}

// Snapshot captures the current pixels. Later drawing does not affect it.
func (s *Surface) Snapshot() *Snapshot {
	return &Snapshot{
		id:    uuid.New(),
		rect:  s.img.Rect,
		pix:   slices.Clone(s.img.Pix),
		taken: time.Now(),
	}
}

// Restore renders snap onto the surface. Snapshots of a different size are
// refused and the surface is left untouched.
func (s *Surface) Restore(snap *Snapshot) bool {
	if snap == nil || snap.rect != s.img.Rect {
		return false
	}
	copy(s.img.Pix, snap.pix)
	return true
}

// Matches reports whether the surface currently shows exactly snap.
func (s *Surface) Matches(snap *Snapshot) bool {
	return snap != nil && snap.rect == s.img.Rect && bytes.Equal(s.img.Pix, snap.pix)
}

func (sn *Snapshot) ID() uuid.UUID           { return sn.id }
func (sn *Snapshot) Bounds() image.Rectangle { return sn.rect }
func (sn *Snapshot) Taken() time.Time        { return sn.taken }

// At returns the stored pixel at (x, y); ok is false outside the snapshot.
func (sn *Snapshot) At(x, y int) (c Color, ok bool) {
	if !image.Pt(x, y).In(sn.rect) {
		return Color{}, false
	}
	i := (y-sn.rect.Min.Y)*sn.rect.Dx()*4 + (x-sn.rect.Min.X)*4
	return Color{sn.pix[i], sn.pix[i+1], sn.pix[i+2], sn.pix[i+3]}, true
}

// Equal reports whether two snapshots hold bit-identical pixels.
func (sn *Snapshot) Equal(o *Snapshot) bool {
	return o != nil && sn.rect == o.rect && bytes.Equal(sn.pix, o.pix)
}

// Image returns a fresh copy of the stored pixels.
func (sn *Snapshot) Image() *image.RGBA {
	img := image.NewRGBA(sn.rect)
	copy(img.Pix, sn.pix)
	return img
}
