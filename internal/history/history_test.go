package history

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"

	"MyPaintBoard/internal/raster"
)

func setup(t *testing.T, opts ...Option) (*raster.Surface, *History) {
	t.Helper()
	s, err := raster.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	s.FillAll(raster.White)
	return s, New(s, raster.White, opts...)
}

func blank(t *testing.T, s *raster.Surface) bool {
	t.Helper()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c, _ := s.At(x, y); c != raster.White {
				return false
			}
		}
	}
	return true
}

func TestUndoRedoOnEmptyAreNoops(t *testing.T) {
	s, h := setup(t)
	before := s.Snapshot()
	if h.Undo() {
		t.Error("Undo on empty history reported true")
	}
	if h.Redo() {
		t.Error("Redo on empty history reported true")
	}
	if !s.Matches(before) {
		t.Error("surface changed")
	}
}

func TestCommitPushesCurrentState(t *testing.T) {
	s, h := setup(t)
	s.Set(0, 0, raster.Black)
	h.Commit()
	if !s.Matches(h.Top()) {
		t.Error("top of undo stack does not match the surface after commit")
	}
	if u, r := h.Depth(); u != 1 || r != 0 {
		t.Errorf("Depth() = %d, %d; want 1, 0", u, r)
	}
}

func TestUndoTwoStrokesBackToBlank(t *testing.T) {
	s, h := setup(t)

	s.Set(0, 0, raster.Black) // stroke A
	h.Commit()
	afterA := s.Snapshot()

	s.Set(3, 3, raster.Black) // stroke B
	h.Commit()

	if !h.Undo() {
		t.Fatal("first undo failed")
	}
	if !s.Matches(afterA) {
		t.Error("first undo did not restore the state after A")
	}

	if !h.Undo() {
		t.Fatal("second undo failed")
	}
	if !blank(t, s) {
		t.Error("second undo did not restore the blank background")
	}

	if h.Undo() {
		t.Error("third undo reported true")
	}
	if !blank(t, s) {
		t.Error("third undo changed the surface")
	}
}

func TestUndoThenRedoIsBitIdentical(t *testing.T) {
	s, h := setup(t)
	s.Set(1, 1, raster.Black)
	h.Commit()
	s.Set(2, 2, raster.Black)
	h.Commit()
	before := s.Snapshot()

	h.Undo()
	if !h.Redo() {
		t.Fatal("Redo reported false")
	}
	if !s.Matches(before) {
		t.Error("undo then redo did not restore identical pixels")
	}
}

func TestRedoAfterUndoToBlank(t *testing.T) {
	s, h := setup(t)
	s.Set(1, 1, raster.Black)
	h.Commit()
	drawn := s.Snapshot()

	h.Undo()
	h.Redo()
	if !s.Matches(drawn) {
		t.Error("redo from blank did not restore the stroke")
	}
}

func TestCommitAfterUndoDiscardsRedo(t *testing.T) {
	s, h := setup(t)
	s.Set(0, 0, raster.Black)
	h.Commit()
	s.Set(1, 0, raster.Black)
	h.Commit()

	h.Undo()
	if !h.CanRedo() {
		t.Fatal("expected a redo entry after undo")
	}

	s.Set(3, 3, raster.Black)
	h.Commit()
	if h.CanRedo() {
		t.Error("commit did not clear the redo stack")
	}
	after := s.Snapshot()
	if h.Redo() {
		t.Error("Redo after a new commit reported true")
	}
	if !s.Matches(after) {
		t.Error("no-op Redo changed the surface")
	}
}

func TestResetOnEmptyHistoryAddsNothing(t *testing.T) {
	s, h := setup(t)
	h.Reset()
	if h.CanUndo() {
		t.Error("Reset on untouched canvas pushed an entry")
	}
	if h.Undo() {
		t.Error("Undo after Reset on untouched canvas reported true")
	}
	if !blank(t, s) {
		t.Error("surface not blank")
	}
}

func TestResetIsUndoable(t *testing.T) {
	s, h := setup(t)
	s.Set(2, 2, raster.Black)
	h.Commit()
	drawn := s.Snapshot()

	h.Reset()
	if !blank(t, s) {
		t.Fatal("Reset did not paint the background")
	}
	if u, _ := h.Depth(); u != 2 {
		t.Errorf("undo depth = %d, want 2", u)
	}

	h.Undo()
	if !s.Matches(drawn) {
		t.Error("undoing a clear did not bring the drawing back")
	}
}

func TestLimitDropsOldest(t *testing.T) {
	s, h := setup(t, WithLimit(2))
	for i := 0; i < 4; i++ {
		s.Set(i, 0, raster.Black)
		h.Commit()
	}
	if u, _ := h.Depth(); u != 2 {
		t.Fatalf("undo depth = %d, want 2", u)
	}
	h.Undo()
	if c, _ := s.At(2, 0); c != raster.Black {
		t.Error("undo within the limit restored the wrong state")
	}
	if c, _ := s.At(3, 0); c != raster.White {
		t.Error("undo did not remove the newest stroke")
	}
	h.Undo()
	if !blank(t, s) {
		t.Error("undo past the limit should fall back to the background")
	}
}

func TestSnapshotsAreIsolatedFromLiveSurface(t *testing.T) {
	s, h := setup(t)
	s.Set(0, 0, raster.Black)
	h.Commit()
	stored := h.Top()

	s.Set(1, 1, raster.Black)
	if c, _ := stored.At(1, 1); c != raster.White {
		t.Error("drawing after commit altered the stored snapshot")
	}
}

func TestLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s, h := setup(t, WithLogger(l))
	s.Set(0, 0, raster.Black)
	h.Commit()
	h.Undo()
	if !bytes.Contains(buf.Bytes(), []byte("commit")) || !bytes.Contains(buf.Bytes(), []byte("undo")) {
		t.Errorf("expected commit and undo log lines, got %q", buf.String())
	}
}
