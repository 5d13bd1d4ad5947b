// Package history keeps linear undo/redo of full-surface snapshots.
//
// Entries are whole snapshots, never deltas. The top of the undo stack is what
// the surface shows after a commit; committing after an undo throws away the
// redo branch, so history never forks.
package history

import (
	"io"

	"github.com/charmbracelet/log"

	"MyPaintBoard/internal/raster"
)

// History owns the undo and redo stacks for one surface.
type History struct {
	surface    *raster.Surface
	background raster.Color
	undo       []*raster.Snapshot
	redo       []*raster.Snapshot
	limit      int
	logger     *log.Logger
}

// Option configures a History.
type Option func(*History)

// WithLimit caps the undo stack at n entries, dropping the oldest first.
// Zero or less means unbounded.
func WithLimit(n int) Option {
	return func(h *History) { h.limit = n }
}

func WithLogger(l *log.Logger) Option {
	return func(h *History) {
		if l != nil {
			h.logger = l
		}
	}
}

// New creates an empty history for s. background is what Undo falls back to
// once there is no earlier state and what Reset paints.
func New(s *raster.Surface, background raster.Color, opts ...Option) *History {
	h := &History{
		surface:    s,
		background: background,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Commit records the current surface as the newest state and discards any
// redo entries.
func (h *History) Commit() {
	snap := h.surface.Snapshot()
	h.undo = append(h.undo, snap)
	if dropped := len(h.redo); dropped > 0 {
		h.logger.Debug("redo branch discarded", "entries", dropped)
	}
	h.redo = nil
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo[0] = nil
		h.undo = h.undo[1:]
	}
	h.logger.Debug("commit", "snapshot", snap.ID(), "undo", len(h.undo))
}

// Undo steps back one state. With nothing left to show it repaints the
// background rather than the discarded snapshot. Returns false when there was
// nothing to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	top := h.undo[len(h.undo)-1]
	h.undo[len(h.undo)-1] = nil
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, top)

	if len(h.undo) == 0 {
		h.surface.FillAll(h.background)
	} else {
		h.surface.Restore(h.undo[len(h.undo)-1])
	}
	h.logger.Debug("undo", "snapshot", top.ID(), "undo", len(h.undo), "redo", len(h.redo))
	return true
}

// Redo re-applies the most recently undone state. Returns false when there
// was nothing to redo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	top := h.redo[len(h.redo)-1]
	h.redo[len(h.redo)-1] = nil
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, top)
	h.surface.Restore(top)
	h.logger.Debug("redo", "snapshot", top.ID(), "undo", len(h.undo), "redo", len(h.redo))
	return true
}

// Reset paints the background. The cleared state is committed only when
// there is history to return to, so clearing an untouched canvas adds no
// entry.
func (h *History) Reset() {
	h.surface.FillAll(h.background)
	if len(h.undo) == 0 {
		return
	}
	h.Commit()
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (h *History) Depth() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// Top returns the newest undo entry, or nil.
func (h *History) Top() *raster.Snapshot {
	if len(h.undo) == 0 {
		return nil
	}
	return h.undo[len(h.undo)-1]
}

func (h *History) Background() raster.Color { return h.background }
