// Package state holds the drawing session: the surface, its history and the
// tool selection, plus the dispatcher that routes pointer events to the pen
// or the bucket.
//
// A Session serialises every operation. Front ends may call it from any
// goroutine, but each event still runs to completion before the next one
// starts.
package state

import (
	"image"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"MyPaintBoard/internal/errors"
	"MyPaintBoard/internal/fill"
	"MyPaintBoard/internal/history"
	"MyPaintBoard/internal/pen"
	"MyPaintBoard/internal/raster"
)

// Options configures a new Session.
type Options struct {
	Width, Height int
	Background    raster.Color
	Color         raster.Color
	StrokeWidth   int
	Tool          Tool
	HistoryLimit  int
	Logger        *log.Logger
}

// DefaultOptions mirrors a fresh browser canvas: 800x400, white, black 5px pen.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      400,
		Background:  raster.White,
		Color:       raster.Black,
		StrokeWidth: 5,
		Tool:        ToolPen,
	}
}

// Session is one drawing surface with its tools and history.
type Session struct {
	mu sync.Mutex

	id         uuid.UUID
	surface    *raster.Surface
	history    *history.History
	pen        *pen.Engine
	tool       Tool
	color      raster.Color
	width      int
	background raster.Color
	logger     *log.Logger
}

// NewSession creates a surface painted with the background color.
func NewSession(opts Options) (*Session, error) {
	surface, err := raster.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if opts.StrokeWidth < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "stroke width %d must be at least 1", opts.StrokeWidth)
	}
	if _, ok := toolNames[opts.Tool]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidTool, "unknown tool %d", opts.Tool)
	}

	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", id.String()[:8])

	bg := opts.Background.Opaque()
	surface.FillAll(bg)

	return &Session{
		id:         id,
		surface:    surface,
		history:    history.New(surface, bg, history.WithLimit(opts.HistoryLimit), history.WithLogger(logger)),
		pen:        pen.New(),
		tool:       opts.Tool,
		color:      opts.Color.Opaque(),
		width:      opts.StrokeWidth,
		background: bg,
		logger:     logger,
	}, nil
}

func (s *Session) ID() uuid.UUID { return s.id }

// Pointer dispatches one pointer event according to the current tool and
// reports whether the surface or its history changed.
//
//	event   pen                      bucket
//	down    start stroke             -
//	move    extend stroke            -
//	up      end stroke + commit      fill + commit
//	leave   end stroke + commit      -
func (s *Session) Pointer(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := image.Pt(ev.X, ev.Y)
	switch s.tool {
	case ToolBucket:
		if ev.Kind != PointerUp {
			return false
		}
		return s.floodFill(p)
	default:
		switch ev.Kind {
		case PointerDown:
			s.pen.Start(p)
			return false
		case PointerMove:
			return s.pen.Extend(s.surface, p, pen.Style{Color: s.color, Width: s.width})
		case PointerUp, PointerLeave:
			if !s.pen.End() {
				return false
			}
			s.history.Commit()
			return true
		}
	}
	return false
}

func (s *Session) floodFill(p image.Point) bool {
	res := fill.Fill(s.surface, p.X, p.Y, s.color)
	if !res.Changed() {
		s.logger.Debug("fill skipped", "x", p.X, "y", p.Y)
		return false
	}
	s.history.Commit()
	s.logger.Debug("fill", "x", p.X, "y", p.Y, "from", res.Start, "to", s.color, "pixels", res.Painted)
	return true
}

// SelectTool switches the tool for the next event. An unknown name leaves the
// selection unchanged.
func (s *Session) SelectTool(name string) error {
	t, err := ParseTool(name)
	if err != nil {
		return err
	}
	s.SetTool(t)
	return nil
}

func (s *Session) SetTool(t Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tool = t
	s.logger.Debug("tool selected", "tool", t)
}

// SetColor accepts "#RRGGBB", "#RGB" or "rgb(r, g, b)". Malformed input keeps
// the previous color.
func (s *Session) SetColor(value string) error {
	c, err := raster.ParseColor(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = c
	s.logger.Debug("color set", "color", c)
	return nil
}

// SetWidth sets the pen diameter in pixels.
func (s *Session) SetWidth(n int) error {
	if n < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "stroke width %d must be at least 1", n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = n
	return nil
}

// Undo reports whether there was anything to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Undo()
}

// Redo reports whether there was anything to redo.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Redo()
}

// ClearCanvas paints the background; the clear is undoable once anything has
// been committed.
func (s *Session) ClearCanvas() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Reset()
	s.logger.Debug("canvas cleared")
}

// Frame returns a copy of the surface for display or export.
func (s *Session) Frame() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.Image()
}

// Snapshot captures the surface as it is now.
func (s *Session) Snapshot() *raster.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.Snapshot()
}

// Pixel returns the color at (x, y).
func (s *Session) Pixel(x, y int) (raster.Color, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.At(x, y)
}

// Info is a read-only view of the session for front ends.
type Info struct {
	ID       string `json:"id"`
	Tool     string `json:"tool"`
	Color    string `json:"color"`
	Width    int    `json:"width"`
	Undo     int    `json:"undo"`
	Redo     int    `json:"redo"`
	Stroking bool   `json:"stroking"`
	Canvas   [2]int `json:"canvas"`
}

func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, r := s.history.Depth()
	return Info{
		ID:       s.id.String(),
		Tool:     s.tool.String(),
		Color:    s.color.Hex(),
		Width:    s.width,
		Undo:     u,
		Redo:     r,
		Stroking: s.pen.Active(),
		Canvas:   [2]int{s.surface.Width(), s.surface.Height()},
	}
}
