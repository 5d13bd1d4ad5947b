package state

import (
	"MyPaintBoard/internal/errors"
)

// Action is one scripted or remote input: a pointer event or a toolbar
// command. It is the message shape of replay scripts and of the WebSocket
// protocol.
type Action struct {
	Op    string `json:"op"`
	X     int    `json:"x,omitempty"`
	Y     int    `json:"y,omitempty"`
	Value string `json:"value,omitempty"`
	Width int    `json:"width,omitempty"`
}

const (
	OpTool  = "tool"
	OpColor = "color"
	OpWidth = "width"
	OpUndo  = "undo"
	OpRedo  = "redo"
	OpClear = "clear"
)

// Apply performs a and reports whether the surface or its history changed.
// Rejected input returns an error and leaves the session as it was.
func (s *Session) Apply(a Action) (bool, error) {
	if kind, ok := ParseEventKind(a.Op); ok {
		return s.Pointer(Event{Kind: kind, X: a.X, Y: a.Y}), nil
	}
	switch a.Op {
	case OpTool:
		return false, s.SelectTool(a.Value)
	case OpColor:
		return false, s.SetColor(a.Value)
	case OpWidth:
		return false, s.SetWidth(a.Width)
	case OpUndo:
		return s.Undo(), nil
	case OpRedo:
		return s.Redo(), nil
	case OpClear:
		s.ClearCanvas()
		return true, nil
	}
	return false, errors.New(errors.ErrCodeInvalidAction, "unknown op %q", a.Op)
}

// ApplyAll runs actions in order and stops at the first rejected one. It
// returns how many actions were applied.
func (s *Session) ApplyAll(actions []Action) (int, error) {
	for i, a := range actions {
		if _, err := s.Apply(a); err != nil {
			return i, errors.Wrap(errors.GetCode(err), err, "action %d (%s)", i, a.Op)
		}
	}
	return len(actions), nil
}
