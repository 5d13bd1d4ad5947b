package state

import (
	"strings"

	"MyPaintBoard/internal/errors"
)

// Tool is the mutually exclusive drawing tool selection.
type Tool int

const (
	ToolPen Tool = iota
	ToolBucket
)

var toolNames = map[Tool]string{
	ToolPen:    "pen",
	ToolBucket: "bucket",
}

func (t Tool) String() string {
	if n, ok := toolNames[t]; ok {
		return n
	}
	return "unknown"
}

// ParseTool maps a toolbar name to a Tool.
func ParseTool(name string) (Tool, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for t, tn := range toolNames {
		if tn == n {
			return t, nil
		}
	}
	return ToolPen, errors.New(errors.ErrCodeInvalidTool, "unknown tool %q", name)
}

// EventKind is one of the four pointer events a front end delivers.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

var eventNames = map[EventKind]string{
	PointerDown:  "down",
	PointerMove:  "move",
	PointerUp:    "up",
	PointerLeave: "leave",
}

func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseEventKind maps "down", "move", "up" and "leave" to an EventKind.
func ParseEventKind(name string) (EventKind, bool) {
	for k, n := range eventNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Event is a pointer event already translated into surface pixel coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}
