package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"no cause", New(ErrCodeInvalidColor, "bad %q", "#zz"), `INVALID_COLOR: bad "#zz"`},
		{"with cause", Wrap(ErrCodeInvalidConfig, errors.New("eof"), "read %s", "a.toml"), "INVALID_CONFIG: read a.toml: eof"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsThroughWrapping(t *testing.T) {
	base := New(ErrCodeInvalidTool, "unknown tool %q", "laser")
	wrapped := fmt.Errorf("select: %w", base)

	if !Is(wrapped, ErrCodeInvalidTool) {
		t.Error("Is() should find code through fmt.Errorf wrapping")
	}
	if Is(wrapped, ErrCodeInvalidColor) {
		t.Error("Is() matched the wrong code")
	}
	if got := GetCode(wrapped); got != ErrCodeInvalidTool {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidTool)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "encode")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestMessage(t *testing.T) {
	if got := Message(New(ErrCodeInvalidInput, "width %d", 0)); got != "width 0" {
		t.Errorf("Message() = %q", got)
	}
	if got := Message(errors.New("plain")); got != "plain" {
		t.Errorf("Message(plain) = %q", got)
	}
	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q", got)
	}
}
