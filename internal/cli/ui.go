package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleLink    = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", StyleSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", StyleWarning.Render(iconWarning), fmt.Sprintf(format, args...))
}

// printDetail prints an indented "label → value" line.
func printDetail(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s %s\n", StyleDim.Render(label), StyleDim.Render(iconArrow), value)
}
