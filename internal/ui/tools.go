package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MyPaintBoard/internal/state"
)

// Palette is the row of color swatches next to the tools.
var Palette = []color.NRGBA{
	{A: 255},
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 255, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// swatchValue is the value a swatch hands to the session, in the same
// rgb() form a browser reports for a computed background.
func swatchValue(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// NewToolbar builds the tool row. onExport opens the export dialog;
// onError reports rejected input.
func NewToolbar(board *BoardWidget, onExport func(), onError func(error)) fyne.CanvasObject {
	run := func(a state.Action) {
		if err := board.Run(a); err != nil && onError != nil {
			onError(err)
		}
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			run(state.Action{Op: state.OpTool, Value: state.ToolPen.String()})
		}), // Pen
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() {
			run(state.Action{Op: state.OpTool, Value: state.ToolBucket.String()})
		}), // Bucket
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			run(state.Action{Op: state.OpUndo})
		}),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() {
			run(state.Action{Op: state.OpRedo})
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			run(state.Action{Op: state.OpClear})
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if onExport != nil {
				onExport()
			}
		}),
	)

	// --- Color Palette ---
	onColorTapped := func(c color.NRGBA) {
		run(state.Action{Op: state.OpColor, Value: swatchValue(c)})
	}
	colorBox := container.NewHBox()
	for _, c := range Palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	hexEntry := widget.NewEntry()
	hexEntry.SetPlaceHolder("#RRGGBB")
	hexEntry.OnSubmitted = func(v string) {
		run(state.Action{Op: state.OpColor, Value: v})
	}
	hexContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(110, 35)), hexEntry)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(float64(board.Session().Info().Width))
	strokeSlider.OnChanged = func(val float64) {
		run(state.Action{Op: state.OpWidth, Width: int(val)})
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		hexContainer,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
