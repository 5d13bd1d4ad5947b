package ui

import (
	"image"
	"math"

	"github.com/charmbracelet/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"MyPaintBoard/internal/state"
)

// BoardWidget shows a session's surface and feeds it pointer events.
// Mouse and touch input both map to down, move, up and leave.
type BoardWidget struct {
	widget.BaseWidget
	session *state.Session
	logger  *log.Logger

	// OnChanged runs after every input that may have changed the session.
	OnChanged func(state.Info)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget(s *state.Session, logger *log.Logger) *BoardWidget {
	b := &BoardWidget{session: s, logger: logger}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Session() *state.Session { return b.session }

// pixel maps a widget position onto surface coordinates. The surface is
// stretched over the widget, so positions scale by canvas/widget size.
func (b *BoardWidget) pixel(pos fyne.Position) (int, int) {
	info := b.session.Info()
	w, h := float32(info.Canvas[0]), float32(info.Canvas[1])
	size := b.Size()
	sx, sy := float32(1), float32(1)
	if size.Width > 0 && size.Height > 0 {
		sx, sy = w/size.Width, h/size.Height
	}
	return int(math.Floor(float64(pos.X * sx))), int(math.Floor(float64(pos.Y * sy)))
}

func (b *BoardWidget) pointer(kind state.EventKind, pos fyne.Position) {
	x, y := b.pixel(pos)
	if b.session.Pointer(state.Event{Kind: kind, X: x, Y: y}) {
		b.Refresh()
	}
	b.changed()
}

// Run applies a toolbar command and redraws if it changed the surface.
func (b *BoardWidget) Run(a state.Action) error {
	changed, err := b.session.Apply(a)
	if err != nil {
		b.logger.Warn("action rejected", "op", a.Op, "err", err)
		return err
	}
	if changed {
		b.Refresh()
	}
	b.changed()
	return nil
}

func (b *BoardWidget) changed() {
	if b.OnChanged != nil {
		b.OnChanged(b.session.Info())
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pointer(state.PointerDown, e.Position)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pointer(state.PointerUp, e.Position)
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.session.Info().Stroking {
		b.pointer(state.PointerMove, e.Position)
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

// MouseOut ends a stroke that leaves the board. The last position is not
// reported here, so the stroke is closed where it was last extended.
func (b *BoardWidget) MouseOut() {
	if b.session.Info().Stroking {
		b.pointer(state.PointerLeave, fyne.Position{})
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.pointer(state.PointerMove, e.Position)
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.pointer(state.PointerDown, e.Position)
}

func (b *BoardWidget) TouchUp(e *mobile.TouchEvent) {
	b.pointer(state.PointerUp, e.Position)
}

func (b *BoardWidget) TouchCancel(e *mobile.TouchEvent) {
	b.pointer(state.PointerLeave, e.Position)
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(b.session.Frame())
	img.ScaleMode = canvas.ImageScalePixels
	img.FillMode = canvas.ImageFillStretch
	return &boardWidgetRenderer{board: b, image: img}
}

type boardWidgetRenderer struct {
	board *BoardWidget
	image *canvas.Image
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *boardWidgetRenderer) Refresh() {
	r.image.Image = r.board.session.Frame()
	r.image.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.image.Resize(size)
}

// MinSize shows the surface one pixel per unit.
func (r *boardWidgetRenderer) MinSize() fyne.Size {
	b := r.image.Image.(*image.RGBA).Bounds()
	return fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
}

func (r *boardWidgetRenderer) Destroy() {}
