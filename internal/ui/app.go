package ui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"MyPaintBoard/internal/state"
)

// statusText summarises the session for the status bar.
func statusText(info state.Info) string {
	return fmt.Sprintf("%s  %s  %dpx  undo %d  redo %d", info.Tool, info.Color, info.Width, info.Undo, info.Redo)
}

// NewWindow lays out the board, toolbar and status bar in a window of a.
func NewWindow(a fyne.App, session *state.Session, logger *log.Logger) fyne.Window {
	myWindow := a.NewWindow("MyPaintBoard")

	board := NewBoardWidget(session, logger)
	status := widget.NewLabel(statusText(session.Info()))
	board.OnChanged = func(info state.Info) {
		status.SetText(statusText(info))
	}

	showError := func(err error) {
		dialog.ShowError(err, myWindow)
	}
	onExport := func() {
		dialog.ShowFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil {
				showError(err)
				return
			}
			if w == nil {
				return
			}
			if err := board.Export(w); err != nil {
				showError(err)
			}
		}, myWindow)
	}

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(board, onExport, showError)

	shortcut := func(key fyne.KeyName, op string) {
		myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
			board.Run(state.Action{Op: op})
		})
	}
	shortcut(fyne.KeyZ, state.OpUndo)
	shortcut(fyne.KeyY, state.OpRedo)

	// Set up the main layout
	content := container.NewBorder(toolbar, status, nil, nil, container.NewCenter(board))
	myWindow.SetContent(content)
	return myWindow
}

// RunApp opens the desktop board and blocks until the window closes.
func RunApp(session *state.Session, logger *log.Logger) {
	myApp := app.New()
	myWindow := NewWindow(myApp, session, logger)
	logger.Info("desktop board opened", "session", session.ID().String()[:8])
	myWindow.ShowAndRun()
}
