package ui

import (
	"fyne.io/fyne/v2"

	"MyPaintBoard/internal/export"
)

// Export renders the current surface to writer as a PNG or a single-page
// PDF, chosen by the file extension. The writer is always closed.
func (b *BoardWidget) Export(writer fyne.URIWriteCloser) error {
	defer writer.Close()

	format, err := export.FormatFromPath(writer.URI().Name())
	if err != nil {
		return err
	}
	if err := export.Write(writer, format, b.session.Frame()); err != nil {
		return err
	}
	b.logger.Info("board exported", "uri", writer.URI().String(), "format", format)
	return nil
}
