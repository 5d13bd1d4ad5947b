// Package export renders a board frame to a file format.
//
// Exports are one-way: nothing here can load a session back.
package export

import (
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"MyPaintBoard/internal/errors"
)

// Format is an export file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// PNG encodes img losslessly.
func PNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(w, img); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return nil
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".pdf":
		return FormatPDF, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported export extension %q (want .png or .pdf)", filepath.Ext(path))
}

// Write encodes img in format f.
func Write(w io.Writer, f Format, img image.Image) error {
	switch f {
	case FormatPNG:
		return PNG(w, img)
	case FormatPDF:
		return PDF(w, img)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported export format %q", f)
}
