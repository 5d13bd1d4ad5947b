package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"MyPaintBoard/internal/errors"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(3, 2, color.RGBA{R: 255, A: 255})
	return img
}

func TestPNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("bounds = %v", got.Bounds())
	}
	r, g, b, _ := got.At(3, 2).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("pixel (3,2) = %v", got.At(3, 2))
	}
}

func TestPDFHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestPDFRejectsEmptyImage(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, image.NewRGBA(image.Rectangle{}))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("PDF(empty) error = %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.png", FormatPNG, false},
		{"OUT.PDF", FormatPDF, false},
		{"dir/board.pdf", FormatPDF, false},
		{"board.svg", "", true},
		{"board", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Format("gif"), testImage()); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Write(gif) error = %v", err)
	}
}
