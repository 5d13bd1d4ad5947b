package export

import (
	"bytes"
	"image"
	"io"

	"github.com/jung-kurt/gofpdf"

	"MyPaintBoard/internal/errors"
)

// PDF writes img as a single page sized to the image, one point per pixel.
func PDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return errors.New(errors.ErrCodeInvalidInput, "cannot export an empty image")
	}

	var encoded bytes.Buffer
	if err := PNG(&encoded, img); err != nil {
		return err
	}

	wd, ht := float64(b.Dx()), float64(b.Dy())
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("board", opts, &encoded)
	p.ImageOptions("board", 0, 0, wd, ht, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write pdf")
	}
	return nil
}
