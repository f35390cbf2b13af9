package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/tsawler/folio/assemble"
	"github.com/tsawler/folio/format"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/raster"
)

// Writer renders images onto PDF pages. It is created with one page already
// open; BeginPage starts the next one. The document is held in memory until
// Output or WriteFile.
type Writer struct {
	doc *gofpdf.Fpdf
	seq int
}

var _ assemble.PageWriter = (*Writer)(nil)

// NewWriter returns a Writer producing portrait pages of the given size.
func NewWriter(size layout.PaperSize) *Writer {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return &Writer{doc: doc}
}

// BeginPage opens the next page.
func (w *Writer) BeginPage() error {
	w.doc.AddPage()
	return w.doc.Error()
}

// PlaceImage draws an encoded image payload into the placement rectangle on
// the current page. The payload format is sniffed from its magic bytes;
// formats the PDF cannot embed are transcoded to PNG.
func (w *Writer) PlaceImage(payload []byte, pl layout.Placement) error {
	f := format.DetectFromMagic(payload)
	if f == format.Unknown {
		return fmt.Errorf("image payload format not recognized")
	}
	if !f.Embeddable() {
		img, err := raster.DecodeBytes(payload)
		if err != nil {
			return fmt.Errorf("transcode %s payload: %w", f, err)
		}
		payload, err = raster.EncodeBytes(img, format.PNG, 0)
		if err != nil {
			return fmt.Errorf("transcode %s payload: %w", f, err)
		}
		f = format.PNG
	}

	w.seq++
	name := fmt.Sprintf("img-%d", w.seq)
	opts := gofpdf.ImageOptions{ImageType: f.ImageType()}
	w.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(payload))
	if err := w.doc.Error(); err != nil {
		return fmt.Errorf("register image: %w", err)
	}

	w.doc.ImageOptions(name, pl.X, pl.Y, pl.Width, pl.Height, false, opts, 0, "")
	return w.doc.Error()
}

// PageCount reports the number of pages opened so far.
func (w *Writer) PageCount() int {
	return w.doc.PageCount()
}

// Output finalizes the document and writes it to out.
func (w *Writer) Output(out io.Writer) error {
	return w.doc.Output(out)
}

// WriteFile finalizes the document and writes it to path. The file is not
// created if the document already carries an error.
func (w *Writer) WriteFile(path string) error {
	if err := w.doc.Error(); err != nil {
		return err
	}
	return w.doc.OutputFileAndClose(path)
}
