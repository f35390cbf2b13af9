package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/tsawler/folio/format"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/raster"
)

func encodedImage(t *testing.T, f format.Format, width, height int) []byte {
	t.Helper()
	img, err := raster.New(width, height)
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", width, height, err)
	}
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	if f == format.BMP {
		var buf bytes.Buffer
		if err := bmp.Encode(&buf, img.ToNRGBA()); err != nil {
			t.Fatalf("bmp.Encode() error = %v", err)
		}
		return buf.Bytes()
	}

	payload, err := raster.EncodeBytes(img, f, 0)
	if err != nil {
		t.Fatalf("EncodeBytes(%v) error = %v", f, err)
	}
	return payload
}

func TestNewWriter_OpensFirstPage(t *testing.T) {
	w := NewWriter(layout.A4)
	if got := w.PageCount(); got != 1 {
		t.Errorf("PageCount() = %d, want 1", got)
	}
}

func TestWriter_BeginPage(t *testing.T) {
	w := NewWriter(layout.A4)
	for i := 0; i < 2; i++ {
		if err := w.BeginPage(); err != nil {
			t.Fatalf("BeginPage() error = %v", err)
		}
	}
	if got := w.PageCount(); got != 3 {
		t.Errorf("PageCount() = %d, want 3", got)
	}
}

func TestWriter_Output(t *testing.T) {
	tests := []struct {
		name string
		f    format.Format
	}{
		{"png payload", format.PNG},
		{"jpeg payload", format.JPEG},
		{"bmp payload is transcoded", format.BMP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(layout.A4)
			payload := encodedImage(t, tt.f, 60, 40)
			pl := layout.Placement{X: 11.34, Y: 200, Width: 572.6, Height: 381.73}

			if err := w.PlaceImage(payload, pl); err != nil {
				t.Fatalf("PlaceImage() error = %v", err)
			}

			var buf bytes.Buffer
			if err := w.Output(&buf); err != nil {
				t.Fatalf("Output() error = %v", err)
			}
			if !strings.HasPrefix(buf.String(), "%PDF-") {
				t.Errorf("output starts with %q, want a PDF header", buf.String()[:8])
			}
			if buf.Len() < 500 {
				t.Errorf("output is %d bytes, too small to carry an image", buf.Len())
			}
		})
	}
}

func TestWriter_PlaceImage_UnknownPayload(t *testing.T) {
	w := NewWriter(layout.A4)
	err := w.PlaceImage([]byte("definitely not an image"), layout.Placement{Width: 10, Height: 10})
	if err == nil {
		t.Error("PlaceImage(garbage) error = nil, want error")
	}
}

func TestWriter_MultiplePagesOneImageEach(t *testing.T) {
	w := NewWriter(layout.PaperSize{Name: "test", Width: 595, Height: 842})
	payload := encodedImage(t, format.PNG, 40, 30)

	for i := 0; i < 3; i++ {
		if i > 0 {
			if err := w.BeginPage(); err != nil {
				t.Fatalf("BeginPage() error = %v", err)
			}
		}
		if err := w.PlaceImage(payload, layout.Placement{X: 10, Y: 10, Width: 100, Height: 75}); err != nil {
			t.Fatalf("PlaceImage() page %d error = %v", i+1, err)
		}
	}

	if got := w.PageCount(); got != 3 {
		t.Errorf("PageCount() = %d, want 3", got)
	}

	var buf bytes.Buffer
	if err := w.Output(&buf); err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	// gofpdf records the page count in the document catalog.
	if !bytes.Contains(buf.Bytes(), []byte("/Count 3")) {
		t.Error("output does not declare 3 pages")
	}
}

func TestWriter_WriteFile(t *testing.T) {
	w := NewWriter(layout.Letter)
	payload := encodedImage(t, format.JPEG, 32, 32)
	if err := w.PlaceImage(payload, layout.Placement{X: 50, Y: 50, Width: 200, Height: 200}); err != nil {
		t.Fatalf("PlaceImage() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := w.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("written file does not start with a PDF header")
	}
}
