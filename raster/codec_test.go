package raster

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/folio/format"
)

func TestEncodeDecode_PNGRoundTrip(t *testing.T) {
	img := newFilled(t, 12, 9, 200, 100, 50, 255)
	// Give the corner pixels distinct values, including partial alpha.
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = 1, 2, 3, 4
	last := img.PixOffset(11, 8)
	img.Pix[last+3] = 128

	payload, err := EncodeBytes(img, format.PNG, 0)
	if err != nil {
		t.Fatalf("EncodeBytes(PNG) error = %v", err)
	}
	if got := format.DetectFromMagic(payload); got != format.PNG {
		t.Fatalf("DetectFromMagic(payload) = %v, want PNG", got)
	}

	decoded, err := DecodeBytes(payload)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if decoded.Width != img.Width || decoded.Height != img.Height {
		t.Fatalf("decoded dimensions = %dx%d, want %dx%d",
			decoded.Width, decoded.Height, img.Width, img.Height)
	}
	if !bytes.Equal(decoded.Pix, img.Pix) {
		t.Error("PNG round trip changed pixel data")
	}
}

func TestEncodeDecode_JPEG(t *testing.T) {
	img := newFilled(t, 16, 16, 180, 90, 45, 255)

	payload, err := EncodeBytes(img, format.JPEG, 90)
	if err != nil {
		t.Fatalf("EncodeBytes(JPEG) error = %v", err)
	}
	if got := format.DetectFromMagic(payload); got != format.JPEG {
		t.Fatalf("DetectFromMagic(payload) = %v, want JPEG", got)
	}

	decoded, err := DecodeBytes(payload)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if decoded.Width != 16 || decoded.Height != 16 {
		t.Fatalf("decoded dimensions = %dx%d, want 16x16", decoded.Width, decoded.Height)
	}

	// Lossy, but a uniform frame stays close.
	for i := 0; i < len(decoded.Pix); i += 4 {
		for c, want := range []uint8{180, 90, 45} {
			got := decoded.Pix[i+c]
			diff := int(got) - int(want)
			if diff < -6 || diff > 6 {
				t.Fatalf("pixel %d channel %d = %d, want %d +-6", i/4, c, got, want)
			}
		}
	}
}

func TestEncode_JPEGFlattensAlpha(t *testing.T) {
	// Half-transparent red should land on white: full red, half green/blue.
	img := newFilled(t, 8, 8, 255, 0, 0, 128)

	payload, err := EncodeBytes(img, format.JPEG, 95)
	if err != nil {
		t.Fatalf("EncodeBytes(JPEG) error = %v", err)
	}
	decoded, err := DecodeBytes(payload)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}

	i := decoded.PixOffset(4, 4)
	r, g, b, a := decoded.Pix[i], decoded.Pix[i+1], decoded.Pix[i+2], decoded.Pix[i+3]
	if a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
	if r < 245 {
		t.Errorf("red = %d, want near 255", r)
	}
	if g < 115 || g > 140 || b < 115 || b > 140 {
		t.Errorf("green, blue = %d, %d, want near 127 (composited on white)", g, b)
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	img := newFilled(t, 4, 4, 0, 0, 0, 255)
	if _, err := EncodeBytes(img, format.TIFF, 0); err == nil {
		t.Error("EncodeBytes(TIFF) error = nil, want error")
	}
}

func TestEncode_InvalidRaster(t *testing.T) {
	img := &Image{Width: 2, Height: 2, Pix: make([]uint8, 5)}
	if _, err := EncodeBytes(img, format.PNG, 0); !errors.Is(err, ErrInvalidRaster) {
		t.Errorf("EncodeBytes(malformed) error = %v, want ErrInvalidRaster", err)
	}
}

func TestDecodeBytes_Garbage(t *testing.T) {
	if _, err := DecodeBytes([]byte("not an image at all")); err == nil {
		t.Error("DecodeBytes(garbage) error = nil, want error")
	}
}

func TestDecodeFile(t *testing.T) {
	img := newFilled(t, 6, 4, 33, 66, 99, 255)
	payload, err := EncodeBytes(img, format.PNG, 0)
	if err != nil {
		t.Fatalf("EncodeBytes() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "fixture.png")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	decoded, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if decoded.Width != 6 || decoded.Height != 4 {
		t.Errorf("DecodeFile() dimensions = %dx%d, want 6x4", decoded.Width, decoded.Height)
	}
	if !bytes.Equal(decoded.Pix, img.Pix) {
		t.Error("DecodeFile() pixel data differs from encoded image")
	}
}

func TestDecodeFile_Missing(t *testing.T) {
	if _, err := DecodeFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("DecodeFile(missing) error = nil, want error")
	}
}
