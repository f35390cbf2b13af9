package raster

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/tsawler/folio/format"
)

// DefaultJPEGQuality is used when a caller passes a non-positive quality.
const DefaultJPEGQuality = 90

// Encode writes the image to w in the given payload format. JPEG carries no
// alpha channel, so JPEG output is flattened onto a white background first.
// Quality applies to JPEG only; values outside 1-100 fall back to
// DefaultJPEGQuality.
func Encode(w io.Writer, img *Image, f format.Format, quality int) error {
	if err := img.Validate(); err != nil {
		return err
	}

	switch f {
	case format.JPEG:
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		flat := flattenOnWhite(img)
		if err := jpeg.Encode(w, flat.ToNRGBA(), &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encoding JPEG: %w", err)
		}
		return nil

	case format.PNG:
		if err := png.Encode(w, img.ToNRGBA()); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("encoding %s: unsupported payload format", f)
	}
}

// EncodeBytes encodes the image into an in-memory payload.
func EncodeBytes(img *Image, f format.Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// flattenOnWhite composites the image over an opaque white background.
// Images that are already fully opaque are returned unchanged.
func flattenOnWhite(img *Image) *Image {
	opaque := true
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			opaque = false
			break
		}
	}
	if opaque {
		return img
	}

	out := img.Clone()
	for i := 0; i < len(out.Pix); i += 4 {
		a := uint32(out.Pix[i+3])
		if a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			v := uint32(out.Pix[i+c])
			out.Pix[i+c] = uint8((v*a + 255*(255-a) + 127) / 255)
		}
		out.Pix[i+3] = 255
	}
	return out
}
