package raster

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Encoding size cap applied before queue payloads are encoded: A4 at 150 DPI.
const (
	MaxEncodeWidth  = 1240
	MaxEncodeHeight = 1754
)

// Resize scales the image down to fit within maxWidth x maxHeight,
// preserving aspect ratio. An image that already fits is returned unchanged;
// Resize never upscales. Output dimensions are rounded to the nearest pixel
// with a floor of 1x1. Resampling uses Catmull-Rom interpolation.
func Resize(img *Image, maxWidth, maxHeight int) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("resize bounds %dx%d: %w", maxWidth, maxHeight, ErrInvalidDimensions)
	}

	if img.Width <= maxWidth && img.Height <= maxHeight {
		return img, nil
	}

	ratio := math.Min(
		float64(maxWidth)/float64(img.Width),
		float64(maxHeight)/float64(img.Height),
	)

	w := int(math.Round(float64(img.Width) * ratio))
	h := int(math.Round(float64(img.Height) * ratio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	src := img.ToNRGBA()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return &Image{Width: w, Height: h, Pix: dst.Pix}, nil
}
