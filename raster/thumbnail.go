package raster

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// Thumbnail produces a preview-sized copy of the image bounded by
// maxWidth x maxHeight, preserving aspect ratio. Like Resize it never
// upscales, but it resamples with Lanczos, trading speed for the sharper
// output preview panes want.
func Thumbnail(img *Image, maxWidth, maxHeight int) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("thumbnail bounds %dx%d: %w", maxWidth, maxHeight, ErrInvalidDimensions)
	}

	if img.Width <= maxWidth && img.Height <= maxHeight {
		return img, nil
	}

	out := imaging.Fit(img.ToNRGBA(), maxWidth, maxHeight, imaging.Lanczos)
	return &Image{Width: out.Bounds().Dx(), Height: out.Bounds().Dy(), Pix: out.Pix}, nil
}
