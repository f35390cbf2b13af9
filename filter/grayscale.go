package filter

import (
	"math"

	"github.com/tsawler/folio/raster"
)

// Luma weights per ITU-R BT.601.
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// ToGrayscale converts the image to gray by setting each pixel's RGB
// channels to its luma. Alpha is untouched. The input is not modified.
func ToGrayscale(img *raster.Image) (*raster.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	out := img.Clone()
	pix := out.Pix
	for i := 0; i < len(pix); i += 4 {
		l := luma(pix[i], pix[i+1], pix[i+2])
		v := uint8(math.Round(l))
		pix[i] = v
		pix[i+1] = v
		pix[i+2] = v
	}
	return out, nil
}

// luma returns the weighted brightness of an RGB triple, in [0, 255].
func luma(r, g, b uint8) float64 {
	return lumaRed*float64(r) + lumaGreen*float64(g) + lumaBlue*float64(b)
}
