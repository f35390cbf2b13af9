package filter

import (
	"math"

	"github.com/tsawler/folio/raster"
)

const (
	// Contrast stretch factor around the channel midpoint.
	enhanceContrast = 1.3
	// Saturation boost applied after the contrast step.
	enhanceSaturation = 1.1
)

// Enhance stretches contrast around the midpoint, then boosts saturation of
// the contrast-adjusted channels. Achromatic pixels pass through the
// saturation step unchanged. Alpha is untouched. The input is not modified.
func Enhance(img *raster.Image) (*raster.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	out := img.Clone()
	pix := out.Pix
	for i := 0; i < len(pix); i += 4 {
		r := stretch(pix[i])
		g := stretch(pix[i+1])
		b := stretch(pix[i+2])

		lo := math.Min(r, math.Min(g, b))
		hi := math.Max(r, math.Max(g, b))
		if hi != lo {
			r = clamp255(lo + (r-lo)*enhanceSaturation)
			g = clamp255(lo + (g-lo)*enhanceSaturation)
			b = clamp255(lo + (b-lo)*enhanceSaturation)
		}

		pix[i] = uint8(math.Round(r))
		pix[i+1] = uint8(math.Round(g))
		pix[i+2] = uint8(math.Round(b))
	}
	return out, nil
}

// stretch applies the midpoint contrast stretch to a single channel.
func stretch(c uint8) float64 {
	return clamp255(((float64(c)/255-0.5)*enhanceContrast + 0.5) * 255)
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
