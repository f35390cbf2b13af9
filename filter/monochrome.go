package filter

import (
	"math"

	"github.com/tsawler/folio/raster"
)

const (
	// Brightness boost applied to the luma channel before thresholding.
	monoBoost = 1.18
	// Fraction of the mean sampled luma used as the global threshold.
	monoThresholdScale = 0.92
	// The global threshold is clamped to this band so uniform black and
	// uniform white frames binarize cleanly instead of landing in the ramp,
	// even after edge relaxation.
	monoThresholdFloor = 30.0
	monoThresholdCeil  = 225.0
	// Every n-th luma value is sampled for the global threshold.
	monoSampleStride = 10
	// Half-width of the linear ramp between full black and full white.
	monoRampHalf = 25.0
	// Pixels within one block of the frame edge get a relaxed threshold,
	// scaled between monoEdgeRelax and 1 by their distance to the edge.
	monoEdgeRelax    = 0.85
	monoBlockDivisor = 16
)

// ToMonochrome applies adaptive binarization, producing the high-contrast
// black-and-white look of a document scanner. A global threshold is derived
// from the brightened luma histogram and relaxed near the frame edges, then
// each pixel is mapped to black, white, or a short linear ramp between them.
// Alpha is untouched. The input is not modified.
func ToMonochrome(img *raster.Image) (*raster.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	out := img.Clone()
	w, h := out.Width, out.Height
	pix := out.Pix

	// Phase one: brightened luma channel.
	lumas := make([]float64, w*h)
	for p := range lumas {
		i := p * 4
		l := luma(pix[i], pix[i+1], pix[i+2]) * monoBoost
		if l > 255 {
			l = 255
		}
		lumas[p] = l
	}

	// Global threshold from a sparse sample of the luma channel.
	var sum float64
	count := 0
	for p := 0; p < len(lumas); p += monoSampleStride {
		sum += lumas[p]
		count++
	}
	threshold := sum / float64(count) * monoThresholdScale
	if threshold < monoThresholdFloor {
		threshold = monoThresholdFloor
	}
	if threshold > monoThresholdCeil {
		threshold = monoThresholdCeil
	}

	blockSize := min(w, h) / monoBlockDivisor
	if blockSize < 1 {
		blockSize = 1
	}

	// Phase two: per-pixel thresholding with a ramp band.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			edgeDistance := min(x, w-1-x, y, h-1-y)
			edgeRatio := float64(edgeDistance) / float64(blockSize)
			if edgeRatio > 1 {
				edgeRatio = 1
			}

			local := threshold
			if edgeRatio < 1 {
				local = threshold * (monoEdgeRelax + (1-monoEdgeRelax)*edgeRatio)
			}

			p := y*w + x
			diff := lumas[p] - local

			var v uint8
			switch {
			case diff > monoRampHalf:
				v = 255
			case diff < -monoRampHalf:
				v = 0
			default:
				v = uint8(math.Round((diff + monoRampHalf) / (2 * monoRampHalf) * 255))
			}

			i := p * 4
			pix[i] = v
			pix[i+1] = v
			pix[i+2] = v
		}
	}

	return out, nil
}
