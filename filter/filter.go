package filter

import (
	"fmt"
	"strings"

	"github.com/tsawler/folio/raster"
)

// Kind identifies a tone filter. It is a closed enumeration: entries carry
// exactly one Kind, fixed at confirmation time.
type Kind int

const (
	// None applies no filter.
	None Kind = iota
	// Grayscale converts to luma-weighted gray.
	Grayscale
	// Monochrome applies adaptive binarization for a scanned look.
	Monochrome
	// Enhanced boosts contrast and saturation.
	Enhanced
)

// String returns the lowercase name of the filter kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Grayscale:
		return "grayscale"
	case Monochrome:
		return "monochrome"
	case Enhanced:
		return "enhanced"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Parse converts a filter name to its Kind. Matching is case-insensitive.
// An empty name parses as None.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "grayscale":
		return Grayscale, nil
	case "monochrome":
		return Monochrome, nil
	case "enhanced":
		return Enhanced, nil
	default:
		return None, fmt.Errorf("unknown filter %q", name)
	}
}

// Kinds returns all filter kinds in declaration order.
func Kinds() []Kind {
	return []Kind{None, Grayscale, Monochrome, Enhanced}
}

// Apply runs the filter identified by kind over the image. None returns the
// input unchanged; every other kind leaves the input untouched and returns a
// new image. Malformed input is reported as raster.ErrInvalidRaster.
func Apply(img *raster.Image, kind Kind) (*raster.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	switch kind {
	case None:
		return img, nil
	case Grayscale:
		return ToGrayscale(img)
	case Monochrome:
		return ToMonochrome(img)
	case Enhanced:
		return Enhance(img)
	default:
		return nil, fmt.Errorf("unknown filter kind %d", int(kind))
	}
}
