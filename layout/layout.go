package layout

import (
	"errors"
	"fmt"
)

// Measurements are in PDF points (1/72 inch).
const (
	// PointsPerCM converts centimeters to points.
	PointsPerCM = 28.35

	// DefaultMargin is the standard page margin of 0.4 cm in points.
	DefaultMargin = 0.4 * PointsPerCM
)

// ErrInvalidDimensions is returned when an image or page dimension is zero or
// negative, or when the margin consumes the entire page.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Placement is the rectangle an image occupies on a page. Coordinates are in
// points with the origin at the top-left corner of the page.
type Placement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the right edge X coordinate.
func (p Placement) Right() float64 {
	return p.X + p.Width
}

// Bottom returns the bottom edge Y coordinate.
func (p Placement) Bottom() float64 {
	return p.Y + p.Height
}

// Fit computes the placement of an image on a page. The image is scaled to
// fill the usable area, the page inset by marginPoints on every side, while
// preserving its aspect ratio. It is centered along whichever axis it does
// not fill: an image relatively wider than the usable area spans the usable
// width and is centered vertically, otherwise it spans the usable height and
// is centered horizontally.
func Fit(imgWidth, imgHeight, pageWidth, pageHeight, marginPoints float64) (Placement, error) {
	if imgWidth <= 0 || imgHeight <= 0 {
		return Placement{}, fmt.Errorf("image %gx%g: %w", imgWidth, imgHeight, ErrInvalidDimensions)
	}
	if pageWidth <= 0 || pageHeight <= 0 {
		return Placement{}, fmt.Errorf("page %gx%g: %w", pageWidth, pageHeight, ErrInvalidDimensions)
	}
	if marginPoints < 0 {
		return Placement{}, fmt.Errorf("margin %g: %w", marginPoints, ErrInvalidDimensions)
	}

	usableWidth := pageWidth - 2*marginPoints
	usableHeight := pageHeight - 2*marginPoints
	if usableWidth <= 0 || usableHeight <= 0 {
		return Placement{}, fmt.Errorf("margin %g leaves no usable area on a %gx%g page: %w",
			marginPoints, pageWidth, pageHeight, ErrInvalidDimensions)
	}

	imgRatio := imgWidth / imgHeight
	areaRatio := usableWidth / usableHeight

	var pl Placement
	if imgRatio > areaRatio {
		pl.Width = usableWidth
		pl.Height = usableWidth / imgRatio
		pl.X = marginPoints
		pl.Y = marginPoints + (usableHeight-pl.Height)/2
	} else {
		pl.Height = usableHeight
		pl.Width = usableHeight * imgRatio
		pl.Y = marginPoints
		pl.X = marginPoints + (usableWidth-pl.Width)/2
	}
	return pl, nil
}
