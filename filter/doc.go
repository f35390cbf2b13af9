// Package filter provides the pixel-level tone filters applied to images
// before they are queued for assembly.
//
// Filters operate on the 8-bit RGBA buffer of a raster.Image. They are pure:
// deterministic, alpha-preserving, and without side effects on the input.
// Every filter returns a new image except None, which returns its input
// untouched.
//
// # Supported Filters
//
// Grayscale conversion by luma weighting:
//
//	out, err := filter.ToGrayscale(img)
//
// Adaptive monochrome binarization for a scanned-document look:
//
//	out, err := filter.ToMonochrome(img)
//
// Contrast and saturation enhancement:
//
//	out, err := filter.Enhance(img)
//
// # Dispatch by Kind
//
// Apply selects a filter from the closed Kind enumeration, which is the form
// queued entries carry:
//
//	out, err := filter.Apply(img, filter.Monochrome)
//
// Kind values round-trip through their string forms via String and Parse.
package filter
