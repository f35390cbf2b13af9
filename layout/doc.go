// Package layout computes where an image lands on a document page.
//
// The single entry point is [Fit]: given image dimensions, page dimensions,
// and a margin, it returns the [Placement] rectangle that scales the image
// to the usable area (the page inset by the margin on every side) while
// preserving the image's aspect ratio:
//
//	pl, err := layout.Fit(2000, 1000, layout.A4.Width, layout.A4.Height, layout.DefaultMargin)
//
// A relatively wide image spans the usable width and is centered vertically;
// a relatively tall one spans the usable height and is centered horizontally.
// Coordinates are in PDF points (1/72 inch) with the origin at the top-left
// corner of the page.
//
// # Paper Sizes
//
// [PaperSize] names common portrait page dimensions ([A4], [Letter],
// [Legal]); [PaperSizeByName] resolves the name a host was given:
//
//	size, err := layout.PaperSizeByName("letter")
//
// A4 is the default page size throughout the module.
package layout
