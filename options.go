package folio

import (
	"github.com/tsawler/folio/format"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/raster"
)

// composerOptions holds configuration for document composition.
type composerOptions struct {
	// Page geometry
	pageSize       layout.PaperSize
	marginsEnabled bool
	marginPoints   float64 // 0 means the default 0.4 cm margin

	// Payload encoding for confirmed images
	encoding    format.Format
	jpegQuality int
}

// defaultOptions returns the default composition options.
func defaultOptions() composerOptions {
	return composerOptions{
		pageSize:       layout.A4,
		marginsEnabled: true,
		marginPoints:   0,
		encoding:       format.JPEG,
		jpegQuality:    raster.DefaultJPEGQuality,
	}
}

// clone creates a copy of composerOptions.
func (o composerOptions) clone() composerOptions {
	return composerOptions{
		pageSize:       o.pageSize,
		marginsEnabled: o.marginsEnabled,
		marginPoints:   o.marginPoints,
		encoding:       o.encoding,
		jpegQuality:    o.jpegQuality,
	}
}
