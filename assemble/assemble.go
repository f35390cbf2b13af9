package assemble

import (
	"context"
	"errors"
	"fmt"

	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/queue"
	"github.com/tsawler/folio/raster"
)

// ErrAssembly is returned, wrapped, for any failure during an assembly pass.
var ErrAssembly = errors.New("assembly failed")

// PageWriter is the capability the assembler drives. A writer starts with
// one open page; BeginPage opens the next one. PlaceImage draws an encoded
// image payload into the given rectangle on the current page.
type PageWriter interface {
	BeginPage() error
	PlaceImage(payload []byte, pl layout.Placement) error
}

// MarginPolicy selects the page margin applied to every placed image.
type MarginPolicy struct {
	// Enabled turns margins on.
	Enabled bool

	// Points is the margin width. Zero means the default 0.4 cm margin.
	Points float64
}

// points resolves the policy to a margin width in points.
func (p MarginPolicy) points() float64 {
	if !p.Enabled {
		return 0
	}
	if p.Points == 0 {
		return layout.DefaultMargin
	}
	return p.Points
}

// Assemble renders every entry onto its own page of the target size, in
// queue order. Each payload is decoded, capped to the encoding bounds, and
// placed per the margin policy. The first failure, or a context
// cancellation between entries, aborts the pass; work already handed to the
// writer is abandoned.
func Assemble(ctx context.Context, entries []queue.Entry, w PageWriter, size layout.PaperSize, margins MarginPolicy) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: no entries queued", ErrAssembly)
	}

	margin := margins.points()
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: canceled before entry %s: %w", ErrAssembly, e.ID, err)
		}

		img, err := raster.DecodeBytes(e.Payload)
		if err != nil {
			return fmt.Errorf("%w: entry %s: decode: %w", ErrAssembly, e.ID, err)
		}
		img, err = raster.Resize(img, raster.MaxEncodeWidth, raster.MaxEncodeHeight)
		if err != nil {
			return fmt.Errorf("%w: entry %s: resize: %w", ErrAssembly, e.ID, err)
		}

		pl, err := layout.Fit(float64(img.Width), float64(img.Height), size.Width, size.Height, margin)
		if err != nil {
			return fmt.Errorf("%w: entry %s: layout: %w", ErrAssembly, e.ID, err)
		}

		if i > 0 {
			if err := w.BeginPage(); err != nil {
				return fmt.Errorf("%w: entry %s: begin page: %w", ErrAssembly, e.ID, err)
			}
		}
		if err := w.PlaceImage(e.Payload, pl); err != nil {
			return fmt.Errorf("%w: entry %s: place image: %w", ErrAssembly, e.ID, err)
		}
	}
	return nil
}
