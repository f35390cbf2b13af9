package folio

import (
	"fmt"

	"github.com/tsawler/folio/filter"
	"github.com/tsawler/folio/queue"
	"github.com/tsawler/folio/raster"
)

// pendingState tracks where a Pending is in its lifecycle.
type pendingState int

const (
	pendingOpen pendingState = iota
	pendingConfirmed
	pendingDiscarded
)

// Pending is a captured or imported image between acquisition and its
// confirm/discard decision. It retains the unfiltered original, so previews
// with different filters always re-derive from the same source. A Pending
// may be confirmed or discarded once; afterwards it is terminal.
//
// A Pending belongs to a single goroutine.
type Pending struct {
	composer *Composer
	original *raster.Image
	origin   queue.Origin
	state    pendingState
}

// Origin reports how the image was acquired.
func (p *Pending) Origin() queue.Origin {
	return p.origin
}

// Preview renders the image with the given filter. Previews are replayable:
// every call derives from the retained unfiltered original, so switching
// filters back and forth always reproduces the same output for a kind.
//
// Example:
//
//	img, err := p.Preview(filter.Monochrome)
func (p *Pending) Preview(kind filter.Kind) (*raster.Image, error) {
	if err := p.usable(); err != nil {
		return nil, err
	}
	if kind == filter.None {
		return p.original.Clone(), nil
	}
	return filter.Apply(p.original, kind)
}

// Thumbnail returns a preview-sized copy for host UIs, at most
// maxWidth x maxHeight, aspect preserved.
//
// Example:
//
//	thumb, err := p.Thumbnail(320, 320)
func (p *Pending) Thumbnail(maxWidth, maxHeight int) (*raster.Image, error) {
	if err := p.usable(); err != nil {
		return nil, err
	}
	out, err := raster.Thumbnail(p.original, maxWidth, maxHeight)
	if err != nil {
		return nil, err
	}
	// Thumbnail returns the input when it already fits; hand out a copy.
	if out == p.original {
		out = out.Clone()
	}
	return out, nil
}

// Confirm fixes the filter choice, encodes the filtered image, and appends
// it to the composer's queue. The image is capped to the encoding bounds
// before encoding. Returns the queued entry's id.
//
// Example:
//
//	id, err := p.Confirm(filter.Grayscale)
func (p *Pending) Confirm(kind filter.Kind) (string, error) {
	if err := p.usable(); err != nil {
		return "", err
	}

	img, err := filter.Apply(p.original, kind)
	if err != nil {
		return "", fmt.Errorf("applying filter: %w", err)
	}
	img, err = raster.Resize(img, raster.MaxEncodeWidth, raster.MaxEncodeHeight)
	if err != nil {
		return "", fmt.Errorf("resizing: %w", err)
	}

	opts := p.composer.options
	payload, err := raster.EncodeBytes(img, opts.encoding, opts.jpegQuality)
	if err != nil {
		return "", fmt.Errorf("encoding: %w", err)
	}

	e := queue.NewEntry(payload, p.origin, kind)
	p.composer.queue.Append(e)
	p.state = pendingConfirmed
	return e.ID, nil
}

// Discard ends the lifecycle without queueing anything. Discarding a
// terminal Pending is a no-op.
func (p *Pending) Discard() {
	if p.state == pendingOpen {
		p.state = pendingDiscarded
	}
}

func (p *Pending) usable() error {
	switch p.state {
	case pendingConfirmed:
		return fmt.Errorf("image already confirmed")
	case pendingDiscarded:
		return fmt.Errorf("image already discarded")
	}
	return nil
}
