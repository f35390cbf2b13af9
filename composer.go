package folio

import (
	"context"
	"fmt"
	"io"

	"github.com/tsawler/folio/assemble"
	"github.com/tsawler/folio/format"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/pdf"
	"github.com/tsawler/folio/queue"
	"github.com/tsawler/folio/raster"
)

// Composer owns the capture/import lifecycle and the queue of confirmed
// images awaiting assembly. Each configuration method returns a new Composer
// instance sharing the same queue, making handles safe to specialize
// concurrently while the queue remains the single source of page order.
type Composer struct {
	// Shared state
	queue *queue.Queue

	// Configuration
	options composerOptions
}

// clone creates a copy of the Composer with the same queue and a copy of
// the options. This ensures immutability - each chain method returns a new
// instance.
func (c *Composer) clone() *Composer {
	return &Composer{
		queue:   c.queue,
		options: c.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Composer instance)
// ============================================================================

// WithPageSize sets the page size used for assembly.
//
// Example:
//
//	c := folio.NewComposer().WithPageSize(layout.Letter)
func (c *Composer) WithPageSize(size layout.PaperSize) *Composer {
	newC := c.clone()
	newC.options.pageSize = size
	return newC
}

// WithMargins turns page margins on or off. When on, the margin width is
// the default 0.4 cm unless WithMarginPoints set another value.
//
// Example:
//
//	c := folio.NewComposer().WithMargins(false)
func (c *Composer) WithMargins(enabled bool) *Composer {
	newC := c.clone()
	newC.options.marginsEnabled = enabled
	return newC
}

// WithMarginPoints sets the margin width in points and turns margins on.
//
// Example:
//
//	c := folio.NewComposer().WithMarginPoints(2 * layout.PointsPerCM)
func (c *Composer) WithMarginPoints(points float64) *Composer {
	newC := c.clone()
	newC.options.marginsEnabled = true
	newC.options.marginPoints = points
	return newC
}

// WithEncoding sets the payload encoding used when an image is confirmed.
// JPEG and PNG are supported.
//
// Example:
//
//	c := folio.NewComposer().WithEncoding(format.PNG)
func (c *Composer) WithEncoding(f format.Format) *Composer {
	newC := c.clone()
	newC.options.encoding = f
	return newC
}

// WithJPEGQuality sets the JPEG quality (1-100) used when an image is
// confirmed with JPEG encoding.
//
// Example:
//
//	c := folio.NewComposer().WithJPEGQuality(75)
func (c *Composer) WithJPEGQuality(quality int) *Composer {
	newC := c.clone()
	newC.options.jpegQuality = quality
	return newC
}

// ============================================================================
// Lifecycle entry points
// ============================================================================

// Capture starts the lifecycle for an image acquired from a live source.
// The image is copied; later mutations of img do not affect previews.
//
// Example:
//
//	p, err := c.Capture(frame)
func (c *Composer) Capture(img *raster.Image) (*Pending, error) {
	return c.newPending(img, queue.Capture)
}

// Import starts the lifecycle for an already-decoded image. The image is
// copied; later mutations of img do not affect previews.
//
// Example:
//
//	p, err := c.Import(img)
func (c *Composer) Import(img *raster.Image) (*Pending, error) {
	return c.newPending(img, queue.Import)
}

// ImportFile decodes an image file and starts the lifecycle for it.
//
// Example:
//
//	p, err := c.ImportFile("scan.jpg")
func (c *Composer) ImportFile(path string) (*Pending, error) {
	img, err := raster.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return &Pending{
		composer: c,
		original: img,
		origin:   queue.Import,
	}, nil
}

func (c *Composer) newPending(img *raster.Image, origin queue.Origin) (*Pending, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image: %w", raster.ErrInvalidRaster)
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return &Pending{
		composer: c,
		original: img.Clone(),
		origin:   origin,
	}, nil
}

// ============================================================================
// Queue surface
// ============================================================================

// Remove deletes a confirmed entry from the queue. Removing an id that is
// not queued is a no-op.
func (c *Composer) Remove(id string) {
	c.queue.RemoveByID(id)
}

// Entries returns the queued entries in page order.
func (c *Composer) Entries() []queue.Entry {
	return c.queue.List()
}

// Count reports the number of queued entries.
func (c *Composer) Count() int {
	return c.queue.Len()
}

// Clear removes all queued entries.
func (c *Composer) Clear() {
	c.queue.Clear()
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Assemble renders every queued image into the writer, one page per image,
// using the composer's page size and margin policy. On success the queue is
// cleared; on failure it is left intact so the host can correct it and
// retry.
//
// Example:
//
//	w := pdf.NewWriter(layout.A4)
//	if err := c.Assemble(ctx, w); err != nil {
//	    // handle error
//	}
//	err := w.WriteFile("scans.pdf")
func (c *Composer) Assemble(ctx context.Context, w assemble.PageWriter) error {
	err := assemble.Assemble(ctx, c.queue.List(), w, c.options.pageSize, c.marginPolicy())
	if err != nil {
		return err
	}
	c.queue.Clear()
	return nil
}

// AssemblePDF assembles the queue into a PDF document and, on success,
// writes the finished document to out. Nothing is written to out on
// failure.
//
// Example:
//
//	var buf bytes.Buffer
//	err := c.AssemblePDF(context.Background(), &buf)
func (c *Composer) AssemblePDF(ctx context.Context, out io.Writer) error {
	w := pdf.NewWriter(c.options.pageSize)
	if err := c.Assemble(ctx, w); err != nil {
		return err
	}
	return w.Output(out)
}

func (c *Composer) marginPolicy() assemble.MarginPolicy {
	return assemble.MarginPolicy{
		Enabled: c.options.marginsEnabled,
		Points:  c.options.marginPoints,
	}
}
