// Package folio turns a set of images into a paginated document.
//
// Images enter through a [Composer], take an optional tone filter, and are
// queued in page order. Assembling renders one page per image:
//
//	c := folio.NewComposer()
//	p, err := c.ImportFile("scan.jpg")
//	if err != nil {
//	    // handle error
//	}
//	id, err := p.Confirm(filter.Monochrome)
//	if err != nil {
//	    // handle error
//	}
//	err = c.AssemblePDF(context.Background(), &buf)
//
// With options:
//
//	c := folio.NewComposer().
//	    WithPageSize(layout.Letter).
//	    WithMargins(false).
//	    WithEncoding(format.PNG)
//
// Configuration methods return a new Composer sharing the same queue, so a
// handle can be specialized without disturbing others. The focused
// subpackages (filter, layout, raster, queue, assemble, pdf) are also usable
// on their own.
package folio

import (
	"github.com/tsawler/folio/queue"
)

// NewComposer returns a Composer with an empty queue and default options:
// A4 pages, margins on, JPEG payload encoding.
//
// Example:
//
//	c := folio.NewComposer().WithPageSize(layout.Letter)
func NewComposer() *Composer {
	return &Composer{
		queue:   queue.New(),
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	p := folio.Must(c.ImportFile("scan.jpg"))
//	id := folio.Must(p.Confirm(filter.Grayscale))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
