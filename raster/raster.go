package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// ErrInvalidRaster indicates a pixel buffer whose length does not match its
// declared dimensions, or an image with non-positive dimensions.
var ErrInvalidRaster = errors.New("invalid raster")

// ErrInvalidDimensions indicates a zero or negative dimension passed to an
// operation that requires positive bounds.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Image is a decoded bitmap: a width, a height, and a flat slice of 8-bit
// RGBA samples with straight alpha. Pixel (x, y) starts at
// Pix[(y*Width+x)*4]. Filters mutate Pix in place; everything else treats
// an Image as a value to be cloned before modification.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a transparent-black image of the given size.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new image %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}, nil
}

// Validate checks the buffer invariant. It returns an error wrapping
// ErrInvalidRaster if the image is nil, has non-positive dimensions, or
// carries a pixel slice of the wrong length.
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("nil image: %w", ErrInvalidRaster)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("image %dx%d: %w", img.Width, img.Height, ErrInvalidRaster)
	}
	expectedSize := img.Width * img.Height * 4
	if len(img.Pix) != expectedSize {
		return fmt.Errorf("image %dx%d: pixel buffer has %d bytes, expected %d: %w",
			img.Width, img.Height, len(img.Pix), expectedSize, ErrInvalidRaster)
	}
	return nil
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	pix := make([]uint8, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{Width: img.Width, Height: img.Height, Pix: pix}
}

// PixOffset returns the index of the first sample of pixel (x, y).
func (img *Image) PixOffset(x, y int) int {
	return (y*img.Width + x) * 4
}

// FromImage converts any image.Image into the canonical RGBA-8 buffer.
// Premultiplied sources are converted to straight alpha.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Image{Width: b.Dx(), Height: b.Dy(), Pix: dst.Pix}
}

// ToNRGBA wraps the image as an *image.NRGBA without copying pixels.
// Mutations of the returned image are visible through the receiver.
func (img *Image) ToNRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.Pix,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}
