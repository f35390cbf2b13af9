// Package raster provides the pixel buffer type shared by all folio image
// operations, along with decoding, encoding, and scaling.
//
// # The Image Type
//
// An Image is a width, a height, and a flat slice of 8-bit RGBA samples,
// four per pixel, with straight (non-premultiplied) alpha. Pixel (x, y)
// begins at Pix[(y*Width+x)*4]. The invariant len(Pix) == Width*Height*4
// holds for every valid Image; Validate reports violations as
// ErrInvalidRaster.
//
// # Decoding and Encoding
//
// Decode reads JPEG, PNG, GIF, TIFF, BMP, and WebP:
//
//	img, err := raster.DecodeFile("scan.jpg")
//
// Encode writes JPEG or PNG payloads. JPEG output is flattened onto a white
// background since the format carries no alpha channel.
//
// # Scaling
//
// Resize shrinks an image to fit a bounding box while preserving aspect
// ratio; an image that already fits is returned unchanged, never upscaled.
// Thumbnail is the preview-oriented variant used by host UIs.
package raster
