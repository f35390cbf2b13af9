package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tsawler/folio/filter"
	"github.com/tsawler/folio/format"
	"github.com/tsawler/folio/raster"
)

func newPreviewCmd() *cobra.Command {
	var (
		filterName  string
		maxWidth    int
		maxHeight   int
		jpegQuality int
	)

	cmd := &cobra.Command{
		Use:   "preview [input] [output]",
		Short: "Apply a filter to a single image",
		Long: `Applies one filter to an image and writes the result, without queueing
anything. The output format follows the output file extension (PNG or
JPEG). Useful for checking what a filter does before a build.`,
		Example: `  # Monochrome preview
  folio preview --filter monochrome scan.jpg preview.png

  # Bounded preview for a picker UI
  folio preview -f enhanced photo.jpg thumb.jpg --max-width 480 --max-height 480`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, outPath := args[0], args[1]

			kind, err := filter.Parse(filterName)
			if err != nil {
				return err
			}

			img, err := raster.DecodeFile(inPath)
			if err != nil {
				return err
			}

			filtered, err := filter.Apply(img, kind)
			if err != nil {
				return err
			}

			if maxWidth > 0 || maxHeight > 0 {
				w, h := maxWidth, maxHeight
				if w <= 0 {
					w = filtered.Width
				}
				if h <= 0 {
					h = filtered.Height
				}
				filtered, err = raster.Thumbnail(filtered, w, h)
				if err != nil {
					return err
				}
			}

			f := format.Detect(outPath)
			if f != format.PNG && f != format.JPEG {
				return fmt.Errorf("cannot write %s: use a .png or .jpg output extension", outPath)
			}

			payload, err := raster.EncodeBytes(filtered, f, jpegQuality)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, payload, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}

			slog.Info("preview written", "path", outPath, "filter", kind.String(), "width", filtered.Width, "height", filtered.Height)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filterName, "filter", "f", "none", "Filter to apply (none, grayscale, monochrome, enhanced)")
	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "Bound the output width (0 keeps the source width)")
	cmd.Flags().IntVar(&maxHeight, "max-height", 0, "Bound the output height (0 keeps the source height)")
	cmd.Flags().IntVar(&jpegQuality, "jpeg-quality", raster.DefaultJPEGQuality, "JPEG quality when the output is a .jpg (1-100)")

	return cmd
}
