package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tsawler/folio"
	"github.com/tsawler/folio/filter"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/raster"
)

func newBuildCmd() *cobra.Command {
	var (
		out          string
		filterName   string
		pageName     string
		margins      bool
		noMargins    bool
		manifestPath string
		jpegQuality  int
	)

	cmd := &cobra.Command{
		Use:   "build [images...]",
		Short: "Assemble images into a PDF document",
		Long: `Builds a PDF from the given images, one page per image. Each image is
scaled to fit the page and centered along its shorter axis.

Images come from positional arguments or from a YAML manifest. With a
manifest, each image carries its own filter; positional images all use
the --filter value.

Environment defaults (also read from a .env file): FOLIO_PAGE,
FOLIO_MARGINS, FOLIO_OUT.`,
		Example: `  # Two scans on A4 with standard margins
  folio build page1.jpg page2.jpg

  # Monochrome US Letter document
  folio build --filter monochrome --page letter --out scans.pdf *.jpg

  # Declarative build
  folio build --manifest document.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var man *manifest
			images := make([]manifestImage, 0, len(args))
			if manifestPath != "" {
				var err error
				man, err = loadManifest(manifestPath)
				if err != nil {
					return err
				}
				images = append(images, man.Images...)
			}
			for _, path := range args {
				images = append(images, manifestImage{Path: path, Filter: filterName})
			}
			if len(images) == 0 {
				return fmt.Errorf("nothing to build: pass image paths or --manifest")
			}

			outPath := resolveOut(out, man)
			size, err := resolvePage(pageName, man)
			if err != nil {
				return err
			}
			withMargins := resolveMargins(cmd.Flags().Changed("margins"), margins, noMargins, man)

			c := folio.NewComposer().
				WithPageSize(size).
				WithMargins(withMargins).
				WithJPEGQuality(jpegQuality)

			for _, img := range images {
				kind, err := filter.Parse(img.Filter)
				if err != nil {
					return err
				}
				p, err := c.ImportFile(img.Path)
				if err != nil {
					return err
				}
				id, err := p.Confirm(kind)
				if err != nil {
					return fmt.Errorf("failed to queue %s: %w", img.Path, err)
				}
				slog.Info("queued image", "path", img.Path, "filter", kind.String(), "id", id)
			}

			// Assemble into memory first so a failed build leaves no file.
			pages := c.Count()
			var buf bytes.Buffer
			if err := c.AssemblePDF(cmd.Context(), &buf); err != nil {
				return err
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}

			slog.Info("document written", "path", outPath, "pages", pages, "page_size", size.Name, "bytes", buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output PDF path (default folio.pdf)")
	cmd.Flags().StringVarP(&filterName, "filter", "f", "none", "Filter for positional images (none, grayscale, monochrome, enhanced)")
	cmd.Flags().StringVar(&pageName, "page", "", "Paper size (A4, Letter, Legal)")
	cmd.Flags().BoolVar(&margins, "margins", true, "Keep the standard page margins")
	cmd.Flags().BoolVar(&noMargins, "no-margins", false, "Place images against the page edges")
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest describing the build")
	cmd.Flags().IntVar(&jpegQuality, "jpeg-quality", raster.DefaultJPEGQuality, "JPEG quality for queued images (1-100)")

	return cmd
}

// resolveOut picks the output path: flag, then manifest, then FOLIO_OUT,
// then the folio.pdf default.
func resolveOut(flagValue string, m *manifest) string {
	if flagValue != "" {
		return flagValue
	}
	if m != nil && m.Output != "" {
		return m.Output
	}
	if v := os.Getenv("FOLIO_OUT"); v != "" {
		return v
	}
	return "folio.pdf"
}

// resolvePage picks the paper size: flag, then manifest, then FOLIO_PAGE,
// then A4.
func resolvePage(flagValue string, m *manifest) (layout.PaperSize, error) {
	name := flagValue
	if name == "" && m != nil {
		name = m.Page
	}
	if name == "" {
		name = os.Getenv("FOLIO_PAGE")
	}
	if name == "" {
		return layout.A4, nil
	}
	return layout.PaperSizeByName(name)
}

// resolveMargins picks the margin policy: --no-margins, then an explicit
// --margins flag, then the manifest, then FOLIO_MARGINS, then on.
func resolveMargins(marginsSet, margins, noMargins bool, m *manifest) bool {
	if noMargins {
		return false
	}
	if marginsSet {
		return margins
	}
	if m != nil && m.Margins != nil {
		return *m.Margins
	}
	if v := os.Getenv("FOLIO_MARGINS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return true
}
