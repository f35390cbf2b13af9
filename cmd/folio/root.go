package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Assemble images into paginated PDF documents",
		Long: `Folio turns photographed or imported images into a paginated PDF,
one image per page, scaled and centered the way a flatbed scan would be.

Images can be filtered (grayscale, monochrome, enhanced) before they are
queued, and a build is all-or-nothing: any failure leaves no output behind.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newPreviewCmd())

	return cmd
}
