// Package pdf writes assembled documents as PDF files.
//
// [Writer] implements the page-writer capability the assembler drives: it
// opens with one page ready, begins a new page per queued image, and draws
// each encoded payload at its computed placement. Nothing is flushed until
// [Writer.Output] or [Writer.WriteFile], so a failed assembly never leaves a
// partial document behind:
//
//	w := pdf.NewWriter(layout.A4)
//	if err := assemble.Assemble(ctx, entries, w, layout.A4, margins); err != nil {
//		return err
//	}
//	return w.WriteFile("scans.pdf")
//
// JPEG, PNG, and GIF payloads embed directly; TIFF, BMP, and WebP are
// transcoded to PNG first.
package pdf
