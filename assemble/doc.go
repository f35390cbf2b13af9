// Package assemble renders queued images into a paginated document.
//
// [Assemble] walks the queue in order and, for each entry, decodes the
// payload, caps its dimensions, computes the page placement, and hands the
// payload to a [PageWriter], one page per entry:
//
//	err := assemble.Assemble(ctx, q.List(), writer, layout.A4, assemble.MarginPolicy{Enabled: true})
//
// Assembly is all-or-nothing: the first failure aborts the pass with an
// error wrapping [ErrAssembly], and no partial document is surfaced. The
// writer starts with one open page, so [PageWriter.BeginPage] is called
// between entries rather than before the first.
package assemble
