package layout

import (
	"fmt"
	"strings"
)

// PaperSize is a named page size in points, portrait orientation.
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

// Standard paper sizes.
var (
	A4     = PaperSize{Name: "A4", Width: 595.28, Height: 841.89}
	Letter = PaperSize{Name: "Letter", Width: 612, Height: 792}
	Legal  = PaperSize{Name: "Legal", Width: 612, Height: 1008}
)

// PaperSizes returns all named paper sizes.
func PaperSizes() []PaperSize {
	return []PaperSize{A4, Letter, Legal}
}

// PaperSizeByName looks up a paper size by name. Matching is
// case-insensitive and ignores surrounding whitespace.
func PaperSizeByName(name string) (PaperSize, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a4":
		return A4, nil
	case "letter":
		return Letter, nil
	case "legal":
		return Legal, nil
	}
	return PaperSize{}, fmt.Errorf("unknown paper size %q", name)
}
