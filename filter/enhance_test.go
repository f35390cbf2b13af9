package filter

import (
	"math"
	"testing"
)

func TestEnhance_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantR   uint8
		wantG   uint8
		wantB   uint8
	}{
		{"black stays black", 0, 0, 0, 0, 0, 0},
		{"white stays white", 255, 255, 255, 255, 255, 255},
		{"mid gray barely moves", 128, 128, 128, 128, 128, 128},
		{"dark gray darkens", 100, 100, 100, 92, 92, 92},
		{"light gray lightens", 200, 200, 200, 222, 222, 222},
		{"chromatic saturates", 200, 100, 50, 241, 98, 27},
		{"clamped channels", 255, 0, 128, 255, 0, 141},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newTestImage(t, 2, 2, tt.r, tt.g, tt.b, 255)
			out, err := Enhance(img)
			if err != nil {
				t.Fatalf("Enhance() error = %v", err)
			}
			r, g, b := out.Pix[0], out.Pix[1], out.Pix[2]
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("Enhance(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.r, tt.g, tt.b, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

// Achromatic pixels must change only through the contrast step: with
// R==G==B the saturation boost is skipped, so the output equals the plain
// midpoint stretch for every possible value.
func TestEnhance_AchromaticSkipsSaturation(t *testing.T) {
	for v := 0; v <= 255; v++ {
		img := newTestImage(t, 1, 1, uint8(v), uint8(v), uint8(v), 255)
		out, err := Enhance(img)
		if err != nil {
			t.Fatalf("Enhance() error = %v", err)
		}

		stretched := ((float64(v)/255-0.5)*1.3 + 0.5) * 255
		if stretched < 0 {
			stretched = 0
		}
		if stretched > 255 {
			stretched = 255
		}
		want := uint8(math.Round(stretched))

		if out.Pix[0] != want || out.Pix[1] != want || out.Pix[2] != want {
			t.Fatalf("Enhance(gray %d) = (%d, %d, %d), want uniform %d",
				v, out.Pix[0], out.Pix[1], out.Pix[2], want)
		}
	}
}

func TestEnhance_PreservesAlpha(t *testing.T) {
	img := newTestImage(t, 3, 2, 10, 180, 90, 33)
	out, err := Enhance(img)
	if err != nil {
		t.Fatalf("Enhance() error = %v", err)
	}
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 33 {
			t.Fatalf("alpha at sample %d = %d, want 33", i, out.Pix[i])
		}
	}
}
