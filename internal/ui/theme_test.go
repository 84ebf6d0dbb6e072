package ui

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   color.RGBA
		wantOK bool
	}{
		{"plain", "2EC4B6", color.RGBA{R: 0x2E, G: 0xC4, B: 0xB6, A: 0xFF}, true},
		{"leading hash", "#F0B429", color.RGBA{R: 0xF0, G: 0xB4, B: 0x29, A: 0xFF}, true},
		{"lowercase", "ff0080", color.RGBA{R: 0xFF, G: 0x00, B: 0x80, A: 0xFF}, true},
		{"empty", "", color.RGBA{}, false},
		{"too short", "FFF", color.RGBA{}, false},
		{"garbage", "zzzzzz", color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHexColor(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseHexColor(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	full := ScaleAlpha(c, 1)
	if full != c {
		t.Errorf("ScaleAlpha(c, 1) = %v, want %v", full, c)
	}

	half := ScaleAlpha(c, 0.5)
	if half.R != 100 || half.A != 127 {
		t.Errorf("ScaleAlpha(c, 0.5) = %v", half)
	}

	// Out-of-range factors clamp instead of wrapping.
	if got := ScaleAlpha(c, -1); got != (color.RGBA{}) {
		t.Errorf("ScaleAlpha(c, -1) = %v, want zero", got)
	}
	if got := ScaleAlpha(c, 2); got != c {
		t.Errorf("ScaleAlpha(c, 2) = %v, want %v", got, c)
	}
}
