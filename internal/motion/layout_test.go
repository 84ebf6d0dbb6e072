package motion

import "testing"

func TestRepeatCount(t *testing.T) {
	tests := []struct {
		name          string
		contentWidth  float64
		spacing       float64
		viewportWidth float64
		want          int
	}{
		{"partial period remains", 100, 10, 250, 3},
		{"exact multiple", 100, 10, 330, 3},
		{"just past a multiple", 100, 10, 331, 4},
		{"narrow viewport", 100, 10, 40, 1},
		{"zero viewport", 100, 10, 0, 0},
		{"negative viewport", 100, 10, -50, 0},
		{"content alone fills", 500, 0, 500, 1},
		{"spacing only period", 0, 10, 25, 3},
		{"degenerate period", 0, 0, 800, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepeatCount(tt.contentWidth, tt.spacing, tt.viewportWidth)
			if got != tt.want {
				t.Errorf("RepeatCount(%v, %v, %v) = %d, want %d",
					tt.contentWidth, tt.spacing, tt.viewportWidth, got, tt.want)
			}
		})
	}
}

// TestRepeatCount_CoversViewport cross-checks the count against what it
// promises: for any wrapped offset, the n+1 drawn copies tile the whole
// viewport. The tiled span runs through the final copy's trailing gap,
// which renders as inter-copy spacing, not as missing content.
func TestRepeatCount_CoversViewport(t *testing.T) {
	for _, viewport := range []float64{250, 330, 331} {
		const content, spacing = 100.0, 10.0
		period := content + spacing
		n := RepeatCount(content, spacing, viewport)

		for _, offset := range []float64{0, -1, -55, -109.99} {
			end := offset + float64(n+1)*period
			if end < viewport {
				t.Errorf("viewport %v offset %v: tiling %d+1 copies ends at %v",
					viewport, offset, n, end)
			}
		}
	}
}
