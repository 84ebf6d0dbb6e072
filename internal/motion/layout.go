package motion

import "math"

// RepeatCount returns how many additional copies of the content, beyond
// the first, are needed to cover a viewport of the given width when copies
// tile every contentWidth+spacing units. With the first copy's leading
// edge wrapped into (-period, 0], drawing RepeatCount extra copies leaves
// no gap at the trailing edge.
//
// A degenerate period (content and spacing both zero) returns 1 so callers
// always have something to draw.
func RepeatCount(contentWidth, spacing, viewportWidth float64) int {
	period := contentWidth + spacing
	if period <= 0 {
		return 1
	}
	n := int(math.Ceil(viewportWidth / period))
	if n < 0 {
		return 0
	}
	return n
}
