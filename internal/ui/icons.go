package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawPauseIcon draws two vertical pause bars at (cx, cy) with given radius.
func drawPauseIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	barW := r * 0.55
	gap := r * 0.25
	vector.DrawFilledRect(dst, cx-gap-barW, cy-r, barW, 2*r, clr, false)
	vector.DrawFilledRect(dst, cx+gap, cy-r, barW, 2*r, clr, false)
}

// drawChevronIcon draws a chevron at (cx, cy) pointing in the scroll
// direction: left when the content moves leftward.
func drawChevronIcon(dst *ebiten.Image, cx, cy, r float32, left bool, clr color.Color) {
	// The apex sits at cx-dx, so a positive dx points the chevron left.
	dx := r * 0.6
	if !left {
		dx = -dx
	}
	vector.StrokeLine(dst, cx+dx, cy-r, cx-dx, cy, 2, clr, false)
	vector.StrokeLine(dst, cx-dx, cy, cx+dx, cy+r, 2, clr, false)
}
