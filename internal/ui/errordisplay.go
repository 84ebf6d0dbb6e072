package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrorDisplay draws a transient error banner. Screens feed it errors as
// they happen; the banner hides itself after a few seconds or when clicked.
type ErrorDisplay struct {
	text   string
	frames int // frames remaining before the banner hides
	rect   ButtonRect
}

const errorBannerFrames = 600 // ~10 seconds at 60fps

// Show replaces the banner text and restarts the display timer.
func (ed *ErrorDisplay) Show(text string) {
	ed.text = text
	ed.frames = errorBannerFrames
}

// Clear hides the banner immediately.
func (ed *ErrorDisplay) Clear() {
	ed.text = ""
	ed.frames = 0
}

// Draw renders the banner anchored at x, y. Returns the height used,
// 0 when hidden. fontSize is typically FontSizeSmall or FontSizeBody.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image, x, y, fontSize float64) float64 {
	if ed.frames <= 0 || ed.text == "" {
		ed.rect = ButtonRect{}
		return 0
	}
	ed.frames--

	tw, th := MeasureText(ed.text, fontSize)
	padX, padY := 12.0, 6.0
	w := tw + padX*2
	h := th + padY*2
	ed.rect = ButtonRect{X: x, Y: y, W: w, H: h}

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorSurface, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, ColorError, false)
	DrawText(dst, ed.text, x+padX, y+padY, fontSize, ColorError)

	return h + 8
}

// HandleClick dismisses the banner if the click landed on it. Call from
// Update with mouse coords. Returns true if the click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my int) bool {
	if ed.frames <= 0 || ed.text == "" {
		return false
	}
	if PointInRect(mx, my, ed.rect.X, ed.rect.Y, ed.rect.W, ed.rect.H) {
		ed.Clear()
		return true
	}
	return false
}
