package ui

import (
	"fmt"
	"image/color"
)

// Dark broadcast-style theme colors
var (
	ColorBackground    = color.RGBA{R: 0x0C, G: 0x0E, B: 0x12, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x18, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x24, G: 0x2A, B: 0x36, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xF0, G: 0xB4, B: 0x29, A: 0xFF} // ticker amber
	ColorAccent        = color.RGBA{R: 0x2E, G: 0xC4, B: 0xB6, A: 0xFF} // teal accent
	ColorText          = color.RGBA{R: 0xE8, G: 0xE8, B: 0xE4, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x96, G: 0x9A, B: 0xA4, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x5C, G: 0x60, B: 0x6A, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xF0, G: 0xB4, B: 0x29, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
)

// Layout constants. All drawing happens in a fixed 1920x1080 design space;
// the window scales it.
const (
	ScreenWidth  = 1920
	ScreenHeight = 1080

	SectionPadding = 40
	HeaderHeight   = 72

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13

	// Vertical padding inside a marquee row around the strip.
	RowPadY = 14

	// Gap between an item's badge image and its text inside a strip.
	BadgeGap = 14
	// Gap between consecutive items inside a strip, on each side of the
	// separator glyph.
	ItemGap = 36

	// Fade speed for the help footer, fraction per frame.
	HelpFadeSpeed = 0.12

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60
	// ScrollAnimSpeed is the lerp fraction per frame toward the scroll target.
	ScrollAnimSpeed = 0.12
)

// ScaleAlpha fades a color by the given factor. Colors here are
// premultiplied, so every channel scales together.
func ScaleAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// ParseHexColor parses "#RRGGBB" (leading # optional) into a color.
// Malformed values return ok=false so callers can fall back to a default.
func ParseHexColor(s string) (color.RGBA, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, true
}
