package icon

import (
	"image"
	"image/color"
)

// Theme colors from the app
var (
	amberBar  = color.RGBA{R: 0xF0, G: 0xB4, B: 0x29, A: 0xFF}
	tealBar   = color.RGBA{R: 0x2E, G: 0xC4, B: 0xB6, A: 0xFF}
	mutedBar  = color.RGBA{R: 0x5C, G: 0x60, B: 0x6A, A: 0xFF}
	darkBG    = color.RGBA{R: 0x0C, G: 0x0E, B: 0x12, A: 0xFF}
	sepDot    = color.RGBA{R: 0xA8, G: 0xAE, B: 0xB8, A: 0xCC}
	amberGlow = color.RGBA{R: 0xF0, G: 0xB4, B: 0x29, A: 0x48}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Fill background
	fillRect(img, 0, 0, size, size, darkBG)

	// Three ticker rows, each a strip of two segments with a separator dot.
	// Segments run off the left and right edges so the strips read as endless.
	drawRow(img, s, s*0.16, tealBar, nil, 0.10, 0.34, 0.54, 0.36)
	drawRow(img, s, s*0.42, amberBar, amberGlow, -0.08, 0.42, 0.48, 0.64)
	drawRow(img, s, s*0.68, mutedBar, nil, 0.22, 0.44, 0.80, 0.32)

	return img
}

// drawRow draws one ticker strip: two rounded segments at (xA, wA) and
// (xB, wB) given as fractions of the icon size, with a dot in the gap.
func drawRow(img *image.RGBA, s, y float64, c color.Color, glow color.Color, xA, wA, xB, wB float64) {
	rowH := s * 0.16
	radius := rowH * 0.5

	if glow != nil {
		pad := s * 0.04
		fillRoundedRect(img, xA*s-pad, y-pad, (xB+wB-xA)*s+2*pad, rowH+2*pad, radius+pad, glow)
	}

	fillRoundedRect(img, xA*s, y, wA*s, rowH, radius, c)
	fillRoundedRect(img, xB*s, y, wB*s, rowH, radius, c)

	// Separator dot centered in the gap between the segments
	gapCX := (xA + wA + xB) / 2 * s
	fillCircle(img, gapCX, y+rowH*0.5, s*0.028, sepDot)
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
