package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// stripSeparator is drawn between items inside a strip. The gap between
// repeats of the whole strip is the marquee's spacing, configured on the
// motion state, not here.
const stripSeparator = "•"

// StripItem is one entry rendered into a marquee strip.
type StripItem struct {
	Text   string
	Detail string        // dimmer suffix, e.g. a year or a percentage
	Accent color.RGBA    // text tint; zero alpha falls back to ColorText
	Badge  *ebiten.Image // optional thumbnail drawn before the text
}

// StripSpec controls strip geometry.
type StripSpec struct {
	FontSize float64
	Height   float64
}

// detailScale sizes the detail text relative to the main text.
const detailScale = 0.65

// badgePad is the vertical inset of badge images within the strip.
const badgePad = 4.0

// measureStrip returns each item's width, the separator width, and the
// total strip width at the given spec. BuildStrip allocates exactly this.
func measureStrip(items []StripItem, spec StripSpec) (itemWidths []float64, sepW, total float64) {
	sepW, _ = MeasureText(stripSeparator, spec.FontSize)
	itemWidths = make([]float64, len(items))
	for i, item := range items {
		w := 0.0
		if item.Badge != nil {
			w += badgeWidth(item.Badge, spec.Height) + BadgeGap
		}
		tw, _ := MeasureText(item.Text, spec.FontSize)
		w += tw
		if item.Detail != "" {
			dw, _ := MeasureText(item.Detail, spec.FontSize*detailScale)
			w += BadgeGap + dw
		}
		itemWidths[i] = w
		total += w
	}
	if len(items) > 1 {
		total += float64(len(items)-1) * (sepW + 2*ItemGap)
	}
	return itemWidths, sepW, total
}

// badgeWidth is the width a badge occupies when scaled to the strip height.
func badgeWidth(badge *ebiten.Image, stripH float64) float64 {
	b := badge.Bounds()
	if b.Dy() == 0 {
		return 0
	}
	scale := (stripH - 2*badgePad) / float64(b.Dy())
	return float64(b.Dx()) * scale
}

// BuildStrip composes the items into a single strip image to hand to
// Marquee.SetStrip. Returns nil when there is nothing to draw; fonts must
// be initialized first.
func BuildStrip(items []StripItem, spec StripSpec) *ebiten.Image {
	if len(items) == 0 || spec.Height <= 0 {
		return nil
	}
	itemWidths, sepW, total := measureStrip(items, spec)
	if total <= 0 {
		return nil
	}

	strip := ebiten.NewImage(int(math.Ceil(total)), int(spec.Height))

	x := 0.0
	for i, item := range items {
		if i > 0 {
			x += ItemGap
			DrawTextCentered(strip, stripSeparator, x+sepW/2, spec.Height/2, spec.FontSize, ColorTextMuted)
			x += sepW + ItemGap
		}

		ix := x
		if item.Badge != nil {
			bw := badgeWidth(item.Badge, spec.Height)
			b := item.Badge.Bounds()
			if b.Dy() > 0 && bw > 0 {
				op := &ebiten.DrawImageOptions{}
				scale := (spec.Height - 2*badgePad) / float64(b.Dy())
				op.GeoM.Scale(scale, scale)
				op.GeoM.Translate(ix, badgePad)
				strip.DrawImage(item.Badge, op)
			}
			ix += bw + BadgeGap
		}

		clr := color.Color(ColorText)
		if item.Accent.A != 0 {
			clr = item.Accent
		}
		tw, th := MeasureText(item.Text, spec.FontSize)
		DrawText(strip, item.Text, ix, (spec.Height-th)/2, spec.FontSize, clr)
		ix += tw

		if item.Detail != "" {
			_, dh := MeasureText(item.Detail, spec.FontSize*detailScale)
			DrawText(strip, item.Detail, ix+BadgeGap, (spec.Height-dh)/2, spec.FontSize*detailScale, ColorTextSecondary)
		}

		x += itemWidths[i]
	}

	return strip
}
