package ui

import (
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/tickertape/internal/motion"
)

// Marquee is a horizontally auto-scrolling strip widget. It owns a motion
// state, a rendered content strip, and a viewport rectangle; pointer drags
// inside the viewport grab the strip and fling it on release.
type Marquee struct {
	state *motion.State
	input PointerInput
	flick motion.FlickTracker

	strip  *ebiten.Image
	stripW float64

	viewX, viewY float64
	viewW, viewH float64

	// Pointer gesture session. translation holds the cumulative pointer
	// displacement of the last pressed frame, so releasing does not need
	// a position read.
	pressed     bool
	pressX      int
	translation float64
}

// NewMarquee returns a marquee cruising at targetVelocity pixels/second
// once it has a strip, with the given spacing between strip repeats.
func NewMarquee(targetVelocity, spacing float64) *Marquee {
	return NewMarqueeWithInput(targetVelocity, spacing, NewPointerInput())
}

// NewMarqueeWithInput is NewMarquee with an injectable pointer source.
func NewMarqueeWithInput(targetVelocity, spacing float64, input PointerInput) *Marquee {
	return &Marquee{
		state: motion.New(targetVelocity, spacing),
		input: input,
	}
}

// SetViewport places the widget in the design space.
func (m *Marquee) SetViewport(x, y, w, h float64) {
	m.viewX, m.viewY = x, y
	m.viewW, m.viewH = w, h
}

// SetStrip swaps the rendered content and reports the new width to the
// motion state. Call whenever the strip is rebuilt; a nil strip blanks
// the row without disturbing the motion.
func (m *Marquee) SetStrip(strip *ebiten.Image) {
	m.strip = strip
	if strip == nil {
		return
	}
	m.stripW = float64(strip.Bounds().Dx())
	m.state.SetContentWidth(m.stripW)
}

func (m *Marquee) SetTargetVelocity(v float64) { m.state.SetTargetVelocity(v) }
func (m *Marquee) TargetVelocity() float64     { return m.state.TargetVelocity() }
func (m *Marquee) SetSpacing(v float64)        { m.state.SetSpacing(v) }
func (m *Marquee) Spacing() float64            { return m.state.Spacing() }
func (m *Marquee) Offset() float64             { return m.state.Offset() }
func (m *Marquee) Velocity() float64           { return m.state.Velocity() }
func (m *Marquee) Dragging() bool              { return m.state.Dragging() }
func (m *Marquee) StripWidth() float64         { return m.stripW }
func (m *Marquee) ViewportWidth() float64      { return m.viewW }

// Update feeds the pointer gesture into the motion state and advances it
// to now. Call once per frame before Draw.
func (m *Marquee) Update(now time.Time) {
	x, y := m.input.Position()
	down := m.input.Pressed()

	switch {
	case down && !m.pressed:
		if PointInRect(x, y, m.viewX, m.viewY, m.viewW, m.viewH) {
			m.pressed = true
			m.pressX = x
			m.translation = 0
			m.flick.Reset()
			m.flick.Observe(now, float64(x))
			m.state.DragStart()
		}
	case down && m.pressed:
		m.translation = float64(x - m.pressX)
		m.state.DragMove(m.translation)
		m.flick.Observe(now, float64(x))
	case !down && m.pressed:
		m.pressed = false
		if err := m.state.DragEnd(m.translation, m.flick.Velocity()); err != nil {
			log.Printf("Failed to end drag: %v", err)
		}
	}

	m.state.Tick(now)
}

// Draw renders the strip repeated across the viewport, clipped to it.
func (m *Marquee) Draw(dst *ebiten.Image) {
	if m.strip == nil || m.stripW <= 0 || m.viewW <= 0 {
		return
	}

	clip := dst.SubImage(image.Rect(
		int(m.viewX), int(m.viewY),
		int(m.viewX+m.viewW), int(m.viewY+m.viewH),
	)).(*ebiten.Image)

	period := m.stripW + m.state.Spacing()
	copies := motion.RepeatCount(m.stripW, m.state.Spacing(), m.viewW) + 1
	stripH := float64(m.strip.Bounds().Dy())
	y := m.viewY + (m.viewH-stripH)/2

	for i := 0; i < copies; i++ {
		x := m.viewX + m.state.Offset() + float64(i)*period
		if x+m.stripW < m.viewX || x > m.viewX+m.viewW {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		clip.DrawImage(m.strip, op)
	}
}
