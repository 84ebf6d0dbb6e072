package ui

import (
	"math"
	"testing"
	"time"
)

// scriptedPointer feeds fixed pointer state to a Marquee under test.
type scriptedPointer struct {
	x, y    int
	pressed bool
}

func (p *scriptedPointer) Position() (int, int) { return p.x, p.y }
func (p *scriptedPointer) Pressed() bool        { return p.pressed }

func marqueeAlmostEqual(t *testing.T, what string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

// testMarquee returns a marquee with a 300px strip width and a viewport,
// without rendering an actual strip image.
func testMarquee(target float64, ptr *scriptedPointer) *Marquee {
	m := NewMarqueeWithInput(target, 60, ptr)
	m.SetViewport(0, 200, 800, 80)
	m.stripW = 300
	m.state.SetContentWidth(300)
	return m
}

func TestMarqueeCruisesWithoutPointer(t *testing.T) {
	ptr := &scriptedPointer{}
	m := testMarquee(120, ptr)

	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.Update(t0) // establishes the time base
	m.Update(t0.Add(250 * time.Millisecond))

	// velocity = 120 * 0.25s * 3, offset = velocity * 0.25s
	marqueeAlmostEqual(t, "Velocity", m.Velocity(), 90)
	marqueeAlmostEqual(t, "Offset", m.Offset(), -22.5)
}

func TestMarqueeDragGesture(t *testing.T) {
	ptr := &scriptedPointer{x: 400, y: 230}
	m := testMarquee(0, ptr)

	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	step := time.Second / 64

	// Press inside the viewport.
	ptr.pressed = true
	m.Update(t0)
	if !m.Dragging() {
		t.Fatal("Dragging = false after press inside viewport")
	}

	// Move 20px left.
	ptr.x = 380
	m.Update(t0.Add(step))
	if !m.Dragging() {
		t.Fatal("Dragging = false while pointer held")
	}
	marqueeAlmostEqual(t, "Offset while dragging", m.Offset(), -20)

	// Release. The strip keeps the drop position and takes the flick
	// velocity, then glides from there.
	ptr.pressed = false
	m.Update(t0.Add(2 * step))
	if m.Dragging() {
		t.Fatal("Dragging = true after release")
	}

	// Flick estimate: -20px over 1/64s smoothed by 0.3 -> -384 px/s,
	// so release velocity is +384, eased one step toward target 0.
	wantVel := 384 * (1 - 3.0/64)
	marqueeAlmostEqual(t, "Velocity after release", m.Velocity(), wantVel)
	marqueeAlmostEqual(t, "Offset after release", m.Offset(), -20-wantVel/64)
}

func TestMarqueePressOutsideViewportIgnored(t *testing.T) {
	ptr := &scriptedPointer{x: 400, y: 50, pressed: true} // above the row
	m := testMarquee(0, ptr)

	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.Update(t0)

	if m.Dragging() {
		t.Error("Dragging = true for a press outside the viewport")
	}
}

func TestMarqueeDragIsHeldWhilePointerStill(t *testing.T) {
	ptr := &scriptedPointer{x: 400, y: 230, pressed: true}
	m := testMarquee(150, ptr)

	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.Update(t0)
	for i := 1; i <= 30; i++ {
		m.Update(t0.Add(time.Duration(i) * time.Second / 60))
	}

	// The strip stays pinned under the pointer no matter how long the
	// hold lasts, while velocity keeps easing toward the target.
	marqueeAlmostEqual(t, "Offset during hold", m.Offset(), 0)
	if m.Velocity() < 100 {
		t.Errorf("Velocity during hold = %v, want eased toward 150", m.Velocity())
	}
}

func TestMarqueeSetStripNil(t *testing.T) {
	ptr := &scriptedPointer{}
	m := testMarquee(100, ptr)

	m.SetStrip(nil)
	if got := m.StripWidth(); got != 300 {
		t.Errorf("StripWidth after SetStrip(nil) = %v, want 300", got)
	}
	if w, ok := m.state.ContentWidth(); !ok || w != 300 {
		t.Errorf("content width after SetStrip(nil) = %v, %v; want 300, true", w, ok)
	}
}
