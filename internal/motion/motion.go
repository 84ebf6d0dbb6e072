package motion

import (
	"errors"
	"math"
	"time"
)

// easeRate controls how fast the current velocity approaches the target,
// in 1/seconds. At 60fps each tick closes about 5% of the gap.
const easeRate = 3.0

// ErrNotDragging is returned by DragEnd when no drag gesture is active.
var ErrNotDragging = errors.New("motion: drag end without active drag")

// dragState is the gesture half of the model. anchor and translation are
// meaningful only while active is true; leaving the gesture zeroes the
// whole struct so stale values cannot leak into the next one.
type dragState struct {
	active      bool
	anchor      float64
	translation float64
}

// State is the motion model for one marquee strip. It tracks the strip
// offset, eases the scroll velocity toward a configurable target, and lets
// a drag gesture override the offset until release.
//
// Units are up to the embedder (the desktop widget uses pixels, the
// terminal ticker uses cells); velocities are units per second. A State is
// owned by its render loop and is not safe for concurrent use.
type State struct {
	contentWidth float64
	hasContent   bool
	spacing      float64

	offset          float64
	targetVelocity  float64
	currentVelocity float64

	lastTick time.Time
	drag     dragState
}

// New returns a State cruising at targetVelocity once content is known.
// Positive velocity scrolls content toward the leading edge (leftward),
// so the offset decreases over time.
func New(targetVelocity, spacing float64) *State {
	return &State{
		targetVelocity: targetVelocity,
		spacing:        spacing,
	}
}

// Tick advances the model to now. Call once per frame with a monotonic
// clock reading; the first call only establishes the time baseline.
func (s *State) Tick(now time.Time) {
	var dt float64
	if !s.lastTick.IsZero() {
		dt = now.Sub(s.lastTick).Seconds()
	}
	// The baseline moves even when nothing else does (content unknown,
	// drag active), so idle phases never accumulate into one huge step.
	s.lastTick = now

	s.currentVelocity += (s.targetVelocity - s.currentVelocity) * dt * easeRate

	if s.drag.active {
		s.offset = s.drag.anchor + s.drag.translation
	} else {
		s.offset -= dt * s.currentVelocity
	}

	s.wrap()
}

// wrap folds the offset back into (-period, 0] so the strip position stays
// bounded no matter how long the marquee runs. Skipped until the content
// has been measured: wrapping against a guessed width would snap the strip
// once the real measurement arrives.
func (s *State) wrap() {
	if !s.hasContent {
		return
	}
	period := s.contentWidth + s.spacing
	if period <= 0 {
		return
	}
	s.offset = math.Mod(s.offset, period)
	for s.offset > 0 {
		s.offset -= period
	}
}

// SetContentWidth records the measured width of one copy of the content.
// Call it again whenever the measurement changes (new items, font change,
// a badge image arriving); the next tick wraps against the new period.
func (s *State) SetContentWidth(w float64) {
	s.contentWidth = w
	s.hasContent = true
}

// ContentWidth returns the measured width and whether one has been set.
func (s *State) ContentWidth() (float64, bool) {
	return s.contentWidth, s.hasContent
}

// SetTargetVelocity changes the cruise velocity. The change is picked up on
// the next tick and eased into, so live adjustments stay smooth.
func (s *State) SetTargetVelocity(v float64) { s.targetVelocity = v }

// TargetVelocity returns the configured cruise velocity.
func (s *State) TargetVelocity() float64 { return s.targetVelocity }

// SetSpacing changes the gap between repeated copies of the content.
func (s *State) SetSpacing(v float64) { s.spacing = v }

// Spacing returns the gap between repeated copies of the content.
func (s *State) Spacing() float64 { return s.spacing }

// Offset returns the translation of the first copy's leading edge relative
// to the viewport's leading edge. At most 0 in steady state, transiently
// positive while a gesture drags the strip forward.
func (s *State) Offset() float64 { return s.offset }

// Velocity returns the instantaneous scroll velocity.
func (s *State) Velocity() float64 { return s.currentVelocity }

// Dragging reports whether a drag gesture currently owns the offset.
func (s *State) Dragging() bool { return s.drag.active }

// DragStart begins a gesture, capturing the current offset as the anchor
// all later translations are relative to. Starting while already dragging
// keeps the original anchor.
func (s *State) DragStart() {
	if s.drag.active {
		return
	}
	s.drag = dragState{active: true, anchor: s.offset}
}

// DragMove records the cumulative translation since the gesture began.
// The value is not a per-frame delta: pass the total pointer displacement,
// and the offset follows the finger exactly. Starts a gesture implicitly
// if none is active.
func (s *State) DragMove(translation float64) {
	if !s.drag.active {
		s.DragStart()
	}
	s.drag.translation = translation
}

// DragEnd finishes the gesture: the offset is pinned at anchor plus the
// final translation, and the strip takes off at the release velocity
// before easing back toward the target. exitVelocity is the pointer's
// velocity along the scroll axis (positive rightward), in the same units
// per second as the target velocity.
func (s *State) DragEnd(translation, exitVelocity float64) error {
	if !s.drag.active {
		return ErrNotDragging
	}
	s.offset = s.drag.anchor + translation
	s.drag = dragState{}
	// Offset decreases by velocity, so continuing the pointer's direction
	// means adopting the negated release velocity.
	s.currentVelocity = -exitVelocity
	return nil
}
