package motion

import (
	"math"
	"testing"
	"time"
)

// TestFlickTracker_ConstantMotion feeds a steady rightward swipe and
// expects the estimate to settle on the true velocity.
func TestFlickTracker_ConstantMotion(t *testing.T) {
	var f FlickTracker
	now := t0
	pos := 0.0
	// 8 px every 16ms is 500 px/s.
	for i := 0; i < 60; i++ {
		f.Observe(now, pos)
		now = now.Add(16 * time.Millisecond)
		pos += 8
	}

	if v := f.Velocity(); math.Abs(v-500) > 5 {
		t.Errorf("Velocity = %v, want within 5 of 500", v)
	}
}

func TestFlickTracker_LeftwardIsNegative(t *testing.T) {
	var f FlickTracker
	now := t0
	pos := 300.0
	for i := 0; i < 30; i++ {
		f.Observe(now, pos)
		now = now.Add(16 * time.Millisecond)
		pos -= 4
	}

	if v := f.Velocity(); v >= 0 {
		t.Errorf("Velocity = %v, want negative for leftward motion", v)
	}
}

func TestFlickTracker_FirstSamplePrimes(t *testing.T) {
	var f FlickTracker
	f.Observe(t0, 120)

	if v := f.Velocity(); v != 0 {
		t.Errorf("Velocity after one sample = %v, want 0", v)
	}
}

// TestFlickTracker_DropsZeroDeltaSamples repeats a timestamp; without the
// guard the division would produce Inf.
func TestFlickTracker_DropsZeroDeltaSamples(t *testing.T) {
	var f FlickTracker
	f.Observe(t0, 0)
	f.Observe(t0, 100)

	if v := f.Velocity(); v != 0 {
		t.Errorf("Velocity after zero-delta sample = %v, want 0", v)
	}
	if math.IsInf(f.Velocity(), 0) || math.IsNaN(f.Velocity()) {
		t.Errorf("Velocity = %v, want finite", f.Velocity())
	}
}

func TestFlickTracker_Reset(t *testing.T) {
	var f FlickTracker
	f.Observe(t0, 0)
	f.Observe(t0.Add(16*time.Millisecond), 50)
	if f.Velocity() == 0 {
		t.Fatal("setup: expected nonzero velocity before Reset")
	}

	f.Reset()

	if v := f.Velocity(); v != 0 {
		t.Errorf("Velocity after Reset = %v, want 0", v)
	}
	// Next gesture primes from scratch.
	f.Observe(t0.Add(time.Second), 1000)
	if v := f.Velocity(); v != 0 {
		t.Errorf("Velocity after post-Reset prime = %v, want 0", v)
	}
}
