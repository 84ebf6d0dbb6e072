package motion

import "time"

// flickSmoothing weights the previous estimate when blending in a new
// sample. Higher values smooth harder but lag the pointer more.
const flickSmoothing = 0.7

// FlickTracker estimates the pointer's velocity along the scroll axis by
// exponentially smoothing per-sample velocities. Feed it one position per
// frame while a drag is held; Velocity at release is the exit velocity to
// hand to DragEnd.
type FlickTracker struct {
	lastPos     float64
	lastTime    time.Time
	velocity    float64
	initialized bool
}

// Observe records the pointer position at now. The first sample after a
// Reset only primes the tracker; samples that do not advance the clock are
// dropped since they carry no velocity information.
func (f *FlickTracker) Observe(now time.Time, pos float64) {
	if !f.initialized {
		f.lastPos = pos
		f.lastTime = now
		f.initialized = true
		return
	}
	dt := now.Sub(f.lastTime).Seconds()
	if dt <= 0 {
		return
	}
	inst := (pos - f.lastPos) / dt
	f.velocity = f.velocity*flickSmoothing + inst*(1-flickSmoothing)
	f.lastPos = pos
	f.lastTime = now
}

// Velocity returns the smoothed estimate in position units per second.
// Zero until at least two samples have been observed.
func (f *FlickTracker) Velocity() float64 {
	return f.velocity
}

// Reset clears the tracker for the next gesture.
func (f *FlickTracker) Reset() {
	*f = FlickTracker{}
}
