package ui

// ScrollState provides reusable vertical scroll tracking with smooth animation.
// Embed this struct in screens that need scrollable content.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
}

// HandleMouseWheel updates the target scroll position from mouse wheel input.
// Call this from Update() with maxScroll as the content height that extends
// past the viewport (0 when everything fits).
func (s *ScrollState) HandleMouseWheel(maxScroll float64) {
	_, wy := MouseWheelDelta()
	if wy != 0 {
		s.TargetScrollY -= wy * ScrollWheelSpeed
		s.clamp(maxScroll)
	}
}

// Animate performs smooth scroll interpolation. Call this from Draw().
func (s *ScrollState) Animate() {
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}

// EnsureVisible scrolls so the band from top to bottom (content coordinates,
// scroll not applied) ends up inside the viewport spanning viewTop to
// viewBottom on screen.
func (s *ScrollState) EnsureVisible(top, bottom, viewTop, viewBottom float64) {
	if bottom-s.TargetScrollY > viewBottom {
		s.TargetScrollY = bottom - viewBottom
	}
	if top-s.TargetScrollY < viewTop {
		s.TargetScrollY = top - viewTop
	}
	if s.TargetScrollY < 0 {
		s.TargetScrollY = 0
	}
}

func (s *ScrollState) clamp(maxScroll float64) {
	if s.TargetScrollY > maxScroll {
		s.TargetScrollY = maxScroll
	}
	if s.TargetScrollY < 0 {
		s.TargetScrollY = 0
	}
}
