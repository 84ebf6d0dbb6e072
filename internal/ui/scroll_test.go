package ui

import "testing"

func TestEnsureVisibleScrollsDown(t *testing.T) {
	var s ScrollState
	s.EnsureVisible(900, 940, 96, 600)
	if s.TargetScrollY != 340 {
		t.Errorf("TargetScrollY = %v, want 340", s.TargetScrollY)
	}
}

func TestEnsureVisibleScrollsUp(t *testing.T) {
	s := ScrollState{ScrollY: 500, TargetScrollY: 500}
	s.EnsureVisible(120, 160, 96, 600)
	if s.TargetScrollY != 24 {
		t.Errorf("TargetScrollY = %v, want 24", s.TargetScrollY)
	}
}

func TestEnsureVisibleKeepsPosition(t *testing.T) {
	s := ScrollState{TargetScrollY: 50}
	s.EnsureVisible(200, 240, 96, 600)
	if s.TargetScrollY != 50 {
		t.Errorf("TargetScrollY = %v, want unchanged 50", s.TargetScrollY)
	}
}

func TestEnsureVisibleNeverNegative(t *testing.T) {
	s := ScrollState{TargetScrollY: 30}
	s.EnsureVisible(50, 90, 96, 600)
	if s.TargetScrollY != 0 {
		t.Errorf("TargetScrollY = %v, want clamp at 0", s.TargetScrollY)
	}
}

func TestScrollClamp(t *testing.T) {
	s := ScrollState{TargetScrollY: 75}
	s.clamp(40)
	if s.TargetScrollY != 40 {
		t.Errorf("TargetScrollY = %v, want 40", s.TargetScrollY)
	}
	s.TargetScrollY = -5
	s.clamp(40)
	if s.TargetScrollY != 0 {
		t.Errorf("TargetScrollY = %v, want 0", s.TargetScrollY)
	}
}

func TestScrollAnimateEases(t *testing.T) {
	s := ScrollState{TargetScrollY: 100}
	s.Animate()
	if s.ScrollY != 100*ScrollAnimSpeed {
		t.Errorf("ScrollY = %v, want %v", s.ScrollY, 100*ScrollAnimSpeed)
	}
}
