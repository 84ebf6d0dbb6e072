package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in     string
		want   ebiten.Key
		wantOK bool
	}{
		{"Space", ebiten.KeySpace, true},
		{"k", ebiten.KeyK, true},
		{"ENTER", ebiten.KeyEnter, true},
		{"7", ebiten.KeyDigit7, true},
		{"F12", ebiten.KeyF12, true},
		{"hyper", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("ParseKey(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseKeyOr(t *testing.T) {
	if got := ParseKeyOr("unknown", ebiten.KeySpace); got != ebiten.KeySpace {
		t.Errorf("ParseKeyOr fallback = %v, want KeySpace", got)
	}
	if got := ParseKeyOr("q", ebiten.KeySpace); got != ebiten.KeyQ {
		t.Errorf("ParseKeyOr(q) = %v, want KeyQ", got)
	}
}
