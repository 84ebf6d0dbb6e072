package tui

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/depeter/tickertape/internal/feed"
	"github.com/depeter/tickertape/internal/motion"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// testTicker builds a ticker without a screen. Event handling and rendering
// helpers never touch the screen field, only draw does.
func testTicker(text string, width, height int) *Ticker {
	t := &Ticker{
		state:  motion.New(10, 4),
		text:   text,
		speed:  10,
		width:  width,
		height: height,
	}
	t.state.SetContentWidth(float64(runewidth.StringWidth(text)))
	return t
}

func TestStripText(t *testing.T) {
	tests := []struct {
		name  string
		items []feed.Item
		want  string
	}{
		{"single", []feed.Item{{Text: "Hello"}}, "Hello"},
		{"detail in parens", []feed.Item{{Text: "Dune", Detail: "42% watched"}}, "Dune (42% watched)"},
		{"joined with bullets", []feed.Item{{Text: "One"}, {Text: "Two"}}, "One  •  Two"},
		{"empty text skipped", []feed.Item{{Text: ""}, {Text: "Two"}}, "Two"},
		{"no items", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripText(tt.items); got != tt.want {
				t.Errorf("StripText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderStripRepeatsAcrossWidth(t *testing.T) {
	got := renderStrip("abc", 0, 2, 12)
	if want := "abc  abc  ab"; string(got) != want {
		t.Errorf("renderStrip() = %q, want %q", string(got), want)
	}
}

func TestRenderStripNegativeOffsetClipsLeft(t *testing.T) {
	got := renderStrip("abc", -1, 2, 12)
	if want := "bc  abc  abc"; string(got) != want {
		t.Errorf("renderStrip() = %q, want %q", string(got), want)
	}
}

func TestRenderStripWideRunes(t *testing.T) {
	got := renderStrip("世界", 0, 2, 8)
	want := []rune{'世', 0, '界', 0, ' ', ' ', '世', 0}
	if len(got) != len(want) {
		t.Fatalf("renderStrip() returned %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderStripDropsHalfVisibleWideRune(t *testing.T) {
	got := renderStrip("世", -1, 3, 6)
	want := []rune{' ', ' ', ' ', ' ', '世', 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderStripDegenerate(t *testing.T) {
	if got := renderStrip("abc", 0, 2, 0); got != nil {
		t.Errorf("zero width should render nothing, got %d cells", len(got))
	}
	got := renderStrip("", 0, 2, 4)
	if want := "    "; string(got) != want {
		t.Errorf("empty text should render blanks, got %q", string(got))
	}
}

func TestMouseDragScrubsStrip(t *testing.T) {
	tk := testTicker("hello", 40, 10)

	tk.handleMouse(tcell.NewEventMouse(20, 5, tcell.Button1, 0))
	if !tk.state.Dragging() {
		t.Fatal("press on the strip row should start a drag")
	}

	tk.handleMouse(tcell.NewEventMouse(14, 5, tcell.Button1, 0))
	tk.state.Tick(time.Now())
	if got := tk.state.Offset(); !almost(got, -6) {
		t.Errorf("offset after dragging 6 cells left = %v, want -6", got)
	}

	tk.handleMouse(tcell.NewEventMouse(14, 5, tcell.ButtonNone, 0))
	if tk.state.Dragging() {
		t.Error("release should end the drag")
	}
}

func TestMousePressOffStripRowIgnored(t *testing.T) {
	tk := testTicker("hello", 40, 10)
	tk.handleMouse(tcell.NewEventMouse(20, 2, tcell.Button1, 0))
	if tk.state.Dragging() {
		t.Error("press outside the strip row should not start a drag")
	}
}

func TestKeyControls(t *testing.T) {
	tk := testTicker("hello", 40, 10)

	if !tk.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	if !tk.paused || tk.state.TargetVelocity() != 0 {
		t.Errorf("space should pause: paused=%v target=%v", tk.paused, tk.state.TargetVelocity())
	}

	tk.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	tk.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if got := tk.state.TargetVelocity(); !almost(got, -10) {
		t.Errorf("reverse target = %v, want -10", got)
	}

	tk.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	tk.handleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	if got := tk.state.TargetVelocity(); !almost(got, 12) {
		t.Errorf("speed up target = %v, want 12", got)
	}

	tk.handleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	tk.handleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	if got := tk.state.TargetVelocity(); !almost(got, 8) {
		t.Errorf("speed down target = %v, want 8", got)
	}

	if tk.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if tk.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}

func TestSpeedFloorIsZero(t *testing.T) {
	tk := testTicker("hello", 40, 10)
	for i := 0; i < 10; i++ {
		tk.handleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	}
	if tk.speed != 0 {
		t.Errorf("speed = %v, want floor at 0", tk.speed)
	}
}
