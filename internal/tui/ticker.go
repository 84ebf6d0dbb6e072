// Package tui drives the marquee motion model in a terminal. One character
// cell is one motion unit, so offsets and velocities from the shared core
// translate directly into columns and columns/second.
package tui

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/depeter/tickertape/internal/feed"
	"github.com/depeter/tickertape/internal/motion"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 ticks/second
	speedStep     = 2.0
	maxSpeed      = 120.0
)

var (
	styleBase   = tcell.StyleDefault.Background(tcell.NewRGBColor(0x0C, 0x0E, 0x12))
	styleStrip  = styleBase.Foreground(tcell.NewRGBColor(0xF0, 0xB4, 0x29))
	styleTitle  = styleBase.Foreground(tcell.NewRGBColor(0x2E, 0xC4, 0xB6)).Bold(true)
	styleStatus = styleBase.Foreground(tcell.NewRGBColor(0x5C, 0x60, 0x6A))
)

// StripText flattens feed items into the single line the terminal scrolls.
func StripText(items []feed.Item) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		s := it.Text
		if it.Detail != "" {
			s += " (" + it.Detail + ")"
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "  •  ")
}

// Ticker scrolls one line of text across a tcell screen.
type Ticker struct {
	screen tcell.Screen
	state  *motion.State
	flick  motion.FlickTracker

	text  string
	speed float64

	paused   bool
	reversed bool

	width  int
	height int

	// Mouse gesture session, same shape as the pixel front-end: the press
	// column anchors the drag and translation accumulates against it.
	pressed     bool
	pressX      int
	translation float64
}

// New prepares a ticker on an already initialized screen. The caller keeps
// ownership of the screen and calls Fini after Run returns.
func New(screen tcell.Screen, items []feed.Item, speed, spacing float64) *Ticker {
	t := &Ticker{
		screen: screen,
		state:  motion.New(speed, spacing),
		text:   StripText(items),
		speed:  speed,
	}
	t.state.SetContentWidth(float64(runewidth.StringWidth(t.text)))
	return t
}

// Run blocks until the user quits (q, Esc or Ctrl-C).
func (t *Ticker) Run() {
	t.screen.SetStyle(styleBase)
	t.screen.EnableMouse()
	t.width, t.height = t.screen.Size()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.state.Tick(time.Now())
			t.draw()
		}
	}
}

func (t *Ticker) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				t.paused = !t.paused
				t.applySpeed()
			case '+', '=':
				t.speed = math.Min(t.speed+speedStep, maxSpeed)
				t.applySpeed()
			case '-', '_':
				t.speed = math.Max(t.speed-speedStep, 0)
				t.applySpeed()
			case 'r', 'R':
				t.reversed = !t.reversed
				t.applySpeed()
			}
		}
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.width, t.height = ev.Size()
		t.screen.Sync()
	}
	return true
}

// applySpeed recomputes the target velocity from speed, direction and pause.
// The motion state eases toward it, so toggles land smoothly mid-glide.
func (t *Ticker) applySpeed() {
	v := t.speed
	if t.reversed {
		v = -v
	}
	if t.paused {
		v = 0
	}
	t.state.SetTargetVelocity(v)
}

func (t *Ticker) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !t.pressed:
		if y == t.stripRow() {
			t.pressed = true
			t.pressX = x
			t.translation = 0
			t.flick.Reset()
			t.flick.Observe(ev.When(), float64(x))
			t.state.DragStart()
		}
	case down && t.pressed:
		t.translation = float64(x - t.pressX)
		t.state.DragMove(t.translation)
		t.flick.Observe(ev.When(), float64(x))
	case !down && t.pressed:
		t.pressed = false
		if err := t.state.DragEnd(t.translation, t.flick.Velocity()); err != nil {
			log.Printf("Failed to end drag: %v", err)
		}
	}
}

func (t *Ticker) stripRow() int {
	return t.height / 2
}

func (t *Ticker) draw() {
	t.screen.Clear()

	t.drawText(0, 0, "tickertape", styleTitle)

	row := t.stripRow()
	for x, r := range renderStrip(t.text, t.state.Offset(), t.state.Spacing(), t.width) {
		if r == 0 {
			continue
		}
		t.screen.SetContent(x, row, r, nil, styleStrip)
	}

	t.drawText(0, t.height-1, t.statusLine(), styleStatus)

	t.screen.Show()
}

func (t *Ticker) statusLine() string {
	state := fmt.Sprintf("%.0f cells/s", t.speed)
	if t.reversed {
		state += " reversed"
	}
	if t.paused {
		state = "paused"
	}
	return state + "   space pause  +/- speed  r reverse  drag to scrub  q quit"
}

func (t *Ticker) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x+w > t.width {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

// renderStrip lays the text into a width-cell line, repeated enough times to
// cover the line starting from offset. A cell holding 0 is the continuation
// of a preceding double-width rune and must not be drawn over. Wide runes
// straddling the left edge are dropped rather than half drawn.
func renderStrip(text string, offset, spacing float64, width int) []rune {
	if width <= 0 {
		return nil
	}
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = ' '
	}

	contentWidth := float64(runewidth.StringWidth(text))
	if contentWidth <= 0 {
		return cells
	}
	period := contentWidth + spacing
	if period <= 0 {
		period = 1
	}

	copies := motion.RepeatCount(contentWidth, spacing, float64(width)) + 1
	for i := 0; i < copies; i++ {
		col := int(math.Round(offset + float64(i)*period))
		for _, r := range text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if col >= width {
				break
			}
			if col >= 0 {
				cells[col] = r
				if w == 2 && col+1 < width {
					cells[col+1] = 0
				}
			}
			col += w
		}
	}
	return cells
}
