package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay when the given key is pressed.
func ToggleDebugOverlay(key ebiten.Key) {
	if inpututil.IsKeyJustPressed(key) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugRowProvider is implemented by screens that expose motion state to
// the debug overlay.
type DebugRowProvider interface {
	DebugRows() []MarqueeDebug
}

// MarqueeDebug is one row of motion state for the debug overlay.
type MarqueeDebug struct {
	Name     string
	Offset   float64
	Velocity float64
	Target   float64
	StripW   float64
	Copies   int
	Dragging bool
}

// DrawDebugOverlay draws per-row motion state and recent remote-control
// keys if the overlay is visible.
func DrawDebugOverlay(screen *ebiten.Image, rows []MarqueeDebug) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	evdevEvents := EvdevRecentEvents()

	lines := 2 // header + timing line
	lines += max(len(rows), 1)
	lines += 2 // blank + "Remote keys:" header
	lines += max(len(evdevEvents), 1)
	panelH := float64(lines)*lineH + padY*2
	panelW := 560.0
	px := float64(ScreenWidth) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug: Motion State (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	DrawText(screen, fmt.Sprintf("fps=%.1f  tps=%.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(rows) == 0 {
		DrawText(screen, "(no rows)", x, y, FontSizeSmall, ColorTextSecondary)
		y += lineH
	}
	for _, row := range rows {
		state := ""
		if row.Dragging {
			state = "drag"
		}
		line := fmt.Sprintf("%-10s off=%8.1f  vel=%7.1f  tgt=%7.1f  strip=%6.0f  copies=%d  %s",
			row.Name, row.Offset, row.Velocity, row.Target, row.StripW, row.Copies, state)
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}

	y += lineH
	DrawText(screen, "Remote keys:", x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	if len(evdevEvents) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
		return
	}
	for _, ev := range evdevEvents {
		DrawText(screen, ev.String(), x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
