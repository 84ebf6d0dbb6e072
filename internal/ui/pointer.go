package ui

import "github.com/hajimehoshi/ebiten/v2"

// PointerInput supplies pointer state to widgets once per frame. The
// default implementation reads the mouse and the first active touch;
// tests substitute a scripted one.
type PointerInput interface {
	Position() (int, int)
	Pressed() bool
}

type ebitenPointer struct {
	touchIDs []ebiten.TouchID
}

// NewPointerInput returns the mouse/touch-backed PointerInput.
func NewPointerInput() PointerInput {
	return &ebitenPointer{}
}

func (p *ebitenPointer) Position() (int, int) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		return ebiten.TouchPosition(p.touchIDs[0])
	}
	return ebiten.CursorPosition()
}

func (p *ebitenPointer) Pressed() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	return len(p.touchIDs) > 0
}
