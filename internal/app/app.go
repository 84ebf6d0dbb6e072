package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/tickertape/internal/config"
	"github.com/depeter/tickertape/internal/ui"
)

// Game implements ebiten.Game and manages the overall application. All
// drawing happens in the fixed design space; Layout reports it and the
// window scales.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager

	debugKey ebiten.Key
}

// NewGame creates the Game with an empty screen stack. The caller pushes
// the initial screen before RunGame.
func NewGame(cfg *config.Config) *Game {
	return &Game{
		Config:   cfg,
		Screens:  ui.NewScreenManager(),
		debugKey: ParseKeyOr(cfg.Keybinds.Debug, ebiten.KeyF12),
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen regardless of the active screen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	ui.ToggleDebugOverlay(g.debugKey)

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)

	var rows []ui.MarqueeDebug
	if p, ok := g.Screens.Current().(ui.DebugRowProvider); ok {
		rows = p.DebugRows()
	}
	ui.DrawDebugOverlay(screen, rows)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ui.ScreenWidth, ui.ScreenHeight
}
