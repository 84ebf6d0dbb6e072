package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/tickertape/assets/icon"
	"github.com/depeter/tickertape/internal/app"
	"github.com/depeter/tickertape/internal/cache"
	"github.com/depeter/tickertape/internal/config"
	"github.com/depeter/tickertape/internal/settings"
	"github.com/depeter/tickertape/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Init badge cache
	cacheDir := filepath.Join(os.TempDir(), "tickertape", "badges")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "badges")
	}
	badges, err := cache.NewBadgeCache(cacheDir)
	if err != nil {
		log.Fatalf("Failed to init badge cache: %v", err)
	}

	// Preferences survive restarts through the platform data store; with
	// no store they still work for the session.
	store, err := gdata.Open(gdata.Config{AppName: "tickertape"})
	if err != nil {
		log.Printf("Failed to open data store: %v (preferences will not persist)", err)
		store = nil
	}
	prefs, err := settings.NewManager(store)
	if err != nil {
		log.Fatalf("Failed to init preferences: %v", err)
	}

	game := app.NewGame(cfg)

	sf := &screenFactory{game: game, cfg: cfg, prefs: prefs, badges: badges}
	sf.pushTicker()

	// Configure window
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Window.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
