package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/tickertape/internal/app"
	"github.com/depeter/tickertape/internal/cache"
	"github.com/depeter/tickertape/internal/config"
	"github.com/depeter/tickertape/internal/feed"
	"github.com/depeter/tickertape/internal/jellyfin"
	"github.com/depeter/tickertape/internal/settings"
	"github.com/depeter/tickertape/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game   *app.Game
	cfg    *config.Config
	prefs  *settings.Manager
	badges *cache.BadgeCache
}

// buildSources assembles the feed sources the ticker rows are fed from.
// There is always a playlist row; a Jellyfin row joins it when configured.
func (sf *screenFactory) buildSources() []feed.Source {
	var sources []feed.Source

	playlistPath, err := sf.cfg.PlaylistPath()
	if err != nil {
		log.Printf("Failed to resolve playlist path: %v", err)
	} else {
		sources = append(sources, feed.NewPlaylistSource(playlistPath))
	}

	jf := sf.cfg.Feeds.Jellyfin
	if jf.Enabled && jf.URL != "" && jf.APIKey != "" {
		client := jellyfin.NewClient(jf.URL, jf.APIKey, jf.UserID)
		sources = append(sources, feed.NewJellyfinSource(client))
	}

	return sources
}

func (sf *screenFactory) tickerKeys() ui.TickerKeys {
	kb := sf.cfg.Keybinds
	return ui.TickerKeys{
		Pause:      app.ParseKeyOr(kb.Pause, ebiten.KeySpace),
		SpeedUp:    app.ParseKeyOr(kb.SpeedUp, ebiten.KeyK),
		SpeedDown:  app.ParseKeyOr(kb.SpeedDown, ebiten.KeyJ),
		Reverse:    app.ParseKeyOr(kb.Reverse, ebiten.KeyR),
		Settings:   app.ParseKeyOr(kb.Settings, ebiten.KeyS),
		Fullscreen: app.ParseKeyOr(kb.Fullscreen, ebiten.KeyF),
		Quit:       app.ParseKeyOr(kb.Quit, ebiten.KeyQ),
	}
}

func (sf *screenFactory) pushTicker() {
	ticker := ui.NewTickerScreen(sf.cfg, sf.prefs, sf.badges, sf.buildSources(), sf.tickerKeys(), sf.newSettingsScreen)
	sf.game.Screens.Push(ticker)
}

// newSettingsScreen builds the settings screen pushed on top of the
// ticker. Closing it persists both files.
func (sf *screenFactory) newSettingsScreen() ui.Screen {
	return ui.NewSettingsScreen(sf.cfg, sf.prefs, sf.badges, func() {
		if err := sf.cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
		if err := sf.prefs.Save(); err != nil {
			log.Printf("Failed to save preferences: %v", err)
		}
	})
}
