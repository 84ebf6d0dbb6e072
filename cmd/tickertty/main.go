package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/depeter/tickertape/internal/config"
	"github.com/depeter/tickertape/internal/feed"
	"github.com/depeter/tickertape/internal/tui"
)

var (
	speedFlag    = flag.Float64("speed", 12, "scroll speed in cells per second")
	spacingFlag  = flag.Float64("spacing", 8, "gap between repeats in cells")
	textFlag     = flag.String("text", "", "scroll this text instead of the playlist")
	playlistFlag = flag.String("playlist", "", "playlist file (default: the configured playlist)")
)

func main() {
	flag.Parse()

	items, err := loadItems(*textFlag, *playlistFlag)
	if err != nil {
		log.Fatalf("Failed to load items: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	tui.New(screen, items, *speedFlag, *spacingFlag).Run()
}

// loadItems resolves the strip content: -text wins, then -playlist, then
// the playlist the config points at.
func loadItems(text, playlist string) ([]feed.Item, error) {
	if text != "" {
		return []feed.Item{{Text: text}}, nil
	}

	path := playlist
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		path, err = cfg.PlaylistPath()
		if err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return feed.NewPlaylistSource(path).Fetch(ctx)
}
