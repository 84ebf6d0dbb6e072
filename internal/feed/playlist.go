package feed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlaylistSource reads ticker items from a YAML file. The file can be
// edited while the app runs; changes show up on the next refresh.
type PlaylistSource struct {
	path string
}

type playlistFile struct {
	Items []playlistEntry `yaml:"items"`
}

type playlistEntry struct {
	Text   string `yaml:"text"`
	Detail string `yaml:"detail"`
	Color  string `yaml:"color"`
}

func NewPlaylistSource(path string) *PlaylistSource {
	return &PlaylistSource{path: path}
}

func (p *PlaylistSource) Name() string { return "Playlist" }

// Fetch parses the playlist file. A missing file is not an error: the
// source falls back to a built-in demo playlist so a fresh install shows
// something moving.
func (p *PlaylistSource) Fetch(_ context.Context) ([]Item, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return demoItems(), nil
		}
		return nil, fmt.Errorf("read playlist: %w", err)
	}

	var pf playlistFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse playlist: %w", err)
	}

	items := make([]Item, 0, len(pf.Items))
	for _, e := range pf.Items {
		if e.Text == "" {
			continue
		}
		items = append(items, Item{
			Text:   e.Text,
			Detail: e.Detail,
			Accent: e.Color,
		})
	}
	if len(items) == 0 {
		return demoItems(), nil
	}
	return items, nil
}

func demoItems() []Item {
	return []Item{
		{Text: "Welcome to TickerTape", Detail: "drag a row to scrub, flick to throw"},
		{Text: "Space pauses", Detail: "K and J change speed, R reverses"},
		{Text: "Edit playlist.yaml in the config directory to feed this row", Accent: "2EC4B6"},
		{Text: "Connect a Jellyfin server in settings for a live media row"},
	}
}
