package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := DefaultConfig()
	if cfg.Marquee.Speed != want.Marquee.Speed {
		t.Errorf("Marquee.Speed = %v, want default %v", cfg.Marquee.Speed, want.Marquee.Speed)
	}
	if cfg.Keybinds.Pause != want.Keybinds.Pause {
		t.Errorf("Keybinds.Pause = %q, want default %q", cfg.Keybinds.Pause, want.Keybinds.Pause)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Marquee.Speed = 75.5
	cfg.Marquee.Spacing = 40
	cfg.Feeds.Jellyfin.Enabled = true
	cfg.Feeds.Jellyfin.URL = "https://media.example.org"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Marquee.Speed != 75.5 {
		t.Errorf("Marquee.Speed = %v, want 75.5", loaded.Marquee.Speed)
	}
	if loaded.Marquee.Spacing != 40 {
		t.Errorf("Marquee.Spacing = %v, want 40", loaded.Marquee.Spacing)
	}
	if !loaded.Feeds.Jellyfin.Enabled {
		t.Error("Feeds.Jellyfin.Enabled = false, want true")
	}
	if loaded.Feeds.Jellyfin.URL != "https://media.example.org" {
		t.Errorf("Feeds.Jellyfin.URL = %q, want saved value", loaded.Feeds.Jellyfin.URL)
	}
}

// TestLoad_PartialFileKeepsDefaults writes a config that only overrides
// one section and checks the rest falls back to defaults.
func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "tickertape")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	partial := "[marquee]\nspeed = 60\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Marquee.Speed != 60 {
		t.Errorf("Marquee.Speed = %v, want 60", cfg.Marquee.Speed)
	}
	if cfg.Marquee.Spacing != DefaultConfig().Marquee.Spacing {
		t.Errorf("Marquee.Spacing = %v, want default", cfg.Marquee.Spacing)
	}
	if cfg.Window.Width != DefaultConfig().Window.Width {
		t.Errorf("Window.Width = %v, want default", cfg.Window.Width)
	}
}

func TestPlaylistPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	cfg := DefaultConfig()
	got, err := cfg.PlaylistPath()
	if err != nil {
		t.Fatalf("PlaylistPath() error = %v", err)
	}
	if got != "/tmp/xdg-test/tickertape/playlist.yaml" {
		t.Errorf("PlaylistPath() = %q, want default location", got)
	}

	cfg.Feeds.Playlist = "/data/ticker.yaml"
	got, err = cfg.PlaylistPath()
	if err != nil {
		t.Fatalf("PlaylistPath() error = %v", err)
	}
	if got != "/data/ticker.yaml" {
		t.Errorf("PlaylistPath() = %q, want configured path", got)
	}
}
