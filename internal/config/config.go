package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window   WindowConfig  `toml:"window"`
	Marquee  MarqueeConfig `toml:"marquee"`
	Feeds    FeedsConfig   `toml:"feeds"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	Title      string `toml:"title"`
}

// MarqueeConfig holds the scroll parameters shared by all ticker rows.
// Speed is in pixels per second at design resolution; positive scrolls
// content leftward. Spacing is the gap between repeats of a row's content.
type MarqueeConfig struct {
	Speed    float64 `toml:"speed"`
	Spacing  float64 `toml:"spacing"`
	FontSize float64 `toml:"font_size"`
	RowGap   float64 `toml:"row_gap"`
}

type FeedsConfig struct {
	RefreshSeconds int            `toml:"refresh_seconds"`
	Playlist       string         `toml:"playlist"` // path to a YAML playlist; empty = <config dir>/playlist.yaml
	Jellyfin       JellyfinConfig `toml:"jellyfin"`
}

type JellyfinConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	UserID  string `toml:"user_id"`
}

type KeybindConfig struct {
	Pause      string `toml:"pause"`
	SpeedUp    string `toml:"speed_up"`
	SpeedDown  string `toml:"speed_down"`
	Reverse    string `toml:"reverse"`
	Settings   string `toml:"settings"`
	Fullscreen string `toml:"fullscreen"`
	Debug      string `toml:"debug"`
	Quit       string `toml:"quit"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			Title:      "TickerTape",
		},
		Marquee: MarqueeConfig{
			Speed:    120,
			Spacing:  96,
			FontSize: 44,
			RowGap:   28,
		},
		Feeds: FeedsConfig{
			RefreshSeconds: 300,
		},
		Keybinds: KeybindConfig{
			Pause:      "Space",
			SpeedUp:    "K",
			SpeedDown:  "J",
			Reverse:    "R",
			Settings:   "S",
			Fullscreen: "F",
			Debug:      "F12",
			Quit:       "Q",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tickertape"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// PlaylistPath resolves the playlist location: the configured path if set,
// otherwise playlist.yaml next to the config file.
func (c *Config) PlaylistPath() (string, error) {
	if c.Feeds.Playlist != "" {
		return c.Feeds.Playlist, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "playlist.yaml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
