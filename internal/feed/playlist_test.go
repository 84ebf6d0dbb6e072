package feed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writePlaylist(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playlist.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write playlist: %v", err)
	}
	return path
}

func TestPlaylistFetch(t *testing.T) {
	path := writePlaylist(t, `items:
  - text: "Breaking: Go 1.24 released"
    detail: "go.dev"
    color: "F0B429"
  - text: "Second item"
  - text: ""
  - detail: "no text, skipped"
`)

	items, err := NewPlaylistSource(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Fetch returned %d items, want 2", len(items))
	}
	first := items[0]
	if first.Text != "Breaking: Go 1.24 released" {
		t.Errorf("items[0].Text = %q", first.Text)
	}
	if first.Detail != "go.dev" {
		t.Errorf("items[0].Detail = %q, want %q", first.Detail, "go.dev")
	}
	if first.Accent != "F0B429" {
		t.Errorf("items[0].Accent = %q, want %q", first.Accent, "F0B429")
	}
	if items[1].Accent != "" {
		t.Errorf("items[1].Accent = %q, want empty", items[1].Accent)
	}
}

func TestPlaylistMissingFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	items, err := NewPlaylistSource(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch of missing file returned error: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("Fetch of missing file returned no items, want demo playlist")
	}
}

func TestPlaylistEmptyFileFallsBack(t *testing.T) {
	path := writePlaylist(t, "items: []\n")
	items, err := NewPlaylistSource(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("Fetch of empty playlist returned no items, want demo playlist")
	}
}

func TestPlaylistMalformedFile(t *testing.T) {
	path := writePlaylist(t, "items: [unclosed\n")
	if _, err := NewPlaylistSource(path).Fetch(context.Background()); err == nil {
		t.Fatal("Fetch of malformed playlist returned nil error")
	}
}
