package feed

import (
	"testing"

	"github.com/depeter/tickertape/internal/constants"
	"github.com/depeter/tickertape/internal/jellyfin"
)

func TestTitleWithYear(t *testing.T) {
	tests := []struct {
		name string
		item jellyfin.MediaItem
		want string
	}{
		{
			"movie with year",
			jellyfin.MediaItem{Name: "Dune: Part Two", Type: "Movie", Year: 2024},
			"Dune: Part Two (2024)",
		},
		{
			"movie without year",
			jellyfin.MediaItem{Name: "Home Video", Type: "Movie"},
			"Home Video",
		},
		{
			"episode with numbers",
			jellyfin.MediaItem{Name: "Ozymandias", Type: "Episode", SeriesName: "Breaking Bad", ParentIndexNumber: 5, IndexNumber: 14},
			"Breaking Bad S5E14",
		},
		{
			"episode without numbers",
			jellyfin.MediaItem{Name: "Pilot", Type: "Episode", SeriesName: "Severance"},
			"Severance: Pilot",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titleWithYear(tt.item); got != tt.want {
				t.Errorf("titleWithYear = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgressDetail(t *testing.T) {
	// 90 minutes runtime, 42% in: 52 minutes to go.
	const minuteTicks = constants.TicksPerSecond * 60
	m := jellyfin.MediaItem{
		RuntimeTicks:          90 * minuteTicks,
		PlaybackPositionTicks: 90 * minuteTicks * 42 / 100,
	}
	if got := progressDetail(m); got != "42% watched, 52m left" {
		t.Errorf("progressDetail = %q, want %q", got, "42% watched, 52m left")
	}

	// Too little runtime to express minutes keeps the bare percentage.
	m = jellyfin.MediaItem{RuntimeTicks: 1000, PlaybackPositionTicks: 425}
	if got := progressDetail(m); got != "42% watched" {
		t.Errorf("progressDetail = %q, want %q", got, "42% watched")
	}

	// Unknown runtime falls back to a generic label.
	m = jellyfin.MediaItem{PlaybackPositionTicks: 425}
	if got := progressDetail(m); got != "Continue watching" {
		t.Errorf("progressDetail = %q, want %q", got, "Continue watching")
	}
}
