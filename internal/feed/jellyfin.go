package feed

import (
	"context"
	"fmt"
	"log"

	"github.com/depeter/tickertape/internal/constants"
	"github.com/depeter/tickertape/internal/jellyfin"
)

const (
	resumeLimit      = 10
	nextUpLimit      = 5
	latestPerLibrary = 8
)

// Accent colors for the media sections, "RRGGBB".
const (
	accentResume = "2EC4B6"
	accentNextUp = "F0B429"
)

// JellyfinSource turns a media server's recent activity into ticker
// items: continue-watching entries first, then next-up episodes, then the
// latest additions per library.
type JellyfinSource struct {
	client *jellyfin.Client
}

func NewJellyfinSource(client *jellyfin.Client) *JellyfinSource {
	return &JellyfinSource{client: client}
}

func (s *JellyfinSource) Name() string { return "Jellyfin" }

// Fetch queries the server section by section. A section that fails is
// skipped so one bad endpoint does not blank the whole row; the error is
// only surfaced when every section came back empty.
func (s *JellyfinSource) Fetch(ctx context.Context) ([]Item, error) {
	var items []Item
	var firstErr error

	resume, err := s.client.GetResumeItems(ctx, resumeLimit)
	if err != nil {
		firstErr = err
	}
	for _, m := range resume {
		items = append(items, s.convert(m, accentResume, progressDetail(m)))
	}

	nextUp, err := s.client.GetNextUp(ctx, nextUpLimit)
	if err != nil && firstErr == nil {
		firstErr = err
	}
	for _, m := range nextUp {
		items = append(items, s.convert(m, accentNextUp, "Next up"))
	}

	views, err := s.client.GetViews(ctx)
	if err != nil {
		log.Printf("Failed to load views: %v", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	for _, view := range views {
		latest, err := s.client.GetLatestMedia(ctx, view.ID, latestPerLibrary)
		if err != nil {
			log.Printf("Failed to load latest for %s: %v", view.Name, err)
			continue
		}
		for _, m := range latest {
			items = append(items, s.convert(m, "", "New in "+view.Name))
		}
	}

	if len(items) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return items, nil
}

func (s *JellyfinSource) convert(m jellyfin.MediaItem, accent, detail string) Item {
	return Item{
		Text:     titleWithYear(m),
		Detail:   detail,
		Accent:   accent,
		BadgeURL: s.client.GetBadgeURL(m.ID),
	}
}

// titleWithYear renders "Series S2E5" for episodes and "Name (Year)"
// otherwise.
func titleWithYear(m jellyfin.MediaItem) string {
	if m.Type == "Episode" && m.SeriesName != "" {
		if m.ParentIndexNumber > 0 && m.IndexNumber > 0 {
			return fmt.Sprintf("%s S%dE%d", m.SeriesName, m.ParentIndexNumber, m.IndexNumber)
		}
		return fmt.Sprintf("%s: %s", m.SeriesName, m.Name)
	}
	if m.Year > 0 {
		return fmt.Sprintf("%s (%d)", m.Name, m.Year)
	}
	return m.Name
}

func progressDetail(m jellyfin.MediaItem) string {
	if m.RuntimeTicks > 0 && m.PlaybackPositionTicks > 0 {
		pct := m.PlaybackPositionTicks * 100 / m.RuntimeTicks
		left := (m.RuntimeTicks - m.PlaybackPositionTicks) / (constants.TicksPerSecond * 60)
		if left > 0 {
			return fmt.Sprintf("%d%% watched, %dm left", pct, left)
		}
		return fmt.Sprintf("%d%% watched", pct)
	}
	return "Continue watching"
}
