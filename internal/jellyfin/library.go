package jellyfin

import (
	"context"
	"fmt"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// MediaItem is a simplified representation of a Jellyfin item, carrying
// just the fields the ticker renders.
type MediaItem struct {
	ID                    string
	Name                  string
	Type                  string // Movie, Series, Episode, etc.
	Year                  int
	RuntimeTicks          int64
	SeriesName            string
	IndexNumber           int
	ParentIndexNumber     int
	Played                bool
	PlaybackPositionTicks int64
}

// GetViews returns the user's media libraries (Movies, TV Shows, Music, etc.)
func (c *Client) GetViews(ctx context.Context) ([]MediaItem, error) {
	result, _, err := c.api.UserViewsAPI.GetUserViews(ctx).UserId(c.userID).Execute()
	if err != nil {
		return nil, fmt.Errorf("get views: %w", err)
	}
	return convertItems(result.Items), nil
}

// GetLatestMedia returns the latest items in a library. An empty parentID
// queries across all libraries.
func (c *Client) GetLatestMedia(ctx context.Context, parentID string, limit int) ([]MediaItem, error) {
	req := c.api.UserLibraryAPI.GetLatestMedia(ctx).
		UserId(c.userID).
		Limit(int32(limit)).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		ImageTypeLimit(1)
	if parentID != "" {
		req = req.ParentId(parentID)
	}
	items, _, err := req.Execute()
	if err != nil {
		return nil, fmt.Errorf("get latest: %w", err)
	}
	return convertItems(items), nil
}

// GetResumeItems returns items the user can resume watching.
func (c *Client) GetResumeItems(ctx context.Context, limit int) ([]MediaItem, error) {
	result, _, err := c.api.ItemsAPI.GetResumeItems(ctx).
		UserId(c.userID).
		Limit(int32(limit)).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		ImageTypeLimit(1).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("get resume: %w", err)
	}
	return convertItems(result.Items), nil
}

// GetNextUp returns next episodes to watch.
func (c *Client) GetNextUp(ctx context.Context, limit int) ([]MediaItem, error) {
	result, _, err := c.api.TvShowsAPI.GetNextUp(ctx).
		UserId(c.userID).
		Limit(int32(limit)).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("get next up: %w", err)
	}
	return convertItems(result.Items), nil
}

func convertItems(items []jellyfin.BaseItemDto) []MediaItem {
	result := make([]MediaItem, 0, len(items))
	for _, item := range items {
		result = append(result, convertBaseItemDto(&item))
	}
	return result
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) MediaItem {
	mi := MediaItem{}
	if item.Id != nil {
		mi.ID = *item.Id
	}
	mi.Name = item.GetName()
	if item.Type != nil {
		mi.Type = string(*item.Type)
	}
	mi.Year = int(item.GetProductionYear())
	mi.RuntimeTicks = item.GetRunTimeTicks()
	mi.SeriesName = item.GetSeriesName()
	mi.IndexNumber = int(item.GetIndexNumber())
	mi.ParentIndexNumber = int(item.GetParentIndexNumber())

	if item.UserData.IsSet() {
		if ud := item.UserData.Get(); ud != nil {
			mi.PlaybackPositionTicks = ud.GetPlaybackPositionTicks()
			mi.Played = ud.GetPlayed()
		}
	}
	return mi
}
