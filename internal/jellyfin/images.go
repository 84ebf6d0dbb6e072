package jellyfin

import (
	"fmt"
	"net/url"
)

// ImageType represents different image types.
type ImageType string

const (
	ImagePrimary ImageType = "Primary"
	ImageThumb   ImageType = "Thumb"
)

// GetImageURL constructs a URL for an item's image.
func (c *Client) GetImageURL(itemID string, imgType ImageType, maxWidth, maxHeight int) string {
	u := fmt.Sprintf("%s/Items/%s/Images/%s", c.serverURL, url.PathEscape(itemID), string(imgType))
	params := url.Values{}
	if maxWidth > 0 {
		params.Set("maxWidth", fmt.Sprintf("%d", maxWidth))
	}
	if maxHeight > 0 {
		params.Set("maxHeight", fmt.Sprintf("%d", maxHeight))
	}
	params.Set("quality", "90")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// GetBadgeURL returns the primary image URL sized for the small inline
// badge next to a ticker entry.
func (c *Client) GetBadgeURL(itemID string) string {
	return c.GetImageURL(itemID, ImagePrimary, 0, 160)
}
