package jellyfin

import (
	"fmt"
	"strings"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

const (
	clientName    = "TickerTape"
	clientVersion = "0.1.0"
	deviceName    = "TickerTape Display"
)

// Client wraps the generated Jellyfin API client with convenience methods.
// Authentication uses a server API key, so the client can query as soon as
// it is constructed. Calls take a context because the feed layer polls on
// a timer and may give up on a slow server.
type Client struct {
	api       *jellyfin.APIClient
	userID    string
	serverURL string
}

func normalizeURL(serverURL string) string {
	serverURL = strings.TrimSpace(serverURL)
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}
	return strings.TrimRight(serverURL, "/")
}

func NewClient(serverURL, apiKey, userID string) *Client {
	serverURL = normalizeURL(serverURL)
	cfg := jellyfin.NewConfiguration()
	cfg.Servers = jellyfin.ServerConfigurations{
		{URL: serverURL},
	}
	cfg.AddDefaultHeader("X-Emby-Authorization",
		fmt.Sprintf(`MediaBrowser Client="%s", Device="%s", DeviceId="tickertape-1", Version="%s"`,
			clientName, deviceName, clientVersion))
	cfg.AddDefaultHeader("X-Emby-Token", apiKey)

	return &Client{
		api:       jellyfin.NewAPIClient(cfg),
		userID:    userID,
		serverURL: serverURL,
	}
}

func (c *Client) UserID() string    { return c.userID }
func (c *Client) ServerURL() string { return c.serverURL }
