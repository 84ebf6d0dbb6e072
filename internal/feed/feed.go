package feed

import "context"

// Item is a single entry on a ticker row.
type Item struct {
	// Text is the main headline.
	Text string
	// Detail is an optional secondary line rendered smaller after the text.
	Detail string
	// Accent is an optional "RRGGBB" hex color for the headline. Empty
	// means the default text color.
	Accent string
	// BadgeURL is an optional image to show before the text, fetched and
	// cached by the UI layer.
	BadgeURL string
}

// Source produces the items for one ticker row. Fetch is called from a
// background goroutine on the configured refresh interval.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Item, error)
}
