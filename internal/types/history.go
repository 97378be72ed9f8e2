package types

import "time"

// PublishedItem is one previously published post, as recorded in the publish history
type PublishedItem struct {
	Channel  string    `json:"channel"`
	Date     time.Time `json:"date"`
	PillarID string    `json:"pillar_id"`
	Format   Format    `json:"format"`
	Title    string    `json:"title"`
}

// PublishHistory is an append-only ordered sequence of published items.
// The core treats it as a read-only point-in-time snapshot.
type PublishHistory struct {
	Items []PublishedItem `json:"items"`
}

// Since returns items published on or after the cutoff, preserving order
func (h *PublishHistory) Since(cutoff time.Time) []PublishedItem {
	items := make([]PublishedItem, 0)
	for _, item := range h.Items {
		if !item.Date.Before(cutoff) {
			items = append(items, item)
		}
	}
	return items
}
