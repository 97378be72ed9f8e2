package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishHistorySince(t *testing.T) {
	history := &PublishHistory{
		Items: []PublishedItem{
			{Title: "old", Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
			{Title: "boundary", Date: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)},
			{Title: "recent", Date: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)},
		},
	}

	cutoff := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	recent := history.Since(cutoff)

	assert.Len(t, recent, 2)
	assert.Equal(t, "boundary", recent[0].Title)
	assert.Equal(t, "recent", recent[1].Title)
}

func TestPublishHistorySince_Empty(t *testing.T) {
	history := &PublishHistory{}
	assert.Empty(t, history.Since(time.Now()))
}
