package history

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikhail/content-planner/internal/types"
)

// exportDateLayout matches the date titles in chat export HTML
// (e.g. "02.01.2006 15:04:05")
const exportDateLayout = "02.01.2006 15:04:05"

// ParseChannelExport parses an HTML export of channel posts into published
// items for the given channel. Pillar and format are unknown at export time:
// pillar is unclassified and format defaults to post until edited. Messages
// without a parsable date or any text are skipped.
func ParseChannelExport(r io.Reader, channel string) ([]types.PublishedItem, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse channel export HTML: %w", err)
	}

	var items []types.PublishedItem
	doc.Find(".message").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Find(".text").First().Text())
		if text == "" {
			return
		}

		title, _, _ := strings.Cut(text, "\n")
		title = strings.TrimSpace(title)

		dateTitle, ok := sel.Find(".date").First().Attr("title")
		if !ok {
			return
		}
		date, err := time.Parse(exportDateLayout, strings.TrimSpace(dateTitle))
		if err != nil {
			return
		}

		items = append(items, types.PublishedItem{
			Channel:  channel,
			Date:     date,
			PillarID: types.PillarUnclassified,
			Format:   types.FormatPost,
			Title:    title,
		})
	})

	return items, nil
}
