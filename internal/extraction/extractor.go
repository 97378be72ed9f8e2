// Package extraction scans source records and produces candidate content seeds.
package extraction

import (
	"context"

	"github.com/mikhail/content-planner/internal/config"
	"github.com/mikhail/content-planner/internal/types"
)

// Extractor produces candidate seeds from a batch of source records.
// Implementations must ground every seed in exactly one source record: a
// hook/insight pair that cannot be traced to a contiguous span of its source's
// text is a defect, not a feature.
type Extractor interface {
	Extract(ctx context.Context, records []types.SourceRecord, cfg *config.Config) ([]types.Seed, error)
}

// Grounded reports whether text appears in sourceText, ignoring case and
// whitespace differences. Used to verify that extracted seeds are real.
func Grounded(sourceText, text string) bool {
	if text == "" {
		return false
	}
	return contains(normalizeForGrounding(sourceText), normalizeForGrounding(text))
}
