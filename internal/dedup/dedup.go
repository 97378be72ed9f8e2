package dedup

import (
	"time"

	"github.com/mikhail/content-planner/internal/config"
	"github.com/mikhail/content-planner/internal/types"
)

// Process runs both deduplication passes: within-batch collapse, then recency
// annotation against the history snapshot. Returns the full seed set with
// statuses and penalties updated; rejected seeds are retained for audit.
func Process(seeds []types.Seed, history *types.PublishHistory, settings config.DedupSettings, now time.Time) []types.Seed {
	collapsed := CollapseBatch(seeds, TokenOverlap, settings.SimilarityThreshold)
	return AnnotateRecency(collapsed, history, settings.LookbackDays, now)
}
