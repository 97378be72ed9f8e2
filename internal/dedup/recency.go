package dedup

import (
	"time"

	"github.com/mikhail/content-planner/internal/types"
)

// AnnotateRecency sets each approved seed's recency penalty from the publish
// history snapshot. A pillar published within the lookback window earns a
// penalty in [0,1] that decays linearly with age; the freshest matching item
// wins. Penalized seeds stay in the pool as lower-priority candidates, since
// pillar reuse is acceptable when format or angle differs.
func AnnotateRecency(seeds []types.Seed, history *types.PublishHistory, lookbackDays int, now time.Time) []types.Seed {
	out := make([]types.Seed, len(seeds))
	copy(out, seeds)

	if history == nil || lookbackDays <= 0 {
		return out
	}

	penalties := PillarPenalties(history, lookbackDays, now)
	for i := range out {
		if out[i].Status != types.StatusApproved {
			continue
		}
		out[i].RecencyPenalty = penalties[out[i].PillarID]
	}
	return out
}

// PillarPenalties computes the recency penalty per pillar across all channels
// in the history. Per-channel windows are an open tuning question; the global
// maximum is the conservative reading.
func PillarPenalties(history *types.PublishHistory, lookbackDays int, now time.Time) map[string]float64 {
	cutoff := now.AddDate(0, 0, -lookbackDays)
	window := float64(lookbackDays)

	penalties := make(map[string]float64)
	for _, item := range history.Since(cutoff) {
		daysAgo := now.Sub(item.Date).Hours() / 24
		if daysAgo < 0 {
			daysAgo = 0
		}
		penalty := (window - daysAgo) / window
		if penalty > penalties[item.PillarID] {
			penalties[item.PillarID] = penalty
		}
	}
	return penalties
}
