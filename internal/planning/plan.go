package planning

import (
	"github.com/mikhail/content-planner/internal/config"
	"github.com/mikhail/content-planner/internal/types"
)

// Variety bonuses used when comparing candidates for a slot. Pillar coverage
// dominates format coverage, which dominates recency; voice score breaks ties.
const (
	pillarVarietyBonus = 2.0
	formatVarietyBonus = 1.0
)

// BuildPlan fills the configured slots greedily from the deduplicated pool,
// in schedule order. Constraints:
//   - a slot only takes a seed whose format is compatible with the slot's
//   - no pillar is scheduled twice unless the pool has fewer distinct pillars
//     than slots
//   - each seed is assigned at most once
//
// Selected seeds transition to scheduled. Slots that cannot be filled stay in
// the plan unassigned; when any remain, the plan is returned together with an
// InsufficientSeedsError.
func BuildPlan(pool []types.Seed, cfg *config.Config, weekID string) (*types.WeeklyPlan, error) {
	// Work on copies; callers keep their pool
	candidates := make([]*types.Seed, 0, len(pool))
	for i := range pool {
		if pool[i].Status == types.StatusApproved {
			seed := pool[i]
			candidates = append(candidates, &seed)
		}
	}

	// Degradation rule: pillar reuse is allowed only when unavoidable
	distinctPillars := make(map[string]bool)
	for _, c := range candidates {
		distinctPillars[c.PillarID] = true
	}
	allowPillarReuse := len(distinctPillars) < len(cfg.Schedule)

	maxPicks := cfg.Planner.MaxPicks
	if maxPicks <= 0 || maxPicks > len(cfg.Schedule) {
		maxPicks = len(cfg.Schedule)
	}

	usedSeeds := make(map[string]bool)
	usedPillars := make(map[string]bool)
	usedFormats := make(map[types.Format]bool)
	picked := 0

	assignments := make([]types.Assignment, 0, len(cfg.Schedule))
	for _, slot := range cfg.Schedule {
		if picked >= maxPicks {
			assignments = append(assignments, types.Assignment{Slot: slot})
			continue
		}

		best := pickBest(candidates, slot, usedSeeds, usedPillars, usedFormats, allowPillarReuse)
		if best == nil {
			assignments = append(assignments, types.Assignment{Slot: slot})
			continue
		}

		best.Status = types.StatusScheduled
		usedSeeds[best.ID] = true
		usedPillars[best.PillarID] = true
		usedFormats[best.SuggestedFormat] = true
		picked++

		assignments = append(assignments, types.Assignment{Slot: slot, Seed: best})
	}

	plan := &types.WeeklyPlan{WeekID: weekID, Assignments: assignments}

	if unfilled := len(cfg.Schedule) - plan.FilledCount(); unfilled > 0 && picked < maxPicks {
		return plan, &InsufficientSeedsError{Unfilled: unfilled}
	}
	return plan, nil
}

// pickBest returns the highest-value eligible candidate for the slot, or nil
func pickBest(
	candidates []*types.Seed,
	slot types.PlanSlot,
	usedSeeds map[string]bool,
	usedPillars map[string]bool,
	usedFormats map[types.Format]bool,
	allowPillarReuse bool,
) *types.Seed {
	var best *types.Seed
	bestValue := 0.0

	for _, c := range candidates {
		if usedSeeds[c.ID] {
			continue
		}
		if !types.FormatCompatible(slot.Format, c.SuggestedFormat) {
			continue // incompatible pairings are skipped, not forced
		}
		if usedPillars[c.PillarID] && !allowPillarReuse {
			continue
		}

		value := candidateValue(c, usedPillars, usedFormats)
		if best == nil || value > bestValue || (value == bestValue && tieBreak(c, best)) {
			best = c
			bestValue = value
		}
	}
	return best
}

// candidateValue scores a candidate for the current slot: unused pillar and
// format raise coverage, recency penalty lowers priority.
func candidateValue(c *types.Seed, usedPillars map[string]bool, usedFormats map[types.Format]bool) float64 {
	value := -c.RecencyPenalty
	if !usedPillars[c.PillarID] {
		value += pillarVarietyBonus
	}
	if !usedFormats[c.SuggestedFormat] {
		value += formatVarietyBonus
	}
	return value
}

// tieBreak prefers the higher voice score, then the earlier seed
func tieBreak(candidate, current *types.Seed) bool {
	if candidate.VoiceScore != current.VoiceScore {
		return candidate.VoiceScore > current.VoiceScore
	}
	return candidate.CreatedAt.Before(current.CreatedAt)
}
