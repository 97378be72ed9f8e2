// Package rendering serializes seed batches and weekly plans into the external
// structured-text format. Pure formatting, no decision logic; every field is
// rendered losslessly so a parser can round-trip the output.
package rendering

import (
	"fmt"
	"strings"

	"github.com/mikhail/content-planner/internal/types"
)

// unassignedMarker renders empty plan slots explicitly rather than omitting them
const unassignedMarker = "— unassigned —"

// RenderSeedBatch renders seeds as numbered blocks with bold field labels.
// Rejected seeds are included only when includeRejected is set (audit view).
func RenderSeedBatch(batch *types.SeedBatch, includeRejected bool) string {
	var sb strings.Builder

	if batch.WeekID != "" {
		fmt.Fprintf(&sb, "**Content Seeds %s**\n\n", batch.WeekID)
	}

	num := 0
	for i := range batch.Seeds {
		seed := &batch.Seeds[i]
		if seed.Status == types.StatusRejected && !includeRejected {
			continue
		}
		num++
		if num > 1 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "**Seed #%d: %s**\n", num, seed.Title)
		fmt.Fprintf(&sb, "**Hook:** %s\n", seed.Hook)
		fmt.Fprintf(&sb, "**Insight:** %s\n", seed.Insight)
		fmt.Fprintf(&sb, "**Source:** %s\n", seed.SourceOrigin)
		fmt.Fprintf(&sb, "**Format:** %s\n", seed.SuggestedFormat)
		fmt.Fprintf(&sb, "**Pillar:** %s\n", seed.PillarID)
		if seed.Status == types.StatusRejected {
			fmt.Fprintf(&sb, "**Rejected:** %s\n", seed.RejectReason)
		}
	}

	return sb.String()
}

// RenderWeeklyPlan renders a plan grouped by channel, then by day. Unassigned
// slots are rendered explicitly as empty.
func RenderWeeklyPlan(plan *types.WeeklyPlan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Weekly Plan %s**\n", plan.WeekID)

	// Group by channel preserving first-appearance order
	var channels []string
	byChannel := make(map[string][]types.Assignment)
	for _, a := range plan.Assignments {
		if _, seen := byChannel[a.Slot.Channel]; !seen {
			channels = append(channels, a.Slot.Channel)
		}
		byChannel[a.Slot.Channel] = append(byChannel[a.Slot.Channel], a)
	}

	for _, channel := range channels {
		fmt.Fprintf(&sb, "\n**Channel: %s**\n", channel)
		for _, a := range byChannel[channel] {
			if a.Seed == nil {
				fmt.Fprintf(&sb, "- **%s** [%s] %s\n", a.Slot.Day, a.Slot.Format, unassignedMarker)
				continue
			}
			fmt.Fprintf(&sb, "- **%s** [%s] %s | %s\n", a.Slot.Day, a.Slot.Format, a.Seed.ID, a.Seed.Hook)
		}
	}

	return sb.String()
}
