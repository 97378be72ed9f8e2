package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikhail/content-planner/internal/types"
)

func sampleBatch() *types.SeedBatch {
	return &types.SeedBatch{
		WeekID: "2026-W36",
		Seeds: []types.Seed{
			{
				ID:              "s1",
				Title:           "The deploy that failed twice",
				Hook:            "The deploy failed twice on Friday night.",
				Insight:         "The migration lock timed out because two replicas raced for it.",
				SourceOrigin:    "standup-notes",
				SuggestedFormat: types.FormatPost,
				PillarID:        "engineering",
				Status:          types.StatusApproved,
			},
			{
				ID:              "s2",
				Title:           "Hiring broke our onboarding",
				Hook:            "We grew from 4 to 9 people in one quarter.",
				Insight:         "Onboarding collapsed under the pace.",
				SourceOrigin:    "journal",
				SuggestedFormat: types.FormatThread,
				PillarID:        "leadership",
				Status:          types.StatusRejected,
				RejectReason:    "voice_filter",
			},
		},
	}
}

func TestRenderSeedBatch_NumbersVisibleSeeds(t *testing.T) {
	out := RenderSeedBatch(sampleBatch(), false)

	assert.Contains(t, out, "**Content Seeds 2026-W36**")
	assert.Contains(t, out, "**Seed #1: The deploy that failed twice**")
	assert.Contains(t, out, "**Hook:** The deploy failed twice on Friday night.")
	assert.Contains(t, out, "**Pillar:** engineering")
	assert.NotContains(t, out, "Hiring broke our onboarding")
}

func TestRenderSeedBatch_AuditIncludesRejected(t *testing.T) {
	out := RenderSeedBatch(sampleBatch(), true)

	assert.Contains(t, out, "**Seed #2: Hiring broke our onboarding**")
	assert.Contains(t, out, "**Rejected:** voice_filter")
}

func TestRenderSeedBatch_RoundTrip(t *testing.T) {
	batch := sampleBatch()
	rendered := RenderSeedBatch(batch, true)

	parsed, err := ParseSeedBatch(rendered)
	require.NoError(t, err)

	assert.Equal(t, batch.WeekID, parsed.WeekID)
	require.Len(t, parsed.Seeds, 2)
	for i := range batch.Seeds {
		assert.Equal(t, batch.Seeds[i].Title, parsed.Seeds[i].Title)
		assert.Equal(t, batch.Seeds[i].Hook, parsed.Seeds[i].Hook)
		assert.Equal(t, batch.Seeds[i].Insight, parsed.Seeds[i].Insight)
		assert.Equal(t, batch.Seeds[i].SourceOrigin, parsed.Seeds[i].SourceOrigin)
		assert.Equal(t, batch.Seeds[i].SuggestedFormat, parsed.Seeds[i].SuggestedFormat)
		assert.Equal(t, batch.Seeds[i].PillarID, parsed.Seeds[i].PillarID)
	}
	assert.Equal(t, "voice_filter", parsed.Seeds[1].RejectReason)
}

func TestParseSeedBatch_RejectsGarbage(t *testing.T) {
	_, err := ParseSeedBatch("**Seed #1: ok**\nnot a field line")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParseSeedBatch_FieldBeforeHeader(t *testing.T) {
	_, err := ParseSeedBatch("**Hook:** orphaned hook")
	assert.Error(t, err)
}

func samplePlan() *types.WeeklyPlan {
	return &types.WeeklyPlan{
		WeekID: "2026-W36",
		Assignments: []types.Assignment{
			{
				Slot: types.PlanSlot{Channel: "telegram", Day: "monday", Format: types.FormatPost},
				Seed: &types.Seed{ID: "s1", Hook: "The deploy failed twice on Friday night.", Status: types.StatusScheduled},
			},
			{
				Slot: types.PlanSlot{Channel: "telegram", Day: "thursday", Format: types.FormatThread},
			},
			{
				Slot: types.PlanSlot{Channel: "linkedin", Day: "tuesday", Format: types.FormatPost},
				Seed: &types.Seed{ID: "s3", Hook: "We grew from 4 to 9 people.", Status: types.StatusScheduled},
			},
		},
	}
}

func TestRenderWeeklyPlan_GroupsByChannel(t *testing.T) {
	out := RenderWeeklyPlan(samplePlan())

	assert.Contains(t, out, "**Weekly Plan 2026-W36**")
	assert.Contains(t, out, "**Channel: telegram**")
	assert.Contains(t, out, "**Channel: linkedin**")
	assert.Contains(t, out, "- **monday** [post] s1 | The deploy failed twice on Friday night.")
	assert.Contains(t, out, "- **thursday** [thread] — unassigned —")

	// Channels keep first-appearance order
	assert.Less(t, strings.Index(out, "telegram"), strings.Index(out, "linkedin"))
}

func TestRenderWeeklyPlan_RoundTrip(t *testing.T) {
	plan := samplePlan()
	rendered := RenderWeeklyPlan(plan)

	parsed, err := ParseWeeklyPlan(rendered)
	require.NoError(t, err)

	assert.Equal(t, plan.WeekID, parsed.WeekID)
	require.Len(t, parsed.Assignments, 3)

	for i, a := range plan.Assignments {
		assert.Equal(t, a.Slot, parsed.Assignments[i].Slot)
		if a.Seed == nil {
			assert.Nil(t, parsed.Assignments[i].Seed)
			continue
		}
		require.NotNil(t, parsed.Assignments[i].Seed)
		assert.Equal(t, a.Seed.ID, parsed.Assignments[i].Seed.ID)
		assert.Equal(t, a.Seed.Hook, parsed.Assignments[i].Seed.Hook)
		assert.Equal(t, types.StatusScheduled, parsed.Assignments[i].Seed.Status)
	}
}

func TestParseWeeklyPlan_MissingHeader(t *testing.T) {
	_, err := ParseWeeklyPlan("**Channel: telegram**\n- **monday** [post] s1 | hook")
	assert.Error(t, err)
}

func TestParseWeeklyPlan_EntryBeforeChannel(t *testing.T) {
	_, err := ParseWeeklyPlan("**Weekly Plan 2026-W36**\n- **monday** [post] s1 | hook")
	assert.Error(t, err)
}
