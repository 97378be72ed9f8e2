package dedup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikhail/content-planner/internal/types"
)

func approvedSeed(id, pillar, hook string, voiceScore float64, createdAt time.Time) types.Seed {
	return types.Seed{
		ID:         id,
		PillarID:   pillar,
		Hook:       hook,
		Status:     types.StatusApproved,
		VoiceScore: voiceScore,
		CreatedAt:  createdAt,
	}
}

func TestCollapseBatch_KeepsHighestVoiceScore(t *testing.T) {
	base := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	seeds := []types.Seed{
		approvedSeed("s1", "engineering", "the deploy failed twice on friday night", 0.7, base),
		approvedSeed("s2", "engineering", "the deploy failed twice on friday evening", 0.9, base),
		approvedSeed("s3", "engineering", "our hiring process needs a complete rethink", 0.8, base),
	}

	out := CollapseBatch(seeds, TokenOverlap, 0.6)
	require.Len(t, out, 3)

	assert.Equal(t, types.StatusRejected, out[0].Status)
	assert.Equal(t, RejectReasonDuplicate, out[0].RejectReason)
	assert.Equal(t, types.StatusApproved, out[1].Status)
	assert.Equal(t, types.StatusApproved, out[2].Status)
}

func TestCollapseBatch_TieBreaksOnEarlierCreation(t *testing.T) {
	base := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	seeds := []types.Seed{
		approvedSeed("later", "engineering", "the deploy failed twice on friday night", 0.8, base.Add(time.Hour)),
		approvedSeed("earlier", "engineering", "the deploy failed twice on friday evening", 0.8, base),
	}

	out := CollapseBatch(seeds, TokenOverlap, 0.6)

	assert.Equal(t, types.StatusRejected, out[0].Status)
	assert.Equal(t, types.StatusApproved, out[1].Status)
}

func TestCollapseBatch_DifferentPillarsNeverCollapse(t *testing.T) {
	base := time.Now()
	seeds := []types.Seed{
		approvedSeed("s1", "engineering", "the deploy failed twice on friday", 0.7, base),
		approvedSeed("s2", "leadership", "the deploy failed twice on friday", 0.9, base),
	}

	out := CollapseBatch(seeds, TokenOverlap, 0.6)

	assert.Equal(t, types.StatusApproved, out[0].Status)
	assert.Equal(t, types.StatusApproved, out[1].Status)
}

func TestCollapseBatch_BelowThresholdSurvives(t *testing.T) {
	base := time.Now()
	seeds := []types.Seed{
		approvedSeed("s1", "engineering", "we rewrote the billing pipeline from scratch", 0.7, base),
		approvedSeed("s2", "engineering", "our standup meetings run too long lately", 0.9, base),
	}

	out := CollapseBatch(seeds, TokenOverlap, 0.6)

	assert.Equal(t, types.StatusApproved, out[0].Status)
	assert.Equal(t, types.StatusApproved, out[1].Status)
}

func TestCollapseBatch_IgnoresRejectedSeeds(t *testing.T) {
	base := time.Now()
	rejected := approvedSeed("s1", "engineering", "the deploy failed twice on friday", 0.9, base)
	rejected.Status = types.StatusRejected
	rejected.RejectReason = "voice_filter"

	seeds := []types.Seed{
		rejected,
		approvedSeed("s2", "engineering", "the deploy failed twice on friday", 0.5, base),
	}

	out := CollapseBatch(seeds, TokenOverlap, 0.6)

	// The rejected seed is invisible to clustering; the approved one survives
	assert.Equal(t, "voice_filter", out[0].RejectReason)
	assert.Equal(t, types.StatusApproved, out[1].Status)
}

func TestCollapseBatch_Idempotent(t *testing.T) {
	base := time.Now()
	seeds := []types.Seed{
		approvedSeed("s1", "engineering", "the deploy failed twice on friday night", 0.7, base),
		approvedSeed("s2", "engineering", "the deploy failed twice on friday evening", 0.9, base),
	}

	once := CollapseBatch(seeds, TokenOverlap, 0.6)
	twice := CollapseBatch(once, TokenOverlap, 0.6)

	assert.Equal(t, once, twice)
}

func TestCollapseBatch_TransitiveCluster(t *testing.T) {
	base := time.Now()
	// s1~s2 and s2~s3 cluster together even if s1 and s3 differ more
	seeds := []types.Seed{
		approvedSeed("s1", "engineering", "the deploy failed twice on friday night alpha beta gamma", 0.7, base),
		approvedSeed("s2", "engineering", "the deploy failed twice on friday night alpha beta delta", 0.8, base),
		approvedSeed("s3", "engineering", "the deploy failed twice on friday night alpha delta epsilon", 0.9, base),
	}

	out := CollapseBatch(seeds, TokenOverlap, 0.6)

	survivors := 0
	for _, s := range out {
		if s.Status == types.StatusApproved {
			survivors++
			assert.Equal(t, "s3", s.ID)
		}
	}
	assert.Equal(t, 1, survivors)
}
