package voice

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mikhail/content-planner/internal/config"
	"github.com/mikhail/content-planner/internal/types"
)

// RejectReasonVoice marks seeds rejected by the voice filter
const RejectReasonVoice = "voice_filter"

// Filter scores each candidate seed's hook and transitions it to approved or
// rejected. Rejected seeds are retained for audit, not deleted. Input order is
// preserved.
func Filter(seeds []types.Seed, scorer Scorer, profile *config.VoiceProfile) []types.Seed {
	out := make([]types.Seed, len(seeds))
	for i, seed := range seeds {
		score, flags := scorer.Score(seed.Hook, profile)

		seed.VoiceScore = score
		seed.VoiceFlags = flagStrings(flags)

		if score < profile.Threshold || hasHardFlag(flags) {
			seed.Status = types.StatusRejected
			seed.RejectReason = RejectReasonVoice
		} else {
			seed.Status = types.StatusApproved
		}
		out[i] = seed
	}
	return out
}

// FilterConcurrent scores seeds across workers. Each seed is an independent
// immutable input, and results land at the seed's own index, so output is
// identical to the sequential Filter regardless of execution order.
func FilterConcurrent(ctx context.Context, seeds []types.Seed, scorer Scorer, profile *config.VoiceProfile, workers int) ([]types.Seed, error) {
	if workers <= 1 || len(seeds) < 2 {
		return Filter(seeds, scorer, profile), nil
	}

	out := make([]types.Seed, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := seeds[i]
			score, flags := scorer.Score(seed.Hook, profile)

			seed.VoiceScore = score
			seed.VoiceFlags = flagStrings(flags)
			if score < profile.Threshold || hasHardFlag(flags) {
				seed.Status = types.StatusRejected
				seed.RejectReason = RejectReasonVoice
			} else {
				seed.Status = types.StatusApproved
			}
			out[i] = seed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func hasHardFlag(flags []Flag) bool {
	for _, f := range flags {
		if f == FlagBannedPhrase {
			return true
		}
	}
	return false
}

func flagStrings(flags []Flag) []string {
	if len(flags) == 0 {
		return nil
	}
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = string(f)
	}
	return out
}
