package dedup

import "github.com/mikhail/content-planner/internal/types"

// RejectReasonDuplicate marks seeds rejected as within-batch near-duplicates
const RejectReasonDuplicate = "duplicate_in_batch"

// CollapseBatch rejects within-batch near-duplicates among approved seeds.
// Two seeds are near-duplicates when they share a pillar and their hook+insight
// similarity exceeds the threshold. Each duplicate cluster keeps exactly one
// representative: highest voice score, ties broken by earliest CreatedAt, then
// input order. Idempotent: rejected seeds are never re-examined.
func CollapseBatch(seeds []types.Seed, sim Similarity, threshold float64) []types.Seed {
	out := make([]types.Seed, len(seeds))
	copy(out, seeds)

	// Indices of approved seeds, in input order
	var approved []int
	for i := range out {
		if out[i].Status == types.StatusApproved {
			approved = append(approved, i)
		}
	}

	// Union-find over approved seeds to form duplicate clusters
	parent := make(map[int]int, len(approved))
	for _, i := range approved {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	for a := 0; a < len(approved); a++ {
		for b := a + 1; b < len(approved); b++ {
			i, j := approved[a], approved[b]
			if out[i].PillarID != out[j].PillarID {
				continue
			}
			if sim(seedText(&out[i]), seedText(&out[j])) > threshold {
				parent[find(i)] = find(j)
			}
		}
	}

	// Pick one representative per cluster, reject the rest
	best := make(map[int]int) // cluster root -> representative index
	for _, i := range approved {
		root := find(i)
		current, ok := best[root]
		if !ok || betterRepresentative(&out[i], &out[current]) {
			best[root] = i
		}
	}

	keep := make(map[int]bool, len(best))
	for _, i := range best {
		keep[i] = true
	}
	for _, i := range approved {
		if !keep[i] {
			out[i].Status = types.StatusRejected
			out[i].RejectReason = RejectReasonDuplicate
		}
	}

	return out
}

func seedText(s *types.Seed) string {
	return s.Hook + " " + s.Insight
}

// betterRepresentative prefers higher voice score, then earlier creation.
// Equal on both means the earlier seed (lower index) already won.
func betterRepresentative(candidate, current *types.Seed) bool {
	if candidate.VoiceScore != current.VoiceScore {
		return candidate.VoiceScore > current.VoiceScore
	}
	return candidate.CreatedAt.Before(current.CreatedAt)
}
