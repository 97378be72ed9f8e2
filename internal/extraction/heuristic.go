package extraction

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/mikhail/content-planner/internal/config"
	"github.com/mikhail/content-planner/internal/types"
)

// Weights for span interest scoring
const (
	numericSignalWeight   = 0.25
	quoteSignalWeight     = 0.15
	narrativeSignalWeight = 0.20
	personalSignalWeight  = 0.20
	lengthSignalWeight    = 0.20
)

// minSpanChars filters out spans too thin to carry a hook and an insight
const minSpanChars = 60

var (
	numberRe  = regexp.MustCompile(`\d`)
	percentRe = regexp.MustCompile(`\d+\s*%`)
)

// narrativeMarkers signal multi-step stories (candidate threads)
var narrativeMarkers = []string{
	"first", "then", "after", "finally", "next", "eventually",
	"сначала", "потом", "затем", "в итоге", "наконец",
}

// personalMarkers signal first-person grounding (real stories, not theory)
var personalMarkers = []string{
	"i ", "we ", "my ", "our ", "я ", "мы ", "мой ", "моя ", "наш ",
}

// HeuristicExtractor is the default deterministic extractor. It segments each
// record into paragraph spans, scores them for estimated interest, and turns
// the strongest spans into candidate seeds.
type HeuristicExtractor struct {
	// Clock supplies seed creation timestamps; defaults to time.Now
	Clock func() time.Time
}

// Extract implements Extractor
func (e *HeuristicExtractor) Extract(_ context.Context, records []types.SourceRecord, cfg *config.Config) ([]types.Seed, error) {
	if len(records) == 0 {
		return nil, &NoMaterialError{}
	}

	now := time.Now
	if e.Clock != nil {
		now = e.Clock
	}
	createdAt := now().UTC()

	// 1. Segment every record into candidate spans and score them
	type candidate struct {
		record   *types.SourceRecord
		span     string
		interest float64
		order    int
	}
	var candidates []candidate
	order := 0
	for i := range records {
		record := &records[i]
		for _, span := range splitParagraphs(record.RawText) {
			if len(span) < minSpanChars {
				continue
			}
			if len(splitSentences(span)) < 2 {
				continue // a hook with no insight behind it is not a seed
			}
			candidates = append(candidates, candidate{
				record:   record,
				span:     span,
				interest: interestScore(span),
				order:    order,
			})
			order++
		}
	}

	if len(candidates) == 0 {
		return nil, &NoMaterialError{}
	}

	// 2. Truncate by descending interest, stable by source order
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].interest != candidates[j].interest {
			return candidates[i].interest > candidates[j].interest
		}
		return candidates[i].order < candidates[j].order
	})
	if len(candidates) > cfg.Extractor.MaxSeeds {
		candidates = candidates[:cfg.Extractor.MaxSeeds]
	}

	// 3. Re-join in original record order so output is stable
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].order < candidates[j].order
	})

	// 4. Build seeds from surviving spans
	seeds := make([]types.Seed, 0, len(candidates))
	for _, c := range candidates {
		sentences := splitSentences(c.span)
		hook := sentences[0]
		insight := joinInsight(sentences[1:])

		seeds = append(seeds, types.Seed{
			ID:              SeedID(c.record.ID, c.order, c.span),
			Title:           titleFromHook(hook),
			Hook:            hook,
			Insight:         insight,
			SourceID:        c.record.ID,
			SourceOrigin:    c.record.OriginName,
			SuggestedFormat: suggestFormat(c.span, sentences),
			PillarID:        matchPillar(c.span, cfg.Pillars),
			CreatedAt:       createdAt,
			Status:          types.StatusCandidate,
			InterestScore:   c.interest,
		})
	}

	return seeds, nil
}

// interestScore estimates how publishable a span is, in [0,1]
func interestScore(span string) float64 {
	lower := strings.ToLower(span)
	score := 0.0

	if numberRe.MatchString(span) {
		score += numericSignalWeight
	}
	if strings.ContainsAny(span, `"«»“”`) {
		score += quoteSignalWeight
	}
	if countMarkers(lower, narrativeMarkers) > 0 {
		score += narrativeSignalWeight
	}
	if countMarkers(lower, personalMarkers) > 0 {
		score += personalSignalWeight
	}

	// Longer spans carry more material, capped at ~400 chars
	lengthFactor := float64(len(span)) / 400.0
	if lengthFactor > 1.0 {
		lengthFactor = 1.0
	}
	score += lengthFactor * lengthSignalWeight

	return score
}

// suggestFormat picks a publishing format from span shape:
// factual/numeric -> post, multi-step narrative -> thread,
// single vivid moment -> story, long reflective -> article.
func suggestFormat(span string, sentences []string) types.Format {
	lower := strings.ToLower(span)

	if len(span) > 900 {
		return types.FormatArticle
	}
	if countMarkers(lower, narrativeMarkers) >= 2 || countBulletLines(span) >= 3 {
		return types.FormatThread
	}
	if percentRe.MatchString(span) || countDigitSentences(sentences) >= 2 {
		return types.FormatPost
	}
	if len(sentences) <= 3 && (strings.Contains(span, "!") || strings.ContainsAny(span, `"«»“”`)) {
		return types.FormatStory
	}
	return types.FormatPost
}

// matchPillar assigns the configured pillar with the most keyword hits.
// No confident match means unclassified, never a guess.
func matchPillar(span string, pillars []types.ContentPillar) string {
	lower := strings.ToLower(span)

	bestID := types.PillarUnclassified
	bestHits := 0
	for _, pillar := range pillars {
		hits := 0
		for _, kw := range pillar.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" && strings.Contains(lower, kw) {
				hits++
			}
		}
		if name := strings.ToLower(pillar.Name); name != "" && strings.Contains(lower, name) {
			hits++
		}
		if hits > bestHits {
			bestHits = hits
			bestID = pillar.ID
		}
	}
	return bestID
}

// joinInsight takes up to three sentences after the hook
func joinInsight(sentences []string) string {
	if len(sentences) > 3 {
		sentences = sentences[:3]
	}
	return strings.Join(sentences, " ")
}

// titleFromHook derives a short title from the hook's leading words
func titleFromHook(hook string) string {
	words := strings.Fields(strings.TrimRight(hook, ".!?"))
	if len(words) > 8 {
		words = words[:8]
	}
	return strings.Join(words, " ")
}

func countMarkers(lower string, markers []string) int {
	count := 0
	for _, m := range markers {
		if strings.Contains(lower, m) {
			count++
		}
	}
	return count
}

func countBulletLines(span string) int {
	count := 0
	for _, line := range strings.Split(span, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			count++
		}
	}
	return count
}

func countDigitSentences(sentences []string) int {
	count := 0
	for _, s := range sentences {
		if numberRe.MatchString(s) {
			count++
		}
	}
	return count
}
