// Package voice scores seed hooks against a configurable style rubric.
package voice

import (
	"math"
	"regexp"
	"strings"

	"github.com/mikhail/content-planner/internal/config"
)

// Flag is a red-flag label triggered during voice scoring
type Flag string

// Red-flag labels. FlagBannedPhrase is hard: a match always rejects.
const (
	FlagBannedPhrase  Flag = "banned_phrase"
	FlagGenericOpener Flag = "generic_question_opener"
	FlagAICliche      Flag = "ai_cliche_phrase"
	FlagUniformLength Flag = "uniform_sentence_length"
)

// Score deductions per triggered rule
const (
	bannedPhrasePenalty  = 0.5
	genericOpenerPenalty = 0.2
	clichePenalty        = 0.15
	uniformLenPenalty    = 0.15
)

// Scorer judges text against a voice profile. Implementations must be pure and
// deterministic for the same text and profile, so runs are reproducible.
type Scorer interface {
	Score(text string, profile *config.VoiceProfile) (float64, []Flag)
}

// defaultCliches are flagged even with an empty profile; profiles extend them
var defaultCliches = []string{
	"delve into",
	"game-changer",
	"game changer",
	"in today's fast-paced world",
	"unlock the power",
	"unlock your potential",
	"take it to the next level",
	"elevate your",
	"revolutionize",
	"unleash",
	"buckle up",
	"let that sink in",
}

// defaultOpeners are question templates that read as engagement bait
var defaultOpeners = []string{
	"have you ever",
	"did you know",
	"what if i told you",
	"are you ready",
	"ever wondered",
}

var (
	wordRe          = regexp.MustCompile(`[\p{L}\p{N}']+`)
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
)

// RubricScorer is the built-in deterministic rubric: banned phrases,
// cliché matching, generic openers, and sentence-length variance.
type RubricScorer struct{}

// Score implements Scorer. Returns a scalar in [0,1] plus triggered flags.
func (RubricScorer) Score(text string, profile *config.VoiceProfile) (float64, []Flag) {
	lower := strings.ToLower(text)
	score := 1.0
	var flags []Flag

	if matchesAny(lower, profile.BannedPhrases) {
		flags = append(flags, FlagBannedPhrase)
		score -= bannedPhrasePenalty
	}

	openers := append([]string{}, defaultOpeners...)
	openers = append(openers, profile.GenericOpeners...)
	if hasGenericOpener(lower, openers) {
		flags = append(flags, FlagGenericOpener)
		score -= genericOpenerPenalty
	}

	cliches := append([]string{}, defaultCliches...)
	cliches = append(cliches, profile.ClichePhrases...)
	if n := countMatches(lower, cliches); n > 0 {
		flags = append(flags, FlagAICliche)
		score -= clichePenalty * float64(n)
	}

	if hasUniformSentenceLength(text) {
		flags = append(flags, FlagUniformLength)
		score -= uniformLenPenalty
	}

	if score < 0 {
		score = 0
	}
	return score, flags
}

func matchesAny(lower string, phrases []string) bool {
	return countMatches(lower, phrases) > 0
}

func countMatches(lower string, phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase != "" && strings.Contains(lower, phrase) {
			count++
		}
	}
	return count
}

func hasGenericOpener(lower string, openers []string) bool {
	trimmed := strings.TrimSpace(lower)
	for _, opener := range openers {
		opener = strings.ToLower(strings.TrimSpace(opener))
		if opener != "" && strings.HasPrefix(trimmed, opener) {
			return true
		}
	}
	return false
}

// hasUniformSentenceLength flags text whose sentences are suspiciously even in
// length. Needs at least 3 sentences to judge; coefficient of variation below
// 0.2 triggers the flag.
func hasUniformSentenceLength(text string) bool {
	sentences := splitRough(text)
	if len(sentences) < 3 {
		return false
	}

	lengths := make([]float64, 0, len(sentences))
	mean := 0.0
	for _, s := range sentences {
		n := float64(len(wordRe.FindAllString(s, -1)))
		lengths = append(lengths, n)
		mean += n
	}
	mean /= float64(len(lengths))
	if mean == 0 {
		return false
	}

	variance := 0.0
	for _, n := range lengths {
		variance += (n - mean) * (n - mean)
	}
	variance /= float64(len(lengths))

	return math.Sqrt(variance)/mean < 0.2
}

func splitRough(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, strings.TrimSpace(p))
		}
	}
	return sentences
}
