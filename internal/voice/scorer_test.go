package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikhail/content-planner/internal/config"
)

func TestRubricScore_CleanText(t *testing.T) {
	profile := &config.VoiceProfile{Threshold: 0.5}

	score, flags := RubricScorer{}.Score("The migration lock timed out twice before we caught it.", profile)

	assert.Equal(t, 1.0, score)
	assert.Empty(t, flags)
}

func TestRubricScore_BannedPhrase(t *testing.T) {
	profile := &config.VoiceProfile{
		BannedPhrases: []string{"synergy"},
	}

	score, flags := RubricScorer{}.Score("We found real synergy between the two teams.", profile)

	assert.Contains(t, flags, FlagBannedPhrase)
	assert.InDelta(t, 0.5, score, 0.001)
}

func TestRubricScore_GenericOpener(t *testing.T) {
	profile := &config.VoiceProfile{}

	score, flags := RubricScorer{}.Score("Have you ever shipped on a Friday?", profile)

	assert.Contains(t, flags, FlagGenericOpener)
	assert.InDelta(t, 0.8, score, 0.001)
}

func TestRubricScore_GenericOpener_OnlyAtStart(t *testing.T) {
	profile := &config.VoiceProfile{}

	_, flags := RubricScorer{}.Score("I asked the team: have you ever profiled this code?", profile)
	assert.NotContains(t, flags, FlagGenericOpener)
}

func TestRubricScore_ClichesStack(t *testing.T) {
	profile := &config.VoiceProfile{}

	score, flags := RubricScorer{}.Score("This game-changer will revolutionize everything we ship.", profile)

	assert.Contains(t, flags, FlagAICliche)
	// Two clichés matched, 0.15 each
	assert.InDelta(t, 0.7, score, 0.001)
}

func TestRubricScore_ProfileExtendsCliches(t *testing.T) {
	profile := &config.VoiceProfile{
		ClichePhrases: []string{"circle back"},
	}

	_, flags := RubricScorer{}.Score("Let's circle back on the rollout plan.", profile)
	assert.Contains(t, flags, FlagAICliche)
}

func TestRubricScore_UniformSentenceLength(t *testing.T) {
	profile := &config.VoiceProfile{}

	// Four sentences of exactly five words each
	text := "We shipped the feature today. We fixed the bug yesterday. We wrote the tests first. We closed the ticket after."
	score, flags := RubricScorer{}.Score(text, profile)

	assert.Contains(t, flags, FlagUniformLength)
	assert.InDelta(t, 0.85, score, 0.001)
}

func TestRubricScore_VariedSentenceLengthPasses(t *testing.T) {
	profile := &config.VoiceProfile{}

	text := "It broke. The connection pool had been silently dropping idle connections for weeks before anyone noticed the pattern. We fixed it in an hour."
	_, flags := RubricScorer{}.Score(text, profile)

	assert.NotContains(t, flags, FlagUniformLength)
}

func TestRubricScore_NeverNegative(t *testing.T) {
	profile := &config.VoiceProfile{
		BannedPhrases: []string{"thrilled to announce"},
	}

	text := "Have you ever been thrilled to announce a game-changer that will revolutionize and unleash and elevate your workflow to unlock the power within?"
	score, _ := RubricScorer{}.Score(text, profile)

	assert.GreaterOrEqual(t, score, 0.0)
}

func TestRubricScore_Deterministic(t *testing.T) {
	profile := &config.VoiceProfile{Threshold: 0.5}
	text := "Did you know the cache was the bottleneck all along?"

	s1, f1 := RubricScorer{}.Score(text, profile)
	s2, f2 := RubricScorer{}.Score(text, profile)

	assert.Equal(t, s1, s2)
	assert.Equal(t, f1, f2)
}
