package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitParagraphs(t *testing.T) {
	text := "# Daily notes\n\nfirst paragraph here\n\nsecond paragraph\nwith a second line"

	paragraphs := splitParagraphs(text)
	require.Len(t, paragraphs, 2)
	assert.Equal(t, "first paragraph here", paragraphs[0])
	assert.Equal(t, "second paragraph\nwith a second line", paragraphs[1])
}

func TestSplitParagraphs_DropsHeadingOnlyBlocks(t *testing.T) {
	assert.Empty(t, splitParagraphs("# Title\n\n## Section"))
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("It broke. We fixed it! Was it worth it? Probably")
	require.Len(t, sentences, 4)
	assert.Equal(t, "It broke.", sentences[0])
	assert.Equal(t, "We fixed it!", sentences[1])
	assert.Equal(t, "Was it worth it?", sentences[2])
	assert.Equal(t, "Probably", sentences[3])
}

func TestSplitSentences_BulletLines(t *testing.T) {
	sentences := splitSentences("- first point\n- second point ended.")
	require.Len(t, sentences, 2)
	assert.Equal(t, "first point", sentences[0])
	assert.Equal(t, "second point ended.", sentences[1])
}

func TestGrounded(t *testing.T) {
	source := "The deploy failed twice on Friday.\nWe fixed it by splitting the migration."

	assert.True(t, Grounded(source, "The deploy failed twice on Friday."))
	assert.True(t, Grounded(source, "the DEPLOY failed twice"))
	// Whitespace differences are forgiven
	assert.True(t, Grounded(source, "on Friday. We fixed it"))

	assert.False(t, Grounded(source, "The rollout succeeded on Monday."))
	assert.False(t, Grounded(source, ""))
}
