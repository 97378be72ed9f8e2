package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat(FormatPost))
	assert.True(t, ValidFormat(FormatThread))
	assert.True(t, ValidFormat(FormatStory))
	assert.True(t, ValidFormat(FormatArticle))
	assert.False(t, ValidFormat("newsletter"))
	assert.False(t, ValidFormat(""))
}

func TestFormatCompatible_ExactMatch(t *testing.T) {
	assert.True(t, FormatCompatible(FormatPost, FormatPost))
	assert.True(t, FormatCompatible(FormatThread, FormatThread))
	assert.True(t, FormatCompatible(FormatArticle, FormatArticle))
}

func TestFormatCompatible_ArticleNeverFillsShortForm(t *testing.T) {
	assert.False(t, FormatCompatible(FormatPost, FormatArticle))
	assert.False(t, FormatCompatible(FormatStory, FormatArticle))
	assert.False(t, FormatCompatible(FormatThread, FormatArticle))
}

func TestFormatCompatible_Adjacent(t *testing.T) {
	// A post slot can carry a story, a thread slot can carry a post
	assert.True(t, FormatCompatible(FormatPost, FormatStory))
	assert.True(t, FormatCompatible(FormatThread, FormatPost))
	assert.True(t, FormatCompatible(FormatArticle, FormatThread))

	assert.False(t, FormatCompatible(FormatStory, FormatThread))
}

func TestSeedBatchApproved_PreservesOrder(t *testing.T) {
	batch := &SeedBatch{
		Seeds: []Seed{
			{ID: "s1", Status: StatusApproved},
			{ID: "s2", Status: StatusRejected},
			{ID: "s3", Status: StatusApproved},
			{ID: "s4", Status: StatusCandidate},
		},
	}

	approved := batch.Approved()
	assert.Len(t, approved, 2)
	assert.Equal(t, "s1", approved[0].ID)
	assert.Equal(t, "s3", approved[1].ID)
}

func TestSeedBatchApproved_Empty(t *testing.T) {
	batch := &SeedBatch{}
	assert.Empty(t, batch.Approved())
}
