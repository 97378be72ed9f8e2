package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikhail/content-planner/internal/types"
)

func TestBuildRecords_SkipsEmptyInputs(t *testing.T) {
	inputs := []types.RawInput{
		{OriginName: "note-1", Text: "a real thought worth keeping", Kind: types.KindDailyThought},
		{OriginName: "note-2", Text: "   \n\t  "},
		{OriginName: "note-3", Text: "another real thought", Kind: types.KindVoiceNote},
	}

	records, skipped := BuildRecords(inputs)

	assert.Len(t, records, 2)
	require.Len(t, skipped, 1)

	var emptyErr *EmptySourceError
	require.ErrorAs(t, skipped[0], &emptyErr)
	assert.Equal(t, "note-2", emptyErr.OriginName)
}

func TestBuildRecords_AssignsUniqueIDs(t *testing.T) {
	inputs := []types.RawInput{
		{OriginName: "a", Text: "first record"},
		{OriginName: "b", Text: "second record"},
	}

	records, skipped := BuildRecords(inputs)
	require.Empty(t, skipped)
	require.Len(t, records, 2)

	assert.NotEmpty(t, records[0].ID)
	assert.NotEmpty(t, records[1].ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestBuildRecords_StableIDsAcrossCalls(t *testing.T) {
	captured := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	inputs := []types.RawInput{
		{OriginName: "journal", Text: "a real thought worth keeping", CapturedAt: captured},
		{OriginName: "standup", Text: "another real thought", CapturedAt: captured.Add(time.Hour)},
	}

	first, _ := BuildRecords(inputs)
	second, _ := BuildRecords(inputs)

	require.Equal(t, first, second)
}

func TestBuildRecords_SortsByCaptureTime(t *testing.T) {
	base := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	inputs := []types.RawInput{
		{OriginName: "later", Text: "captured later", CapturedAt: base.Add(48 * time.Hour)},
		{OriginName: "earlier", Text: "captured earlier", CapturedAt: base},
	}

	records, _ := BuildRecords(inputs)
	require.Len(t, records, 2)
	assert.Equal(t, "earlier", records[0].OriginName)
	assert.Equal(t, "later", records[1].OriginName)
}

func TestBuildRecords_AllEmpty(t *testing.T) {
	inputs := []types.RawInput{
		{OriginName: "a", Text: ""},
		{OriginName: "b", Text: "  "},
	}

	records, skipped := BuildRecords(inputs)
	assert.Empty(t, records)
	assert.Len(t, skipped, 2)
}
