package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeBaseStore_Add(t *testing.T) {
	s := NewKnowledgeBaseStore(newTestDB(t))
	ctx := context.Background()

	label := 7
	entry, err := s.Add(ctx, "aluminum bracket", AddEntryParams{
		PartNumber:          "AL-7075-01",
		Description:         "Machined aluminum mounting bracket",
		ClassificationLabel: &label,
		ConfidenceLevel:     "high",
		WorkflowID:          "wf-1",
		ApprovedBy:          "alice",
		Metadata:            `{"source":"wi-doc"}`,
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.ApprovedAt.IsZero(), "approved_at is stamped at insert")

	// Optional fields left empty are stored as NULL.
	minimal, err := s.Add(ctx, "steel washer", AddEntryParams{})
	require.NoError(t, err)
	assert.Nil(t, minimal.PartNumber)
	assert.Nil(t, minimal.WorkflowID)
	assert.False(t, minimal.ApprovedAt.IsZero())
}

func TestKnowledgeBaseStore_AddRequiresMaterialName(t *testing.T) {
	s := NewKnowledgeBaseStore(newTestDB(t))

	_, err := s.Add(context.Background(), "", AddEntryParams{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestKnowledgeBaseStore_Search(t *testing.T) {
	s := NewKnowledgeBaseStore(newTestDB(t))
	ctx := context.Background()

	seed := []struct {
		name   string
		params AddEntryParams
	}{
		{"Aluminum Bracket", AddEntryParams{PartNumber: "AL-100"}},
		{"steel washer", AddEntryParams{Description: "zinc-plated STEEL washer"}},
		{"copper wire", AddEntryParams{PartNumber: "CU-ALX-9"}},
	}
	for _, item := range seed {
		_, err := s.Add(ctx, item.name, item.params)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	// Case-insensitive substring across all three fields.
	entries, err := s.Search(ctx, "al", 50)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "copper wire", entries[0].MaterialName) // matched via part number, newest first
	assert.Equal(t, "Aluminum Bracket", entries[1].MaterialName)

	entries, err = s.Search(ctx, "STEEL", 50)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "steel washer", entries[0].MaterialName)

	entries, err = s.Search(ctx, "titanium", 50)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestKnowledgeBaseStore_SearchEmptyQuery(t *testing.T) {
	s := NewKnowledgeBaseStore(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := s.Add(ctx, name, AddEntryParams{})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	entries, err := s.Search(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].MaterialName)
	assert.Equal(t, "second", entries[1].MaterialName)
}

func TestKnowledgeBaseStore_StatsEmpty(t *testing.T) {
	s := NewKnowledgeBaseStore(newTestDB(t))

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalItems)
	assert.EqualValues(t, 0, stats.TotalWorkflows)
	assert.EqualValues(t, 0, stats.TotalMatches)
	assert.Equal(t, 0.0, stats.MatchRate)
}

func TestKnowledgeBaseStore_Stats(t *testing.T) {
	s := NewKnowledgeBaseStore(newTestDB(t))
	ctx := context.Background()

	entries := []AddEntryParams{
		{ConfidenceLevel: "high", WorkflowID: "wf-1"},
		{ConfidenceLevel: "high", WorkflowID: "wf-1"},
		{ConfidenceLevel: "low", WorkflowID: "wf-2"},
	}
	for _, params := range entries {
		_, err := s.Add(ctx, "material", params)
		require.NoError(t, err)
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalItems)
	assert.EqualValues(t, 2, stats.TotalWorkflows)
	assert.EqualValues(t, 3, stats.TotalMatches)
	assert.Equal(t, 66.7, stats.MatchRate) // round(2/3*100, 1)
}
