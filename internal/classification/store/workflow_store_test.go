package store

import (
	"context"
	"testing"
	"time"

	"github.com/AmeyaVir/bom-render/internal/classification/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowStore_CreateAndGet(t *testing.T) {
	s := NewWorkflowStore(newTestDB(t))
	ctx := context.Background()

	created, err := s.Create(ctx, "wf-1", "", "/var/data/uploads/wf-1/doc.pdf", "/var/data/uploads/wf-1/items.xlsx")
	require.NoError(t, err)
	assert.Equal(t, model.WorkflowStatusPending, created.Status)
	assert.Equal(t, model.ComparisonModeFull, created.ComparisonMode)
	assert.Equal(t, 0, created.Progress)

	got, err := s.Get(ctx, "wf-1")
	require.NoError(t, err)
	assert.Equal(t, "wf-1", got.ID)
	assert.Equal(t, model.WorkflowStatusPending, got.Status)
	assert.Equal(t, 0, got.Progress)
	require.NotNil(t, got.WIDocumentPath)
	assert.Equal(t, "/var/data/uploads/wf-1/doc.pdf", *got.WIDocumentPath)
	require.NotNil(t, got.ItemMasterPath)
	assert.Equal(t, "/var/data/uploads/wf-1/items.xlsx", *got.ItemMasterPath)
}

func TestWorkflowStore_CreateWithoutPaths(t *testing.T) {
	s := NewWorkflowStore(newTestDB(t))
	ctx := context.Background()

	_, err := s.Create(ctx, "wf-1", "incremental", "", "")
	require.NoError(t, err)

	got, err := s.Get(ctx, "wf-1")
	require.NoError(t, err)
	assert.Equal(t, "incremental", got.ComparisonMode)
	assert.Nil(t, got.WIDocumentPath)
	assert.Nil(t, got.ItemMasterPath)
}

func TestWorkflowStore_CreateDuplicate(t *testing.T) {
	s := NewWorkflowStore(newTestDB(t))
	ctx := context.Background()

	_, err := s.Create(ctx, "wf-1", "", "", "")
	require.NoError(t, err)

	_, err = s.Create(ctx, "wf-1", "", "", "")
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestWorkflowStore_CreateEmptyID(t *testing.T) {
	s := NewWorkflowStore(newTestDB(t))

	_, err := s.Create(context.Background(), "", "", "", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWorkflowStore_GetMissing(t *testing.T) {
	s := NewWorkflowStore(newTestDB(t))

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkflowStore_UpdateStatusPartial(t *testing.T) {
	s := NewWorkflowStore(newTestDB(t))
	ctx := context.Background()

	_, err := s.Create(ctx, "wf-1", "", "", "")
	require.NoError(t, err)

	before, err := s.Get(ctx, "wf-1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	progress := 40
	affected, err := s.UpdateStatus(ctx, "wf-1", StatusUpdate{
		Status:   model.WorkflowStatusRunning,
		Progress: &progress,
		Stage:    "extracting",
		Message:  "parsing WI document",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := s.Get(ctx, "wf-1")
	require.NoError(t, err)
	assert.Equal(t, model.WorkflowStatusRunning, got.Status)
	assert.Equal(t, 40, got.Progress)
	require.NotNil(t, got.CurrentStage)
	assert.Equal(t, "extracting", *got.CurrentStage)
	require.NotNil(t, got.Message)
	assert.Equal(t, "parsing WI document", *got.Message)
	assert.True(t, got.UpdatedAt.After(before.UpdatedAt), "updated_at must advance")

	// Omitted fields keep their prior values, but updated_at still moves.
	time.Sleep(10 * time.Millisecond)
	affected, err = s.UpdateStatus(ctx, "wf-1", StatusUpdate{Status: model.WorkflowStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	final, err := s.Get(ctx, "wf-1")
	require.NoError(t, err)
	assert.Equal(t, model.WorkflowStatusCompleted, final.Status)
	assert.Equal(t, 40, final.Progress)
	require.NotNil(t, final.CurrentStage)
	assert.Equal(t, "extracting", *final.CurrentStage)
	assert.True(t, final.UpdatedAt.After(got.UpdatedAt))
}

func TestWorkflowStore_UpdateStatusMissingRow(t *testing.T) {
	s := NewWorkflowStore(newTestDB(t))

	affected, err := s.UpdateStatus(context.Background(), "nope", StatusUpdate{Status: model.WorkflowStatusFailed})
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestWorkflowStore_ListRecent(t *testing.T) {
	s := NewWorkflowStore(newTestDB(t))
	ctx := context.Background()

	for _, id := range []string{"wf-1", "wf-2", "wf-3"} {
		_, err := s.Create(ctx, id, "", "", "")
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	workflows, err := s.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, workflows, 2)
	assert.Equal(t, "wf-3", workflows[0].ID)
	assert.Equal(t, "wf-2", workflows[1].ID)

	all, err := s.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
