package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AmeyaVir/bom-render/internal/classification/model"
	"gorm.io/gorm"
)

const defaultListLimit = 50

// WorkflowStore handles database operations for workflow lifecycle records.
type WorkflowStore struct {
	db *gorm.DB
}

func NewWorkflowStore(db *gorm.DB) *WorkflowStore {
	return &WorkflowStore{db: db}
}

// Create inserts a new workflow with status "pending" and progress 0.
// An empty comparisonMode defaults to "full". Empty paths are stored as NULL.
// Returns ErrDuplicateKey if the identifier already exists.
func (s *WorkflowStore) Create(ctx context.Context, id, comparisonMode, wiDocumentPath, itemMasterPath string) (*model.Workflow, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: workflow id cannot be empty", ErrInvalidArgument)
	}
	if comparisonMode == "" {
		comparisonMode = model.ComparisonModeFull
	}

	workflow := &model.Workflow{
		ID:             id,
		Status:         model.WorkflowStatusPending,
		ComparisonMode: comparisonMode,
		Progress:       0,
		WIDocumentPath: nullable(wiDocumentPath),
		ItemMasterPath: nullable(itemMasterPath),
	}

	if err := s.db.WithContext(ctx).Create(workflow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("workflow %q: %w", id, ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to create workflow %q: %w", id, err)
	}
	return workflow, nil
}

// StatusUpdate carries a partial status mutation. Progress is applied only
// when non-nil; Stage and Message are applied only when non-empty.
type StatusUpdate struct {
	Status   model.WorkflowStatus
	Progress *int
	Stage    string
	Message  string
}

// UpdateStatus applies a partial update to a workflow row. updated_at is
// always refreshed, regardless of which fields change. Returns the number of
// rows affected; zero means no workflow with that identifier exists.
func (s *WorkflowStore) UpdateStatus(ctx context.Context, id string, update StatusUpdate) (int64, error) {
	values := map[string]interface{}{
		"status":     update.Status,
		"updated_at": time.Now().UTC(),
	}
	if update.Progress != nil {
		values["progress"] = *update.Progress
	}
	if update.Stage != "" {
		values["current_stage"] = update.Stage
	}
	if update.Message != "" {
		values["message"] = update.Message
	}

	result := s.db.WithContext(ctx).Model(&model.Workflow{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update workflow %q status: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// Get retrieves a workflow by its identifier.
// Returns ErrNotFound if no such workflow exists.
func (s *WorkflowStore) Get(ctx context.Context, id string) (*model.Workflow, error) {
	var workflow model.Workflow
	if err := s.db.WithContext(ctx).First(&workflow, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("workflow %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get workflow %q: %w", id, err)
	}
	return &workflow, nil
}

// ListRecent returns the most recently created workflows, newest first.
// A non-positive limit falls back to the default of 50.
func (s *WorkflowStore) ListRecent(ctx context.Context, limit int) ([]model.Workflow, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var workflows []model.Workflow
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&workflows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	return workflows, nil
}

// nullable maps an empty string to NULL so optional text columns are not
// populated with empty strings.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
