package store

import (
	"context"
	"fmt"

	"github.com/AmeyaVir/bom-render/internal/classification/model"
	"gorm.io/gorm"
)

// ResultStore handles database operations for workflow result records.
// Results are append-only; no update or delete path exists.
type ResultStore struct {
	db *gorm.DB
}

func NewResultStore(db *gorm.DB) *ResultStore {
	return &ResultStore{db: db}
}

// Add appends one result record for a workflow. summaryData may be empty,
// in which case it is stored as NULL.
func (s *ResultStore) Add(ctx context.Context, workflowID, resultsData, summaryData string) (*model.WorkflowResult, error) {
	if workflowID == "" {
		return nil, fmt.Errorf("%w: workflow_id is required", ErrInvalidArgument)
	}

	result := &model.WorkflowResult{
		WorkflowID:  workflowID,
		ResultsData: resultsData,
		SummaryData: nullable(summaryData),
	}
	if err := s.db.WithContext(ctx).Create(result).Error; err != nil {
		return nil, fmt.Errorf("failed to add result for workflow %q: %w", workflowID, err)
	}
	return result, nil
}

// ListByWorkflow returns all result records for a workflow, newest first.
func (s *ResultStore) ListByWorkflow(ctx context.Context, workflowID string) ([]model.WorkflowResult, error) {
	var results []model.WorkflowResult
	err := s.db.WithContext(ctx).
		Where("workflow_id = ?", workflowID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list results for workflow %q: %w", workflowID, err)
	}
	return results, nil
}
