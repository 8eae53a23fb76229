package store

import (
	"context"
	"fmt"
	"time"

	"github.com/AmeyaVir/bom-render/internal/classification/model"
	"gorm.io/gorm"
)

// ApprovalStore handles database operations for the human review queue.
type ApprovalStore struct {
	db *gorm.DB
}

func NewApprovalStore(db *gorm.DB) *ApprovalStore {
	return &ApprovalStore{db: db}
}

// Add queues one item for human review with status "pending". itemData is
// the serialized candidate classification; this layer never parses it.
func (s *ApprovalStore) Add(ctx context.Context, workflowID, itemData string) (*model.PendingApproval, error) {
	if workflowID == "" {
		return nil, fmt.Errorf("%w: workflow_id is required", ErrInvalidArgument)
	}

	item := &model.PendingApproval{
		WorkflowID: workflowID,
		ItemData:   itemData,
		Status:     model.ApprovalStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add pending approval for workflow %q: %w", workflowID, err)
	}
	return item, nil
}

// ListPending returns items still awaiting review, newest first. When
// workflowID is non-empty the result is restricted to that workflow.
func (s *ApprovalStore) ListPending(ctx context.Context, workflowID string) ([]model.PendingApproval, error) {
	q := s.db.WithContext(ctx).Where("status = ?", model.ApprovalStatusPending)
	if workflowID != "" {
		q = q.Where("workflow_id = ?", workflowID)
	}

	var items []model.PendingApproval
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return items, nil
}

// BulkUpdateStatus resolves the review of every item whose identifier is in
// itemIDs with a single statement, stamping reviewed_at with the current
// time. An empty reviewer or notes is stored as NULL. Returns the number of
// rows affected.
//
// An empty itemIDs set is rejected with ErrInvalidArgument before any query
// is built: an IN predicate with no elements must never reach the database.
func (s *ApprovalStore) BulkUpdateStatus(ctx context.Context, itemIDs []int64, status model.ApprovalStatus, reviewer, notes string) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, fmt.Errorf("%w: item_ids cannot be empty", ErrInvalidArgument)
	}

	values := map[string]interface{}{
		"status":       status,
		"reviewed_by":  nullable(reviewer),
		"reviewed_at":  time.Now().UTC(),
		"review_notes": nullable(notes),
	}

	result := s.db.WithContext(ctx).Model(&model.PendingApproval{}).
		Where("id IN ?", itemIDs).
		Updates(values)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to bulk update approvals: %w", result.Error)
	}
	return result.RowsAffected, nil
}
