package model

import "time"

// ApprovalStatus represents the review state of a queued item.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// PendingApproval is one item awaiting human review before it is accepted
// into the knowledge base. ItemData is the opaque serialized candidate
// classification payload.
type PendingApproval struct {
	ID          int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	WorkflowID  string         `gorm:"type:text;column:workflow_id;not null" json:"workflow_id"`
	ItemData    string         `gorm:"type:text;column:item_data;not null" json:"item_data"`
	Status      ApprovalStatus `gorm:"type:text;column:status;not null" json:"status"`
	ReviewedBy  *string        `gorm:"type:text;column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time     `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewNotes *string        `gorm:"type:text;column:review_notes" json:"review_notes,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null" json:"created_at"`
}

func (p *PendingApproval) TableName() string {
	return "pending_approvals"
}
