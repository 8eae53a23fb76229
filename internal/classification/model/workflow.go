package model

import "time"

// WorkflowStatus represents the lifecycle state of a classification run.
// Stored as free text so the pipeline can introduce its own labels.
type WorkflowStatus string

const (
	WorkflowStatusPending   WorkflowStatus = "pending"
	WorkflowStatusRunning   WorkflowStatus = "running"
	WorkflowStatusCompleted WorkflowStatus = "completed"
	WorkflowStatusFailed    WorkflowStatus = "failed"
)

// ComparisonModeFull is the default comparison mode for new workflows.
const ComparisonModeFull = "full"

// Workflow tracks one run of the classification pipeline.
type Workflow struct {
	ID             string         `gorm:"type:text;column:id;primaryKey" json:"id"`
	Status         WorkflowStatus `gorm:"type:text;column:status;not null" json:"status"`
	ComparisonMode string         `gorm:"type:text;column:comparison_mode;not null" json:"comparison_mode"`
	Progress       int            `gorm:"column:progress;not null" json:"progress"`
	CurrentStage   *string        `gorm:"type:text;column:current_stage" json:"current_stage,omitempty"`
	Message        *string        `gorm:"type:text;column:message" json:"message,omitempty"`
	WIDocumentPath *string        `gorm:"type:text;column:wi_document_path" json:"wi_document_path,omitempty"`
	ItemMasterPath *string        `gorm:"type:text;column:item_master_path" json:"item_master_path,omitempty"`
	CreatedAt      time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (w *Workflow) TableName() string {
	return "workflows"
}
