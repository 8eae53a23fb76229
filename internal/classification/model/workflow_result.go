package model

import "time"

// WorkflowResult is an append-only record of a completed classification
// run's output. ResultsData and SummaryData are opaque serialized payloads.
type WorkflowResult struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	WorkflowID  string    `gorm:"type:text;column:workflow_id;not null" json:"workflow_id"`
	ResultsData string    `gorm:"type:text;column:results_data;not null" json:"results_data"`
	SummaryData *string   `gorm:"type:text;column:summary_data" json:"summary_data,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (r *WorkflowResult) TableName() string {
	return "workflow_results"
}
