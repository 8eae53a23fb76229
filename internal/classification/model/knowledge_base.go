package model

import "time"

// ConfidenceLevelHigh is the confidence label counted as a match by the
// knowledge base statistics.
const ConfidenceLevelHigh = "high"

// KnowledgeBaseEntry is one approved, classified material record. WorkflowID
// is a correlation tag back to the workflow that produced the entry; it is
// not an enforced foreign key. Metadata is opaque serialized text that this
// layer never parses.
type KnowledgeBaseEntry struct {
	ID                  int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MaterialName        string    `gorm:"type:text;column:material_name;not null" json:"material_name"`
	PartNumber          *string   `gorm:"type:text;column:part_number" json:"part_number,omitempty"`
	Description         *string   `gorm:"type:text;column:description" json:"description,omitempty"`
	ClassificationLabel *int      `gorm:"column:classification_label" json:"classification_label,omitempty"`
	ConfidenceLevel     *string   `gorm:"type:text;column:confidence_level" json:"confidence_level,omitempty"`
	SupplierInfo        *string   `gorm:"type:text;column:supplier_info" json:"supplier_info,omitempty"`
	WorkflowID          *string   `gorm:"type:text;column:workflow_id" json:"workflow_id,omitempty"`
	ApprovedBy          *string   `gorm:"type:text;column:approved_by" json:"approved_by,omitempty"`
	ApprovedAt          time.Time `gorm:"column:approved_at" json:"approved_at"`
	Metadata            *string   `gorm:"type:text;column:metadata" json:"metadata,omitempty"`
	CreatedAt           time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (e *KnowledgeBaseEntry) TableName() string {
	return "knowledge_base"
}

// KnowledgeBaseStats summarizes the knowledge base for dashboards.
// TotalMatches mirrors TotalItems: every entry in the knowledge base counts
// as a match. MatchRate is the percentage of entries with high confidence,
// rounded to one decimal place.
type KnowledgeBaseStats struct {
	TotalItems     int64   `json:"total_items"`
	TotalWorkflows int64   `json:"total_workflows"`
	TotalMatches   int64   `json:"total_matches"`
	MatchRate      float64 `json:"match_rate"`
}
