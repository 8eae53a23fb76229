package store

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/AmeyaVir/bom-render/internal/classification/model"
	"gorm.io/gorm"
)

// KnowledgeBaseStore handles database operations for classified material
// records.
type KnowledgeBaseStore struct {
	db *gorm.DB
}

func NewKnowledgeBaseStore(db *gorm.DB) *KnowledgeBaseStore {
	return &KnowledgeBaseStore{db: db}
}

// AddEntryParams carries the optional attributes of a new knowledge base
// entry. Empty strings are stored as NULL.
type AddEntryParams struct {
	PartNumber          string
	Description         string
	ClassificationLabel *int
	ConfidenceLevel     string
	SupplierInfo        string
	WorkflowID          string
	ApprovedBy          string
	Metadata            string
}

// Add inserts one classified material. approved_at is stamped with the
// current time at insert, whether or not ApprovedBy is set; the pipeline has
// always relied on that stamping, so it is preserved here as-is.
func (s *KnowledgeBaseStore) Add(ctx context.Context, materialName string, params AddEntryParams) (*model.KnowledgeBaseEntry, error) {
	if materialName == "" {
		return nil, fmt.Errorf("%w: material_name is required", ErrInvalidArgument)
	}

	entry := &model.KnowledgeBaseEntry{
		MaterialName:        materialName,
		PartNumber:          nullable(params.PartNumber),
		Description:         nullable(params.Description),
		ClassificationLabel: params.ClassificationLabel,
		ConfidenceLevel:     nullable(params.ConfidenceLevel),
		SupplierInfo:        nullable(params.SupplierInfo),
		WorkflowID:          nullable(params.WorkflowID),
		ApprovedBy:          nullable(params.ApprovedBy),
		ApprovedAt:          time.Now().UTC(),
		Metadata:            nullable(params.Metadata),
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to add knowledge base entry %q: %w", materialName, err)
	}
	return entry, nil
}

// Search returns entries whose material name, part number, or description
// contains the query, case-insensitively. An empty query returns the most
// recent entries unfiltered. Results are newest first, bounded by limit.
func (s *KnowledgeBaseStore) Search(ctx context.Context, query string, limit int) ([]model.KnowledgeBaseEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	q := s.db.WithContext(ctx).Model(&model.KnowledgeBaseEntry{})
	if query != "" {
		// LOWER + LIKE instead of ILIKE so the same statement runs on
		// PostgreSQL and on the SQLite test database.
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(material_name) LIKE ? OR LOWER(part_number) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var entries []model.KnowledgeBaseEntry
	err := q.Order("created_at DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search knowledge base: %w", err)
	}
	return entries, nil
}

// Stats computes summary counts over the knowledge base. total_matches
// equals total_items; match_rate is the percentage of entries with high
// confidence, rounded to one decimal, and 0 on an empty table.
func (s *KnowledgeBaseStore) Stats(ctx context.Context) (*model.KnowledgeBaseStats, error) {
	var totalItems int64
	if err := s.db.WithContext(ctx).Model(&model.KnowledgeBaseEntry{}).Count(&totalItems).Error; err != nil {
		return nil, fmt.Errorf("failed to count knowledge base entries: %w", err)
	}

	var totalWorkflows int64
	err := s.db.WithContext(ctx).Model(&model.KnowledgeBaseEntry{}).
		Where("workflow_id IS NOT NULL").
		Distinct("workflow_id").
		Count(&totalWorkflows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count distinct workflows: %w", err)
	}

	var highConfidence int64
	err = s.db.WithContext(ctx).Model(&model.KnowledgeBaseEntry{}).
		Where("confidence_level = ?", model.ConfidenceLevelHigh).
		Count(&highConfidence).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count high confidence entries: %w", err)
	}

	matchRate := 0.0
	if totalItems > 0 {
		matchRate = math.Round(float64(highConfidence)/float64(totalItems)*100*10) / 10
	}

	return &model.KnowledgeBaseStats{
		TotalItems:     totalItems,
		TotalWorkflows: totalWorkflows,
		TotalMatches:   totalItems,
		MatchRate:      matchRate,
	}, nil
}
