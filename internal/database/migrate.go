package database

import (
	"fmt"
	"log/slog"

	"github.com/AmeyaVir/bom-render/internal/classification/model"
	"gorm.io/gorm"
)

// Migrate ensures the persistence schema exists. It is idempotent and safe
// to run on every process start; an already-initialized store is a no-op.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database is nil")
	}

	err := db.AutoMigrate(
		&model.Workflow{},
		&model.KnowledgeBaseEntry{},
		&model.PendingApproval{},
		&model.WorkflowResult{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	slog.Info("database schema migrated")
	return nil
}
