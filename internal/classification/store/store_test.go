package store

import (
	"testing"
	"time"

	"github.com/AmeyaVir/bom-render/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema
// migrated, mirroring the production gorm configuration.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	// Second run against an initialized store must be a no-op.
	require.NoError(t, database.Migrate(db))

	for _, table := range []string{"workflows", "knowledge_base", "pending_approvals", "workflow_results"} {
		require.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}
