package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

// newTestDB opens an in-memory SQLite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Meeting{},
		&entities.TranscriptChunk{},
		&entities.Decision{},
	); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	return db
}
