package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
	"github.com/meetnotes/meetnotes/pkg/config"
)

// NewSQLiteDB opens the on-device SQLite database using GORM and the
// pure-Go driver. The parent directory is created when missing.
func NewSQLiteDB(cfg *config.Config) (*gorm.DB, error) {
	path := cfg.DatabasePath

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	gormLogger := logger.Default.LogMode(logger.Error)
	if cfg.Debug {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	// WAL keeps a second store handle (e.g. a background invocation
	// surface) from blocking the foreground one; busy_timeout serializes
	// the rest.
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// A concurrently opened handle can hold the file briefly during WAL
	// setup; retry the ping instead of failing on first contact.
	ping := func() error {
		return sqlDB.Ping()
	}
	if err := backoff.Retry(ping, backoff.WithMaxRetries(backoff.NewConstantBackOff(200*time.Millisecond), 5)); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for all stored entities
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Meeting{},
		&entities.TranscriptChunk{},
		&entities.Decision{},
	)
}

// CloseDB closes the underlying database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
