package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

// NewSQLite opens a file-backed (or ":memory:") SQLite database for local
// development and tests.
func NewSQLite(log *logger.Logger, path string) (*gorm.DB, error) {
	serviceLog := log.With("service", "SQLite")

	path = strings.TrimSpace(path)
	if path == "" {
		path = "zoomtube.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   newGormLogger(serviceLog),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite %q: %w", path, err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise see its own empty database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	serviceLog.Info("Opened SQLite", "path", path)
	return db, nil
}
