package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/zoomtube-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Lecture{},
		&types.TranscriptLine{},
		&types.Comment{},
		&types.IconFeedback{},
	)
}

// EnsureLectureIndexes adds the lookup indexes that struct tags do not
// express. The statements are portable between Postgres and SQLite.
func EnsureLectureIndexes(db *gorm.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"idx_lecture_created_at", `CREATE INDEX IF NOT EXISTS idx_lecture_created_at ON lecture (created_at);`},
		{"idx_icon_feedback_lecture_ts", `CREATE INDEX IF NOT EXISTS idx_icon_feedback_lecture_ts ON icon_feedback (lecture_id, timestamp_ms);`},
	}
	for _, s := range stmts {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", s.name, err)
		}
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	if err := AutoMigrateAll(db); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return EnsureLectureIndexes(db)
}
