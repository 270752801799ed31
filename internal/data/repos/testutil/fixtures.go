package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/zoomtube-backend/internal/domain"
)

func SeedLecture(tb testing.TB, ctx context.Context, tx *gorm.DB, name, videoURL string) *types.Lecture {
	tb.Helper()
	l := &types.Lecture{
		ID:       uuid.New(),
		Name:     name,
		VideoURL: videoURL,
		VideoID:  "seeded",
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed lecture: %v", err)
	}
	return l
}

func SeedComment(tb testing.TB, ctx context.Context, tx *gorm.DB, lectureID uuid.UUID, parentID *uuid.UUID, content string, created time.Time) *types.Comment {
	tb.Helper()
	c := &types.Comment{
		ID:        uuid.New(),
		LectureID: lectureID,
		ParentID:  parentID,
		Author:    "student@example.com",
		Content:   content,
		Type:      types.CommentTypeNote,
		CreatedAt: created,
	}
	if parentID != nil {
		c.Type = types.CommentTypeReply
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed comment: %v", err)
	}
	return c
}
