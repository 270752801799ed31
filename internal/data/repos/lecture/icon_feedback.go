package lecture

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/zoomtube-backend/internal/domain"
	"github.com/yungbote/zoomtube-backend/internal/platform/dbctx"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type IconFeedbackRepo interface {
	Create(dbc dbctx.Context, feedback []*types.IconFeedback) ([]*types.IconFeedback, error)
	ListByLectureID(dbc dbctx.Context, lectureID uuid.UUID) ([]*types.IconFeedback, error)
}

type iconFeedbackRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIconFeedbackRepo(db *gorm.DB, baseLog *logger.Logger) IconFeedbackRepo {
	repoLog := baseLog.With("repo", "IconFeedbackRepo")
	return &iconFeedbackRepo{db: db, log: repoLog}
}

func (r *iconFeedbackRepo) Create(dbc dbctx.Context, feedback []*types.IconFeedback) ([]*types.IconFeedback, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(feedback) == 0 {
		return []*types.IconFeedback{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

// ListByLectureID makes no ordering promise.
func (r *iconFeedbackRepo) ListByLectureID(dbc dbctx.Context, lectureID uuid.UUID) ([]*types.IconFeedback, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	results := []*types.IconFeedback{}
	if lectureID == uuid.Nil {
		return results, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("lecture_id = ?", lectureID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
