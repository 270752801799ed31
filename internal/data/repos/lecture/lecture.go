package lecture

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/zoomtube-backend/internal/domain"
	"github.com/yungbote/zoomtube-backend/internal/platform/dbctx"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type LectureRepo interface {
	Create(dbc dbctx.Context, lectures []*types.Lecture) ([]*types.Lecture, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Lecture, error)
	GetByVideoURL(dbc dbctx.Context, videoURL string) (*types.Lecture, error)
	List(dbc dbctx.Context) ([]*types.Lecture, error)
}

type lectureRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLectureRepo(db *gorm.DB, baseLog *logger.Logger) LectureRepo {
	repoLog := baseLog.With("repo", "LectureRepo")
	return &lectureRepo{db: db, log: repoLog}
}

func (r *lectureRepo) Create(dbc dbctx.Context, lectures []*types.Lecture) ([]*types.Lecture, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(lectures) == 0 {
		return []*types.Lecture{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&lectures).Error; err != nil {
		return nil, err
	}
	return lectures, nil
}

// GetByID returns nil, nil when no lecture has the id.
func (r *lectureRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Lecture, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Lecture
	err := t.WithContext(dbc.Ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByVideoURL returns the oldest lecture registered for videoURL, or nil.
func (r *lectureRepo) GetByVideoURL(dbc dbctx.Context, videoURL string) (*types.Lecture, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if videoURL == "" {
		return nil, nil
	}
	var rows []*types.Lecture
	if err := t.WithContext(dbc.Ctx).
		Where("video_url = ?", videoURL).
		Order("created_at ASC, id ASC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *lectureRepo) List(dbc dbctx.Context) ([]*types.Lecture, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	results := []*types.Lecture{}
	if err := t.WithContext(dbc.Ctx).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
