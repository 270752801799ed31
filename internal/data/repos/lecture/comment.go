package lecture

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/zoomtube-backend/internal/domain"
	"github.com/yungbote/zoomtube-backend/internal/platform/dbctx"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type CommentRepo interface {
	Create(dbc dbctx.Context, comments []*types.Comment) ([]*types.Comment, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Comment, error)
	ListByLectureID(dbc dbctx.Context, lectureID uuid.UUID) ([]*types.Comment, error)
}

type commentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	repoLog := baseLog.With("repo", "CommentRepo")
	return &commentRepo{db: db, log: repoLog}
}

func (r *commentRepo) Create(dbc dbctx.Context, comments []*types.Comment) ([]*types.Comment, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(comments) == 0 {
		return []*types.Comment{}, nil
	}
	if err := t.WithContext(dbc.Ctx).Create(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Comment, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var row types.Comment
	err := t.WithContext(dbc.Ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByLectureID returns the flat list of comments, oldest first.
func (r *commentRepo) ListByLectureID(dbc dbctx.Context, lectureID uuid.UUID) ([]*types.Comment, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	results := []*types.Comment{}
	if lectureID == uuid.Nil {
		return results, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("lecture_id = ?", lectureID).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
