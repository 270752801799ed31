package lecture

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/zoomtube-backend/internal/domain"
	"github.com/yungbote/zoomtube-backend/internal/platform/dbctx"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

const transcriptInsertBatch = 500

type TranscriptLineRepo interface {
	Create(dbc dbctx.Context, lines []*types.TranscriptLine) ([]*types.TranscriptLine, error)
	ListByLectureID(dbc dbctx.Context, lectureID uuid.UUID) ([]*types.TranscriptLine, error)
	CountByLectureID(dbc dbctx.Context, lectureID uuid.UUID) (int64, error)
}

type transcriptLineRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTranscriptLineRepo(db *gorm.DB, baseLog *logger.Logger) TranscriptLineRepo {
	repoLog := baseLog.With("repo", "TranscriptLineRepo")
	return &transcriptLineRepo{db: db, log: repoLog}
}

// Create inserts every line as given. Re-ingesting a lecture appends
// duplicates; nothing is merged.
func (r *transcriptLineRepo) Create(dbc dbctx.Context, lines []*types.TranscriptLine) ([]*types.TranscriptLine, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(lines) == 0 {
		return []*types.TranscriptLine{}, nil
	}
	if err := t.WithContext(dbc.Ctx).CreateInBatches(&lines, transcriptInsertBatch).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// ListByLectureID returns the lecture's lines ordered by start time.
func (r *transcriptLineRepo) ListByLectureID(dbc dbctx.Context, lectureID uuid.UUID) ([]*types.TranscriptLine, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	results := []*types.TranscriptLine{}
	if lectureID == uuid.Nil {
		return results, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Where("lecture_id = ?", lectureID).
		Order("start_ms ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *transcriptLineRepo) CountByLectureID(dbc dbctx.Context, lectureID uuid.UUID) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(dbc.Ctx).
		Model(&types.TranscriptLine{}).
		Where("lecture_id = ?", lectureID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
