package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/zoomtube-backend/internal/data/repos"
	types "github.com/yungbote/zoomtube-backend/internal/domain"
	"github.com/yungbote/zoomtube-backend/internal/platform/apierr"
	"github.com/yungbote/zoomtube-backend/internal/platform/dbctx"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type PostFeedbackInput struct {
	LectureID   uuid.UUID
	TimestampMs *int64
	IconType    string
}

type FeedbackService interface {
	Post(ctx context.Context, in PostFeedbackInput) (*types.IconFeedback, error)
	List(ctx context.Context, lectureID uuid.UUID) ([]*types.IconFeedback, error)
}

type feedbackService struct {
	log      *logger.Logger
	lectures repos.LectureRepo
	feedback repos.IconFeedbackRepo
}

func NewFeedbackService(log *logger.Logger, lectures repos.LectureRepo, feedback repos.IconFeedbackRepo) FeedbackService {
	return &feedbackService{
		log:      log.With("service", "FeedbackService"),
		lectures: lectures,
		feedback: feedback,
	}
}

func (s *feedbackService) Post(ctx context.Context, in PostFeedbackInput) (*types.IconFeedback, error) {
	if in.LectureID == uuid.Nil {
		return nil, apierr.Newf(http.StatusBadRequest, "missing_lecture_id", "Missing lecture id parameter.")
	}
	if in.TimestampMs == nil {
		return nil, apierr.Newf(http.StatusBadRequest, "missing_timestamp", "Missing timestamp parameter.")
	}
	if *in.TimestampMs < 0 {
		return nil, apierr.Newf(http.StatusBadRequest, "invalid_timestamp", "Timestamp must not be negative.")
	}
	if strings.TrimSpace(in.IconType) == "" {
		return nil, apierr.Newf(http.StatusBadRequest, "missing_icon_type", "Missing icon type parameter.")
	}
	icon, ok := types.ParseIconType(in.IconType)
	if !ok {
		return nil, apierr.Newf(http.StatusBadRequest, "invalid_icon_type", "Unknown icon type %q.", in.IconType)
	}
	if _, err := requireLecture(ctx, s.lectures, in.LectureID); err != nil {
		return nil, err
	}

	created, err := s.feedback.Create(dbctx.Context{Ctx: ctx}, []*types.IconFeedback{{
		LectureID:   in.LectureID,
		TimestampMs: *in.TimestampMs,
		Type:        icon,
	}})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "create_feedback_failed", err)
	}
	return created[0], nil
}

func (s *feedbackService) List(ctx context.Context, lectureID uuid.UUID) ([]*types.IconFeedback, error) {
	rows, err := s.feedback.ListByLectureID(dbctx.Context{Ctx: ctx}, lectureID)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_feedback_failed", err)
	}
	return rows, nil
}
