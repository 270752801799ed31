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
	"github.com/yungbote/zoomtube-backend/internal/platform/youtube"
)

type CreateLectureInput struct {
	Name string
	Link string
	// Lang selects the caption track; empty means the configured default.
	Lang string
}

type LectureService interface {
	// Create registers a lecture, or returns the one already registered for
	// the same link with created=false. Transcript problems never fail it.
	Create(ctx context.Context, in CreateLectureInput) (lec *types.Lecture, created bool, err error)
	Get(ctx context.Context, id uuid.UUID) (*types.Lecture, error)
	List(ctx context.Context) ([]*types.Lecture, error)
}

type lectureService struct {
	log         *logger.Logger
	lectures    repos.LectureRepo
	transcripts TranscriptService
}

func NewLectureService(log *logger.Logger, lectures repos.LectureRepo, transcripts TranscriptService) LectureService {
	return &lectureService{
		log:         log.With("service", "LectureService"),
		lectures:    lectures,
		transcripts: transcripts,
	}
}

func (s *lectureService) Create(ctx context.Context, in CreateLectureInput) (*types.Lecture, bool, error) {
	name := strings.TrimSpace(in.Name)
	link := strings.TrimSpace(in.Link)
	if name == "" {
		return nil, false, apierr.Newf(http.StatusBadRequest, "missing_name", "Missing name parameter.")
	}
	if link == "" {
		return nil, false, apierr.Newf(http.StatusBadRequest, "missing_link", "Missing link parameter.")
	}
	videoID, ok := youtube.ExtractVideoID(link)
	if !ok {
		return nil, false, apierr.Newf(http.StatusBadRequest, "invalid_video_link", "Invalid video link.")
	}

	dbc := dbctx.Context{Ctx: ctx}
	existing, err := s.lectures.GetByVideoURL(dbc, link)
	if err != nil {
		return nil, false, apierr.New(http.StatusInternalServerError, "load_lecture_failed", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	// Two concurrent first requests for the same link can both get here
	// and create two rows; later lookups return the older one.
	created, err := s.lectures.Create(dbc, []*types.Lecture{{
		Name:     name,
		VideoURL: link,
		VideoID:  videoID,
	}})
	if err != nil {
		return nil, false, apierr.New(http.StatusInternalServerError, "create_lecture_failed", err)
	}
	lec := created[0]
	s.log.Info("Lecture created", "lecture_id", lec.ID, "video_id", videoID)

	// Ingestion finishes even when the client hangs up.
	s.ingestBestEffort(context.WithoutCancel(ctx), lec, in.Lang)
	return lec, true, nil
}

func (s *lectureService) ingestBestEffort(ctx context.Context, lec *types.Lecture, lang string) {
	n, err := s.transcripts.Ingest(ctx, lec, lang)
	if err == nil {
		if n == 0 {
			s.log.Warn("Transcript empty", "lecture_id", lec.ID, "video_id", lec.VideoID, "reason", "empty_document")
		}
		return
	}
	reason := "ingest_failed"
	if ae, ok := apierr.As(err); ok {
		reason = ae.Code
	}
	if reason == codeStoreFailed {
		s.log.Error("Transcript ingestion failed", "lecture_id", lec.ID, "video_id", lec.VideoID, "reason", reason, "error", err)
		return
	}
	s.log.Warn("Transcript unavailable", "lecture_id", lec.ID, "video_id", lec.VideoID, "reason", reason, "error", err)
}

func (s *lectureService) Get(ctx context.Context, id uuid.UUID) (*types.Lecture, error) {
	if id == uuid.Nil {
		return nil, apierr.Newf(http.StatusBadRequest, "missing_id", "Missing id parameter.")
	}
	lec, err := s.lectures.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_lecture_failed", err)
	}
	if lec == nil {
		return nil, apierr.Newf(http.StatusNotFound, "lecture_not_found", "Lecture not found in database.")
	}
	return lec, nil
}

func (s *lectureService) List(ctx context.Context) ([]*types.Lecture, error) {
	rows, err := s.lectures.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_lectures_failed", err)
	}
	return rows, nil
}
