package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/zoomtube-backend/internal/data/repos"
	types "github.com/yungbote/zoomtube-backend/internal/domain"
	"github.com/yungbote/zoomtube-backend/internal/ingestion/transcript"
	"github.com/yungbote/zoomtube-backend/internal/platform/apierr"
	"github.com/yungbote/zoomtube-backend/internal/platform/dbctx"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
	"github.com/yungbote/zoomtube-backend/internal/platform/youtube"
)

var tracer = otel.Tracer("github.com/yungbote/zoomtube-backend/internal/services")

type TranscriptService interface {
	// Ingest fetches, parses and stores the captions of lec. Failures carry
	// an *apierr.Error whose Code names the stage that failed.
	Ingest(ctx context.Context, lec *types.Lecture, lang string) (int, error)
	// Reingest runs Ingest for a stored lecture. Lines are appended.
	Reingest(ctx context.Context, lectureID uuid.UUID, lang string) (int, error)
	Lines(ctx context.Context, lectureID uuid.UUID) ([]*types.TranscriptLine, error)
	Languages(ctx context.Context, link string) ([]types.TranscriptLanguage, error)
}

type transcriptService struct {
	log      *logger.Logger
	lectures repos.LectureRepo
	lines    repos.TranscriptLineRepo
	captions CaptionSource
}

func NewTranscriptService(log *logger.Logger, lectures repos.LectureRepo, lines repos.TranscriptLineRepo, captions CaptionSource) TranscriptService {
	return &transcriptService{
		log:      log.With("service", "TranscriptService"),
		lectures: lectures,
		lines:    lines,
		captions: captions,
	}
}

const (
	codeNoCaptions        = "no_captions"
	codeMalformedCaptions = "malformed_captions"
	codeFetchFailed       = "fetch_failed"
	codeParseFailed       = "parse_failed"
	codeStoreFailed       = "store_failed"
)

func (s *transcriptService) Ingest(ctx context.Context, lec *types.Lecture, lang string) (int, error) {
	if lec == nil {
		return 0, fmt.Errorf("lecture required")
	}
	if strings.TrimSpace(lang) == "" {
		lang = s.captions.DefaultLang()
	}
	ctx, span := tracer.Start(ctx, "transcript.ingest", trace.WithAttributes(
		attribute.String("lecture.id", lec.ID.String()),
		attribute.String("video.id", lec.VideoID),
		attribute.String("captions.lang", lang),
	))
	defer span.End()

	n, err := s.ingest(ctx, lec, lang)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(attribute.Int("transcript.lines", n))
	return n, nil
}

func (s *transcriptService) ingest(ctx context.Context, lec *types.Lecture, lang string) (int, error) {
	doc, err := s.captions.FetchCaptions(ctx, lec.VideoID, lang)
	switch {
	case errors.Is(err, youtube.ErrNoCaptions):
		return 0, apierr.New(http.StatusNotFound, codeNoCaptions, err)
	case errors.Is(err, youtube.ErrMalformedCaptions):
		return 0, apierr.New(http.StatusBadGateway, codeMalformedCaptions, err)
	case err != nil:
		return 0, apierr.New(http.StatusBadGateway, codeFetchFailed, err)
	}

	parsed, err := transcript.Parse(doc)
	if err != nil {
		return 0, apierr.New(http.StatusBadGateway, codeParseFailed, err)
	}
	if len(parsed) == 0 {
		return 0, nil
	}

	rows := make([]*types.TranscriptLine, 0, len(parsed))
	for _, p := range parsed {
		rows = append(rows, types.NewTranscriptLine(lec.ID, p.StartMs, p.DurationMs, p.Content))
	}
	if _, err := s.lines.Create(dbctx.Context{Ctx: ctx}, rows); err != nil {
		return 0, apierr.New(http.StatusInternalServerError, codeStoreFailed, err)
	}
	s.log.Info("Transcript stored", "lecture_id", lec.ID, "video_id", lec.VideoID, "lang", lang, "lines", len(rows))
	return len(rows), nil
}

func (s *transcriptService) Reingest(ctx context.Context, lectureID uuid.UUID, lang string) (int, error) {
	lec, err := s.lectures.GetByID(dbctx.Context{Ctx: ctx}, lectureID)
	if err != nil {
		return 0, apierr.New(http.StatusInternalServerError, "load_lecture_failed", err)
	}
	if lec == nil {
		return 0, apierr.Newf(http.StatusNotFound, "lecture_not_found", "Lecture not found in database.")
	}
	return s.Ingest(context.WithoutCancel(ctx), lec, lang)
}

func (s *transcriptService) Lines(ctx context.Context, lectureID uuid.UUID) ([]*types.TranscriptLine, error) {
	rows, err := s.lines.ListByLectureID(dbctx.Context{Ctx: ctx}, lectureID)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_transcript_failed", err)
	}
	return rows, nil
}

func (s *transcriptService) Languages(ctx context.Context, link string) ([]types.TranscriptLanguage, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, apierr.Newf(http.StatusBadRequest, "missing_link", "Missing link parameter.")
	}
	videoID, ok := youtube.ExtractVideoID(link)
	if !ok {
		return nil, apierr.Newf(http.StatusBadRequest, "invalid_video_link", "Invalid video link.")
	}
	tracks, err := s.captions.ListTracks(ctx, videoID)
	if err != nil {
		s.log.Warn("Listing caption tracks failed", "video_id", videoID, "error", err)
		return nil, apierr.New(http.StatusBadGateway, "list_languages_failed", err)
	}
	out := make([]types.TranscriptLanguage, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, types.TranscriptLanguage{
			LanguageName:          t.LangOriginal,
			LanguageCode:          t.LangCode,
			LanguageNameInEnglish: t.LangTranslated,
		})
	}
	return out, nil
}
