package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/yungbote/zoomtube-backend/internal/data/repos"
	types "github.com/yungbote/zoomtube-backend/internal/domain"
	"github.com/yungbote/zoomtube-backend/internal/platform/apierr"
	"github.com/yungbote/zoomtube-backend/internal/platform/dbctx"
)

// requireLecture loads a lecture that writes are about to reference.
func requireLecture(ctx context.Context, lectures repos.LectureRepo, id uuid.UUID) (*types.Lecture, error) {
	if id == uuid.Nil {
		return nil, apierr.Newf(http.StatusBadRequest, "missing_lecture_id", "Missing lecture id parameter.")
	}
	lec, err := lectures.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_lecture_failed", err)
	}
	if lec == nil {
		return nil, apierr.Newf(http.StatusNotFound, "lecture_not_found", "Lecture not found in database.")
	}
	return lec, nil
}
