package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/zoomtube-backend/internal/data/repos"
	types "github.com/yungbote/zoomtube-backend/internal/domain"
	"github.com/yungbote/zoomtube-backend/internal/platform/apierr"
	"github.com/yungbote/zoomtube-backend/internal/platform/ctxutil"
	"github.com/yungbote/zoomtube-backend/internal/platform/dbctx"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type PostCommentInput struct {
	LectureID   uuid.UUID
	ParentID    *uuid.UUID
	Content     string
	TimestampMs *int64
	Type        string
}

type DiscussionService interface {
	Post(ctx context.Context, in PostCommentInput) (*types.Comment, error)
	List(ctx context.Context, lectureID uuid.UUID) ([]*types.Comment, error)
}

type discussionService struct {
	log      *logger.Logger
	lectures repos.LectureRepo
	comments repos.CommentRepo
}

func NewDiscussionService(log *logger.Logger, lectures repos.LectureRepo, comments repos.CommentRepo) DiscussionService {
	return &discussionService{
		log:      log.With("service", "DiscussionService"),
		lectures: lectures,
		comments: comments,
	}
}

func (s *discussionService) Post(ctx context.Context, in PostCommentInput) (*types.Comment, error) {
	author := ctxutil.Email(ctx)
	if author == "" {
		return nil, apierr.Newf(http.StatusForbidden, "forbidden", "Sign in to post comments.")
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, apierr.Newf(http.StatusBadRequest, "missing_content", "Missing content parameter.")
	}
	if in.TimestampMs != nil && *in.TimestampMs < 0 {
		return nil, apierr.Newf(http.StatusBadRequest, "invalid_timestamp", "Timestamp must not be negative.")
	}
	if _, err := requireLecture(ctx, s.lectures, in.LectureID); err != nil {
		return nil, err
	}

	commentType, err := resolveCommentType(in.Type, in.ParentID != nil)
	if err != nil {
		return nil, err
	}

	dbc := dbctx.Context{Ctx: ctx}
	if in.ParentID != nil {
		parent, err := s.comments.GetByID(dbc, *in.ParentID)
		if err != nil {
			return nil, apierr.New(http.StatusInternalServerError, "load_parent_failed", err)
		}
		if parent == nil || parent.LectureID != in.LectureID {
			return nil, apierr.Newf(http.StatusBadRequest, "invalid_parent", "Parent comment does not belong to this lecture.")
		}
	}

	created, err := s.comments.Create(dbc, []*types.Comment{{
		LectureID:   in.LectureID,
		ParentID:    in.ParentID,
		Author:      author,
		Content:     content,
		TimestampMs: in.TimestampMs,
		Type:        commentType,
	}})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "create_comment_failed", err)
	}
	s.log.Debug("Comment posted", "lecture_id", in.LectureID, "comment_id", created[0].ID, "author", author)
	return created[0], nil
}

// resolveCommentType defaults to REPLY under a parent and NOTE otherwise.
func resolveCommentType(raw string, hasParent bool) (types.CommentType, error) {
	if strings.TrimSpace(raw) == "" {
		if hasParent {
			return types.CommentTypeReply, nil
		}
		return types.CommentTypeNote, nil
	}
	t, ok := types.ParseCommentType(raw)
	if !ok {
		return "", apierr.Newf(http.StatusBadRequest, "invalid_comment_type", "Unknown comment type %q.", raw)
	}
	return t, nil
}

func (s *discussionService) List(ctx context.Context, lectureID uuid.UUID) ([]*types.Comment, error) {
	rows, err := s.comments.ListByLectureID(dbctx.Context{Ctx: ctx}, lectureID)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "load_comments_failed", err)
	}
	return rows, nil
}
