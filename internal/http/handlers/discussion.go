package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/zoomtube-backend/internal/http/response"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

type DiscussionHandler struct {
	discussion services.DiscussionService
}

func NewDiscussionHandler(discussion services.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{discussion: discussion}
}

// POST /api/lectures/:id/comments
func (h *DiscussionHandler) PostComment(c *gin.Context) {
	id, ok := lectureIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Parent    string `json:"parent" form:"parent"`
		Content   string `json:"content" form:"content"`
		Timestamp *int64 `json:"timestamp" form:"timestamp"`
		Type      string `json:"type" form:"type"`
	}
	if !bind(c, &req) {
		return
	}
	in := services.PostCommentInput{
		LectureID:   id,
		Content:     req.Content,
		TimestampMs: req.Timestamp,
		Type:        req.Type,
	}
	if raw := strings.TrimSpace(req.Parent); raw != "" {
		parentID, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_parent", err)
			return
		}
		in.ParentID = &parentID
	}
	comment, err := h.discussion.Post(c.Request.Context(), in)
	if err != nil {
		response.RespondServiceError(c, "post_comment_failed", err)
		return
	}
	response.RespondAccepted(c, gin.H{"comment": comment})
}

// GET /api/lectures/:id/comments
func (h *DiscussionHandler) ListComments(c *gin.Context) {
	id, ok := lectureIDParam(c)
	if !ok {
		return
	}
	rows, err := h.discussion.List(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "load_comments_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"comments": rows})
}
