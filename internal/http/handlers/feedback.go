package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/zoomtube-backend/internal/http/response"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

type FeedbackHandler struct {
	feedback services.FeedbackService
}

func NewFeedbackHandler(feedback services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// POST /api/lectures/:id/feedback
func (h *FeedbackHandler) PostFeedback(c *gin.Context) {
	id, ok := lectureIDParam(c)
	if !ok {
		return
	}
	var req struct {
		TimestampMs *int64 `json:"timestampMs" form:"timestampMs"`
		IconType    string `json:"iconType" form:"iconType"`
	}
	if !bind(c, &req) {
		return
	}
	row, err := h.feedback.Post(c.Request.Context(), services.PostFeedbackInput{
		LectureID:   id,
		TimestampMs: req.TimestampMs,
		IconType:    req.IconType,
	})
	if err != nil {
		response.RespondServiceError(c, "post_feedback_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"feedback": row})
}

// GET /api/lectures/:id/feedback
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	id, ok := lectureIDParam(c)
	if !ok {
		return
	}
	rows, err := h.feedback.List(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "load_feedback_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"feedback": rows})
}
