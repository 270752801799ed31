package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/zoomtube-backend/internal/http/response"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

type TranscriptHandler struct {
	transcripts services.TranscriptService
}

func NewTranscriptHandler(transcripts services.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{transcripts: transcripts}
}

// GET /api/lectures/:id/transcript
func (h *TranscriptHandler) ListLines(c *gin.Context) {
	id, ok := lectureIDParam(c)
	if !ok {
		return
	}
	lines, err := h.transcripts.Lines(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "load_transcript_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"lines": lines})
}

// POST /api/lectures/:id/transcript?lang=
func (h *TranscriptHandler) Reingest(c *gin.Context) {
	id, ok := lectureIDParam(c)
	if !ok {
		return
	}
	n, err := h.transcripts.Reingest(c.Request.Context(), id, c.Query("lang"))
	if err != nil {
		response.RespondServiceError(c, "ingest_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"stored": n})
}

// GET /api/transcript-languages?link=
func (h *TranscriptHandler) ListLanguages(c *gin.Context) {
	langs, err := h.transcripts.Languages(c.Request.Context(), c.Query("link"))
	if err != nil {
		response.RespondServiceError(c, "list_languages_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"languages": langs})
}
