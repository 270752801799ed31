package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/zoomtube-backend/internal/http/response"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

type LectureHandler struct {
	lectures services.LectureService
}

func NewLectureHandler(lectures services.LectureService) *LectureHandler {
	return &LectureHandler{lectures: lectures}
}

// POST /api/lectures
func (h *LectureHandler) CreateLecture(c *gin.Context) {
	var req struct {
		Name string `json:"name" form:"name"`
		Link string `json:"link" form:"link"`
		Lang string `json:"lang" form:"lang"`
	}
	if !bind(c, &req) {
		return
	}
	lec, created, err := h.lectures.Create(c.Request.Context(), services.CreateLectureInput{
		Name: req.Name,
		Link: req.Link,
		Lang: req.Lang,
	})
	if err != nil {
		response.RespondServiceError(c, "create_lecture_failed", err)
		return
	}
	if created {
		response.RespondCreated(c, gin.H{"lecture": lec})
		return
	}
	response.RespondOK(c, gin.H{"lecture": lec})
}

// GET /api/lectures/:id
func (h *LectureHandler) GetLecture(c *gin.Context) {
	id, ok := lectureIDParam(c)
	if !ok {
		return
	}
	lec, err := h.lectures.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "load_lecture_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"lecture": lec})
}

// GET /api/lectures
func (h *LectureHandler) ListLectures(c *gin.Context) {
	rows, err := h.lectures.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, "load_lectures_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"lectures": rows})
}
