package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/zoomtube-backend/internal/http/response"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

type AuthHandler struct {
	identity services.IdentityService
}

func NewAuthHandler(identity services.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// GET /api/auth?continue=
func (h *AuthHandler) Status(c *gin.Context) {
	response.RespondOK(c, h.identity.Status(c.Request.Context(), c.Query("continue")))
}
