package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/zoomtube-backend/internal/http/response"
	"github.com/yungbote/zoomtube-backend/internal/platform/ctxutil"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

var errSignInRequired = errors.New("sign in required")

type IdentityMiddleware struct {
	log      *logger.Logger
	identity services.IdentityService
}

func NewIdentityMiddleware(log *logger.Logger, identity services.IdentityService) *IdentityMiddleware {
	return &IdentityMiddleware{log: log.With("middleware", "IdentityMiddleware"), identity: identity}
}

// Optional attaches the caller's identity when a valid token is present and
// otherwise lets the request through anonymously.
func (m *IdentityMiddleware) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			ctx, err := m.identity.Resolve(c.Request.Context(), token)
			if err != nil {
				m.log.Debug("Ignoring invalid identity token", "error", err)
			} else {
				attach(c, ctx)
			}
		}
		c.Next()
	}
}

// Require rejects requests without a signed-in caller: 403 when no token was
// sent, 401 when the token does not verify.
func (m *IdentityMiddleware) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ctxutil.Email(c.Request.Context()) != "" {
			c.Next()
			return
		}
		token := extractToken(c)
		if token == "" {
			response.RespondError(c, http.StatusForbidden, "forbidden", errSignInRequired)
			c.Abort()
			return
		}
		ctx, err := m.identity.Resolve(c.Request.Context(), token)
		if err != nil {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
			c.Abort()
			return
		}
		attach(c, ctx)
		c.Next()
	}
}

func attach(c *gin.Context, ctx context.Context) {
	c.Request = c.Request.WithContext(ctx)
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return strings.TrimSpace(c.Query("token"))
}
