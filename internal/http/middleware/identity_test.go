package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/zoomtube-backend/internal/platform/ctxutil"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

func newIdentityRouter(t *testing.T) (*gin.Engine, services.IdentityService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	identity := services.NewIdentityService(logger.Nop(), services.IdentityConfig{JWTSecret: "mw-secret"})
	mw := NewIdentityMiddleware(logger.Nop(), identity)

	r := gin.New()
	r.Use(mw.Optional())
	whoami := func(c *gin.Context) {
		c.String(http.StatusOK, ctxutil.Email(c.Request.Context()))
	}
	r.GET("/open", whoami)
	r.POST("/closed", mw.Require(), whoami)
	return r, identity
}

func TestIdentityMiddleware(t *testing.T) {
	r, identity := newIdentityRouter(t)
	token, err := identity.IssueToken("student@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	cases := []struct {
		name   string
		method string
		path   string
		auth   string
		status int
		body   string
	}{
		{"open_anonymous", http.MethodGet, "/open", "", http.StatusOK, ""},
		{"open_bearer", http.MethodGet, "/open", "Bearer " + token, http.StatusOK, "student@example.com"},
		{"open_bad_token", http.MethodGet, "/open", "Bearer nope", http.StatusOK, ""},
		{"open_query_token", http.MethodGet, "/open?token=" + token, "", http.StatusOK, "student@example.com"},
		{"closed_anonymous", http.MethodPost, "/closed", "", http.StatusForbidden, ""},
		{"closed_bad_token", http.MethodPost, "/closed", "Bearer nope", http.StatusUnauthorized, ""},
		{"closed_bearer", http.MethodPost, "/closed", "Bearer " + token, http.StatusOK, "student@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, tc.status, rec.Body.String())
			}
			if tc.status == http.StatusOK && rec.Body.String() != tc.body {
				t.Fatalf("unexpected body: got=%q want=%q", rec.Body.String(), tc.body)
			}
		})
	}
}

func TestAttachTraceContextEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/", func(c *gin.Context) {
		td := ctxutil.GetTraceData(c.Request.Context())
		if td == nil || td.RequestID != "req-1" || td.TraceID == "" {
			t.Errorf("unexpected trace data: %+v", td)
		}
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, "req-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get(headerRequestID); got != "req-1" {
		t.Fatalf("unexpected request id header: got=%q want=%q", got, "req-1")
	}
	if rec.Header().Get(headerTraceID) == "" {
		t.Fatalf("missing trace id header")
	}
}
