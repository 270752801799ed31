package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/zoomtube-backend/internal/platform/apierr"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"apierr", apierr.Newf(http.StatusNotFound, "lecture_not_found", "Lecture not found in database."), http.StatusNotFound, "lecture_not_found", "Lecture not found in database."},
		{"wrapped_apierr", fmt.Errorf("outer: %w", apierr.Newf(http.StatusBadRequest, "missing_name", "Missing name parameter.")), http.StatusBadRequest, "missing_name", "Missing name parameter."},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "load_failed", "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			RespondServiceError(c, "load_failed", tc.err)

			if rec.Code != tc.status {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tc.status)
			}
			var env ErrorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Error.Code != tc.code || env.Error.Message != tc.message {
				t.Fatalf("unexpected envelope: got=%+v want code=%q message=%q", env.Error, tc.code, tc.message)
			}
		})
	}
}
