package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/zoomtube-backend/internal/data/repos"
	"github.com/yungbote/zoomtube-backend/internal/data/repos/testutil"
	httpH "github.com/yungbote/zoomtube-backend/internal/http/handlers"
	httpMW "github.com/yungbote/zoomtube-backend/internal/http/middleware"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
	"github.com/yungbote/zoomtube-backend/internal/platform/youtube"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

type stubCaptions struct{}

func (stubCaptions) FetchCaptions(ctx context.Context, videoID, lang string) (*youtube.TimedText, error) {
	if videoID == "nocaptions1" {
		return nil, youtube.ErrNoCaptions
	}
	return &youtube.TimedText{Texts: []youtube.TimedTextEntry{
		{Start: "2.5", Dur: "1", Content: "second"},
		{Start: "0", Dur: "2.5", Content: "first"},
	}}, nil
}

func (stubCaptions) ListTracks(ctx context.Context, videoID string) ([]youtube.Track, error) {
	return []youtube.Track{{LangCode: "en", LangOriginal: "English", LangTranslated: "English"}}, nil
}

func (stubCaptions) DefaultLang() string { return "en" }

type testServer struct {
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)
	log := logger.Nop()

	lectureRepo := repos.NewLectureRepo(db, log)
	transcripts := services.NewTranscriptService(log, lectureRepo, repos.NewTranscriptLineRepo(db, log), stubCaptions{})
	identity := services.NewIdentityService(log, services.IdentityConfig{
		JWTSecret: "router-secret",
		LoginURL:  "https://id.example.com/login",
		LogoutURL: "https://id.example.com/logout",
	})
	token, err := identity.IssueToken("student@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	router := NewRouter(RouterConfig{
		Log:                log,
		IdentityMiddleware: httpMW.NewIdentityMiddleware(log, identity),
		AuthHandler:        httpH.NewAuthHandler(identity),
		LectureHandler:     httpH.NewLectureHandler(services.NewLectureService(log, lectureRepo, transcripts)),
		TranscriptHandler:  httpH.NewTranscriptHandler(transcripts),
		DiscussionHandler:  httpH.NewDiscussionHandler(services.NewDiscussionService(log, lectureRepo, repos.NewCommentRepo(db, log))),
		FeedbackHandler:    httpH.NewFeedbackHandler(services.NewFeedbackService(log, lectureRepo, repos.NewIconFeedbackRepo(db, log))),
		HealthHandler:      httpH.NewHealthHandler(),
	})
	return &testServer{router: router, token: token}
}

func (s *testServer) do(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
}

type lectureJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	VideoURL string `json:"videoUrl"`
	VideoID  string `json:"videoId"`
}

func (s *testServer) createLecture(t *testing.T, name, link string, want int) lectureJSON {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/lectures", map[string]string{"name": name, "link": link}, false)
	if rec.Code != want {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, want, rec.Body.String())
	}
	var out struct {
		Lecture lectureJSON `json:"lecture"`
	}
	decode(t, rec, &out)
	return out.Lecture
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/healthcheck", nil, false)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected healthcheck: code=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestLectureEndpoints(t *testing.T) {
	s := newTestServer(t)
	link := "https://www.youtube.com/watch?v=3ymwOvzhwHs"

	first := s.createLecture(t, "TestName", link, http.StatusCreated)
	if first.Name != "TestName" || first.VideoID != "3ymwOvzhwHs" || first.VideoURL != link {
		t.Fatalf("unexpected lecture: %+v", first)
	}
	again := s.createLecture(t, "TestName", link, http.StatusOK)
	if again.ID != first.ID {
		t.Fatalf("unexpected lecture id: got=%s want=%s", again.ID, first.ID)
	}

	rec := s.do(t, http.MethodGet, "/api/lectures/"+first.ID, nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}

	rec = s.do(t, http.MethodGet, "/api/lectures", nil, false)
	var list struct {
		Lectures []lectureJSON `json:"lectures"`
	}
	decode(t, rec, &list)
	if len(list.Lectures) != 1 {
		t.Fatalf("unexpected lecture count: got=%d want=1", len(list.Lectures))
	}

	rec = s.do(t, http.MethodGet, "/api/lectures/"+first.ID+"/transcript", nil, false)
	var lines struct {
		Lines []struct {
			Start   int64  `json:"start"`
			End     int64  `json:"end"`
			Content string `json:"content"`
		} `json:"lines"`
	}
	decode(t, rec, &lines)
	if len(lines.Lines) != 2 || lines.Lines[0].Content != "first" || lines.Lines[1].Start != 2500 || lines.Lines[1].End != 3500 {
		t.Fatalf("unexpected transcript: %+v", lines.Lines)
	}
}

func TestLectureEndpointErrors(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"missing_name", http.MethodPost, "/api/lectures", map[string]string{"link": "https://youtu.be/x"}, http.StatusBadRequest, "missing_name"},
		{"missing_link", http.MethodPost, "/api/lectures", map[string]string{"name": "n"}, http.StatusBadRequest, "missing_link"},
		{"invalid_link", http.MethodPost, "/api/lectures", map[string]string{"name": "n", "link": "https://example.com"}, http.StatusBadRequest, "invalid_video_link"},
		{"empty_body", http.MethodPost, "/api/lectures", nil, http.StatusBadRequest, "missing_name"},
		{"bad_id", http.MethodGet, "/api/lectures/not-a-uuid", nil, http.StatusBadRequest, "invalid_lecture_id"},
		{"unknown_id", http.MethodGet, "/api/lectures/" + uuid.NewString(), nil, http.StatusNotFound, "lecture_not_found"},
		{"bad_transcript_id", http.MethodGet, "/api/lectures/x/transcript", nil, http.StatusBadRequest, "invalid_lecture_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(t, tc.method, tc.path, tc.body, false)
			if rec.Code != tc.status {
				t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, tc.status, rec.Body.String())
			}
			var env struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			decode(t, rec, &env)
			if env.Error.Code != tc.code {
				t.Fatalf("unexpected code: got=%q want=%q", env.Error.Code, tc.code)
			}
		})
	}
}

func TestLectureCreateFormParams(t *testing.T) {
	s := newTestServer(t)
	form := url.Values{"name": {"Form"}, "link": {"https://youtu.be/formlink01"}}
	req := httptest.NewRequest(http.MethodPost, "/api/lectures", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestLectureWithoutCaptionsStillCreated(t *testing.T) {
	s := newTestServer(t)
	lec := s.createLecture(t, "Silent", "https://youtu.be/nocaptions1", http.StatusCreated)

	rec := s.do(t, http.MethodGet, "/api/lectures/"+lec.ID+"/transcript", nil, false)
	var lines struct {
		Lines []json.RawMessage `json:"lines"`
	}
	decode(t, rec, &lines)
	if len(lines.Lines) != 0 {
		t.Fatalf("unexpected lines: %d", len(lines.Lines))
	}

	rec = s.do(t, http.MethodPost, "/api/lectures/"+lec.ID+"/transcript", nil, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected reingest status: got=%d want=%d", rec.Code, http.StatusNotFound)
	}
}

func TestTranscriptReingestRequiresIdentity(t *testing.T) {
	s := newTestServer(t)
	lec := s.createLecture(t, "TestName", "https://youtu.be/reingest01", http.StatusCreated)
	path := "/api/lectures/" + lec.ID + "/transcript?lang=en"

	if rec := s.do(t, http.MethodPost, path, nil, false); rec.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusForbidden)
	}
	rec := s.do(t, http.MethodPost, path, nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var out struct {
		Stored int `json:"stored"`
	}
	decode(t, rec, &out)
	if out.Stored != 2 {
		t.Fatalf("unexpected stored: got=%d want=2", out.Stored)
	}
}

func TestCommentEndpoints(t *testing.T) {
	s := newTestServer(t)
	lec := s.createLecture(t, "TestName", "https://youtu.be/comments01", http.StatusCreated)
	path := "/api/lectures/" + lec.ID + "/comments"

	body := map[string]any{"content": "Why?", "timestamp": 1500, "type": "QUESTION"}
	if rec := s.do(t, http.MethodPost, path, body, false); rec.Code != http.StatusForbidden {
		t.Fatalf("unexpected anonymous status: got=%d want=%d", rec.Code, http.StatusForbidden)
	}

	rec := s.do(t, http.MethodPost, path, body, true)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusAccepted, rec.Body.String())
	}
	var posted struct {
		Comment struct {
			ID        string `json:"id"`
			Author    string `json:"author"`
			Timestamp *int64 `json:"timestamp"`
			Type      string `json:"type"`
		} `json:"comment"`
	}
	decode(t, rec, &posted)
	if posted.Comment.Author != "student@example.com" || posted.Comment.Type != "QUESTION" || posted.Comment.Timestamp == nil || *posted.Comment.Timestamp != 1500 {
		t.Fatalf("unexpected comment: %+v", posted.Comment)
	}

	rec = s.do(t, http.MethodPost, path, map[string]any{"content": "Because.", "parent": posted.Comment.ID}, true)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("unexpected reply status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	if rec := s.do(t, http.MethodPost, path, map[string]any{"content": "x", "parent": "nope"}, true); rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected bad parent status: got=%d", rec.Code)
	}

	rec = s.do(t, http.MethodGet, path, nil, false)
	var list struct {
		Comments []struct {
			Parent *string `json:"parent"`
			Type   string  `json:"type"`
		} `json:"comments"`
	}
	decode(t, rec, &list)
	if len(list.Comments) != 2 || list.Comments[0].Parent != nil || list.Comments[1].Type != "REPLY" {
		t.Fatalf("unexpected comments: %+v", list.Comments)
	}
}

func TestFeedbackEndpoints(t *testing.T) {
	s := newTestServer(t)
	lec := s.createLecture(t, "TestName", "https://youtu.be/feedback01", http.StatusCreated)
	path := "/api/lectures/" + lec.ID + "/feedback"

	rec := s.do(t, http.MethodPost, path, map[string]any{"timestampMs": 4200, "iconType": "TOO_FAST"}, false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if rec := s.do(t, http.MethodPost, path, map[string]any{"timestampMs": 1, "iconType": "MEH"}, false); rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status for bad icon: got=%d", rec.Code)
	}
	if rec := s.do(t, http.MethodPost, "/api/lectures/"+uuid.NewString()+"/feedback", map[string]any{"timestampMs": 1, "iconType": "GOOD"}, false); rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status for unknown lecture: got=%d", rec.Code)
	}

	rec = s.do(t, http.MethodGet, path, nil, false)
	var list struct {
		Feedback []struct {
			TimestampMs int64  `json:"timestampMs"`
			IconType    string `json:"iconType"`
		} `json:"feedback"`
	}
	decode(t, rec, &list)
	if len(list.Feedback) != 1 || list.Feedback[0].TimestampMs != 4200 || list.Feedback[0].IconType != "TOO_FAST" {
		t.Fatalf("unexpected feedback: %+v", list.Feedback)
	}
}

func TestAuthAndLanguages(t *testing.T) {
	s := newTestServer(t)

	var status struct {
		LoggedIn  bool   `json:"loggedIn"`
		Email     string `json:"email"`
		LoginURL  string `json:"loginUrl"`
		LogoutURL string `json:"logoutUrl"`
	}
	decode(t, s.do(t, http.MethodGet, "/api/auth", nil, false), &status)
	if status.LoggedIn || !strings.HasPrefix(status.LoginURL, "https://id.example.com/login") {
		t.Fatalf("unexpected anonymous status: %+v", status)
	}
	status.LoginURL = ""
	decode(t, s.do(t, http.MethodGet, "/api/auth", nil, true), &status)
	if !status.LoggedIn || status.Email != "student@example.com" || status.LogoutURL == "" {
		t.Fatalf("unexpected signed-in status: %+v", status)
	}

	rec := s.do(t, http.MethodGet, "/api/transcript-languages?link="+url.QueryEscape("https://youtu.be/3ymwOvzhwHs"), nil, false)
	var langs struct {
		Languages []struct {
			LanguageCode string `json:"languageCode"`
		} `json:"languages"`
	}
	decode(t, rec, &langs)
	if len(langs.Languages) != 1 || langs.Languages[0].LanguageCode != "en" {
		t.Fatalf("unexpected languages: %+v", langs.Languages)
	}
	if rec := s.do(t, http.MethodGet, "/api/transcript-languages", nil, false); rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status for missing link: got=%d", rec.Code)
	}
}
