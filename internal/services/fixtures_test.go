package services

import (
	"context"
	"sync"
	"testing"

	"github.com/yungbote/zoomtube-backend/internal/data/repos"
	"github.com/yungbote/zoomtube-backend/internal/data/repos/testutil"
	"github.com/yungbote/zoomtube-backend/internal/platform/youtube"
)

type fakeCaptions struct {
	mu       sync.Mutex
	doc      *youtube.TimedText
	err      error
	tracks   []youtube.Track
	fetches  int
	lastLang string
	onFetch  func(ctx context.Context)
}

func (f *fakeCaptions) FetchCaptions(ctx context.Context, videoID, lang string) (*youtube.TimedText, error) {
	f.mu.Lock()
	f.fetches++
	f.lastLang = lang
	f.mu.Unlock()
	if f.onFetch != nil {
		f.onFetch(ctx)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func (f *fakeCaptions) ListTracks(ctx context.Context, videoID string) ([]youtube.Track, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tracks, nil
}

func (f *fakeCaptions) DefaultLang() string { return "en" }

func (f *fakeCaptions) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func threeLineDoc() *youtube.TimedText {
	return &youtube.TimedText{Texts: []youtube.TimedTextEntry{
		{Start: "0.4", Dur: "1", Content: "Hi"},
		{Start: "1.767", Dur: "4.304", Content: "it&#39;s a lecture"},
		{Start: "6.071", Dur: "2", Content: "bye"},
	}}
}

type testEnv struct {
	lectures    repos.LectureRepo
	lines       repos.TranscriptLineRepo
	comments    repos.CommentRepo
	feedback    repos.IconFeedbackRepo
	captions    *fakeCaptions
	transcripts TranscriptService
	lecture     LectureService
	discussion  DiscussionService
	icons       FeedbackService
}

func newTestEnv(t *testing.T, captions *fakeCaptions) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	if captions == nil {
		captions = &fakeCaptions{doc: threeLineDoc()}
	}
	env := &testEnv{
		lectures: repos.NewLectureRepo(db, log),
		lines:    repos.NewTranscriptLineRepo(db, log),
		comments: repos.NewCommentRepo(db, log),
		feedback: repos.NewIconFeedbackRepo(db, log),
		captions: captions,
	}
	env.transcripts = NewTranscriptService(log, env.lectures, env.lines, captions)
	env.lecture = NewLectureService(log, env.lectures, env.transcripts)
	env.discussion = NewDiscussionService(log, env.lectures, env.comments)
	env.icons = NewFeedbackService(log, env.lectures, env.feedback)
	return env
}
