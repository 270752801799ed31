package app

import (
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
	"github.com/yungbote/zoomtube-backend/internal/platform/youtube"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

type Services struct {
	Captions   services.CaptionSource
	Transcript services.TranscriptService
	Lecture    services.LectureService
	Discussion services.DiscussionService
	Feedback   services.FeedbackService
	Identity   services.IdentityService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, trackCache services.TrackCache) Services {
	log.Info("Wiring services...")
	var captions services.CaptionSource = youtube.NewTimedTextClient(log, cfg.Captions)
	if trackCache != nil {
		captions = services.NewCachedCaptionSource(log, captions, trackCache)
	}
	transcript := services.NewTranscriptService(log, reposet.Lecture, reposet.TranscriptLine, captions)
	return Services{
		Captions:   captions,
		Transcript: transcript,
		Lecture:    services.NewLectureService(log, reposet.Lecture, transcript),
		Discussion: services.NewDiscussionService(log, reposet.Lecture, reposet.Comment),
		Feedback:   services.NewFeedbackService(log, reposet.Lecture, reposet.IconFeedback),
		Identity:   services.NewIdentityService(log, cfg.Identity),
	}
}
