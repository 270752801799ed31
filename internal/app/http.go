package app

import (
	"net"

	"github.com/yungbote/zoomtube-backend/internal/http"
	httpH "github.com/yungbote/zoomtube-backend/internal/http/handlers"
	httpMW "github.com/yungbote/zoomtube-backend/internal/http/middleware"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type Middleware struct {
	Identity *httpMW.IdentityMiddleware
}

type Handlers struct {
	Health     *httpH.HealthHandler
	Auth       *httpH.AuthHandler
	Lecture    *httpH.LectureHandler
	Transcript *httpH.TranscriptHandler
	Discussion *httpH.DiscussionHandler
	Feedback   *httpH.FeedbackHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Auth:       httpH.NewAuthHandler(services.Identity),
		Lecture:    httpH.NewLectureHandler(services.Lecture),
		Transcript: httpH.NewTranscriptHandler(services.Transcript),
		Discussion: httpH.NewDiscussionHandler(services.Discussion),
		Feedback:   httpH.NewFeedbackHandler(services.Feedback),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Identity: httpMW.NewIdentityMiddleware(log, services.Identity),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *http.Server {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return http.NewServer(net.JoinHostPort("", cfg.Port), http.RouterConfig{
		Log:                log,
		ServiceName:        serviceName,
		CORSOrigins:        cfg.CORSOrigins,
		IdentityMiddleware: middleware.Identity,
		AuthHandler:        handlers.Auth,
		LectureHandler:     handlers.Lecture,
		TranscriptHandler:  handlers.Transcript,
		DiscussionHandler:  handlers.Discussion,
		FeedbackHandler:    handlers.Feedback,
		HealthHandler:      handlers.Health,
	})
}
