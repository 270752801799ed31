package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/zoomtube-backend/internal/http/handlers"
	httpMW "github.com/yungbote/zoomtube-backend/internal/http/middleware"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	IdentityMiddleware *httpMW.IdentityMiddleware

	AuthHandler       *httpH.AuthHandler
	LectureHandler    *httpH.LectureHandler
	TranscriptHandler *httpH.TranscriptHandler
	DiscussionHandler *httpH.DiscussionHandler
	FeedbackHandler   *httpH.FeedbackHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	if cfg.IdentityMiddleware != nil {
		r.Use(cfg.IdentityMiddleware.Optional())
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.AuthHandler != nil {
			api.GET("/auth", cfg.AuthHandler.Status)
		}

		// Lectures
		if cfg.LectureHandler != nil {
			api.GET("/lectures", cfg.LectureHandler.ListLectures)
			api.POST("/lectures", cfg.LectureHandler.CreateLecture)
			api.GET("/lectures/:id", cfg.LectureHandler.GetLecture)
		}

		// Transcript
		if cfg.TranscriptHandler != nil {
			api.GET("/lectures/:id/transcript", cfg.TranscriptHandler.ListLines)
			api.GET("/transcript-languages", cfg.TranscriptHandler.ListLanguages)
		}

		// Discussion
		if cfg.DiscussionHandler != nil {
			api.GET("/lectures/:id/comments", cfg.DiscussionHandler.ListComments)
		}

		// Feedback
		if cfg.FeedbackHandler != nil {
			api.GET("/lectures/:id/feedback", cfg.FeedbackHandler.ListFeedback)
			api.POST("/lectures/:id/feedback", cfg.FeedbackHandler.PostFeedback)
		}
	}

	protected := api.Group("/")
	{
		if cfg.IdentityMiddleware != nil {
			protected.Use(cfg.IdentityMiddleware.Require())
		}

		if cfg.TranscriptHandler != nil {
			protected.POST("/lectures/:id/transcript", cfg.TranscriptHandler.Reingest)
		}
		if cfg.DiscussionHandler != nil {
			protected.POST("/lectures/:id/comments", cfg.DiscussionHandler.PostComment)
		}
	}

	return r
}
