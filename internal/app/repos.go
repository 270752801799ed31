package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/zoomtube-backend/internal/data/docstore"
	"github.com/yungbote/zoomtube-backend/internal/data/repos"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type Repos struct {
	Lecture        repos.LectureRepo
	TranscriptLine repos.TranscriptLineRepo
	Comment        repos.CommentRepo
	IconFeedback   repos.IconFeedbackRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Lecture:        repos.NewLectureRepo(db, log),
		TranscriptLine: repos.NewTranscriptLineRepo(db, log),
		Comment:        repos.NewCommentRepo(db, log),
		IconFeedback:   repos.NewIconFeedbackRepo(db, log),
	}
}

func wireDocRepos(client *docstore.Client, log *logger.Logger) Repos {
	log.Info("Wiring document repos...")
	return Repos{
		Lecture:        repos.NewLectureDocRepo(client, log),
		TranscriptLine: repos.NewTranscriptLineDocRepo(client, log),
		Comment:        repos.NewCommentDocRepo(client, log),
		IconFeedback:   repos.NewIconFeedbackDocRepo(client, log),
	}
}
