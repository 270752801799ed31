package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/zoomtube-backend/internal/data/docstore"
	"github.com/yungbote/zoomtube-backend/internal/data/repos/lecture"
	"github.com/yungbote/zoomtube-backend/internal/data/repos/lecturedoc"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

type LectureRepo = lecture.LectureRepo
type TranscriptLineRepo = lecture.TranscriptLineRepo
type CommentRepo = lecture.CommentRepo
type IconFeedbackRepo = lecture.IconFeedbackRepo

func NewLectureRepo(db *gorm.DB, baseLog *logger.Logger) LectureRepo {
	return lecture.NewLectureRepo(db, baseLog)
}
func NewTranscriptLineRepo(db *gorm.DB, baseLog *logger.Logger) TranscriptLineRepo {
	return lecture.NewTranscriptLineRepo(db, baseLog)
}
func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	return lecture.NewCommentRepo(db, baseLog)
}
func NewIconFeedbackRepo(db *gorm.DB, baseLog *logger.Logger) IconFeedbackRepo {
	return lecture.NewIconFeedbackRepo(db, baseLog)
}

func NewLectureDocRepo(client *docstore.Client, baseLog *logger.Logger) LectureRepo {
	return lecturedoc.NewLectureRepo(client, baseLog)
}
func NewTranscriptLineDocRepo(client *docstore.Client, baseLog *logger.Logger) TranscriptLineRepo {
	return lecturedoc.NewTranscriptLineRepo(client, baseLog)
}
func NewCommentDocRepo(client *docstore.Client, baseLog *logger.Logger) CommentRepo {
	return lecturedoc.NewCommentRepo(client, baseLog)
}
func NewIconFeedbackDocRepo(client *docstore.Client, baseLog *logger.Logger) IconFeedbackRepo {
	return lecturedoc.NewIconFeedbackRepo(client, baseLog)
}
