package domain

import "github.com/yungbote/zoomtube-backend/internal/domain/lecture"

type Lecture = lecture.Lecture
type TranscriptLine = lecture.TranscriptLine
type Comment = lecture.Comment
type CommentType = lecture.CommentType
type IconFeedback = lecture.IconFeedback
type IconType = lecture.IconType
type TranscriptLanguage = lecture.TranscriptLanguage

const (
	CommentTypeReply    = lecture.CommentTypeReply
	CommentTypeQuestion = lecture.CommentTypeQuestion
	CommentTypeNote     = lecture.CommentTypeNote

	IconTypeGood    = lecture.IconTypeGood
	IconTypeBad     = lecture.IconTypeBad
	IconTypeTooFast = lecture.IconTypeTooFast
	IconTypeTooSlow = lecture.IconTypeTooSlow
)

var (
	NewTranscriptLine = lecture.NewTranscriptLine
	ParseCommentType  = lecture.ParseCommentType
	ParseIconType     = lecture.ParseIconType
)
