package lecture

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentType string

const (
	CommentTypeReply    CommentType = "REPLY"
	CommentTypeQuestion CommentType = "QUESTION"
	CommentTypeNote     CommentType = "NOTE"
)

var commentTypes = map[CommentType]struct{}{
	CommentTypeReply:    {},
	CommentTypeQuestion: {},
	CommentTypeNote:     {},
}

// ParseCommentType accepts any casing; "" is not a valid type.
func ParseCommentType(raw string) (CommentType, bool) {
	ct := CommentType(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := commentTypes[ct]; !ok {
		return "", false
	}
	return ct, true
}

// Comment is a discussion entry. Threads are flat rows linked by ParentID;
// callers rebuild the tree.
type Comment struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	LectureID   uuid.UUID   `gorm:"type:uuid;not null;index:idx_comment_lecture_created,priority:1" json:"lecture"`
	Lecture     *Lecture    `gorm:"constraint:OnDelete:CASCADE;foreignKey:LectureID;references:ID" json:"-"`
	ParentID    *uuid.UUID  `gorm:"type:uuid;column:parent_id;index" json:"parent"`
	Author      string      `gorm:"column:author;not null" json:"author"`
	Content     string      `gorm:"column:content;type:text;not null" json:"content"`
	TimestampMs *int64      `gorm:"column:timestamp_ms" json:"timestamp"`
	Type        CommentType `gorm:"column:type;not null" json:"type"`
	CreatedAt   time.Time   `gorm:"not null;index:idx_comment_lecture_created,priority:2" json:"created"`
}

func (Comment) TableName() string { return "comment" }

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
