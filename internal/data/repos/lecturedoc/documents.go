package lecturedoc

import (
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/zoomtube-backend/internal/domain"
)

// Documents store ids as canonical uuid strings so they read naturally in
// the shell and compare by value in filters.

type lectureDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	VideoURL  string    `bson:"video_url"`
	VideoID   string    `bson:"video_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func toLectureDoc(l *types.Lecture) lectureDoc {
	return lectureDoc{
		ID:        l.ID.String(),
		Name:      l.Name,
		VideoURL:  l.VideoURL,
		VideoID:   l.VideoID,
		CreatedAt: l.CreatedAt,
	}
}

func (d lectureDoc) toDomain() *types.Lecture {
	return &types.Lecture{
		ID:        parseID(d.ID),
		Name:      d.Name,
		VideoURL:  d.VideoURL,
		VideoID:   d.VideoID,
		CreatedAt: d.CreatedAt,
	}
}

type transcriptLineDoc struct {
	ID         string `bson:"_id"`
	LectureID  string `bson:"lecture_id"`
	StartMs    int64  `bson:"start_ms"`
	DurationMs int64  `bson:"duration_ms"`
	EndMs      int64  `bson:"end_ms"`
	Content    string `bson:"content"`
}

func toTranscriptLineDoc(l *types.TranscriptLine) transcriptLineDoc {
	return transcriptLineDoc{
		ID:         l.ID.String(),
		LectureID:  l.LectureID.String(),
		StartMs:    l.StartMs,
		DurationMs: l.DurationMs,
		EndMs:      l.EndMs,
		Content:    l.Content,
	}
}

func (d transcriptLineDoc) toDomain() *types.TranscriptLine {
	return &types.TranscriptLine{
		ID:         parseID(d.ID),
		LectureID:  parseID(d.LectureID),
		StartMs:    d.StartMs,
		DurationMs: d.DurationMs,
		EndMs:      d.EndMs,
		Content:    d.Content,
	}
}

type commentDoc struct {
	ID          string    `bson:"_id"`
	LectureID   string    `bson:"lecture_id"`
	ParentID    *string   `bson:"parent_id"`
	Author      string    `bson:"author"`
	Content     string    `bson:"content"`
	TimestampMs *int64    `bson:"timestamp_ms"`
	Type        string    `bson:"type"`
	CreatedAt   time.Time `bson:"created_at"`
}

func toCommentDoc(c *types.Comment) commentDoc {
	d := commentDoc{
		ID:          c.ID.String(),
		LectureID:   c.LectureID.String(),
		Author:      c.Author,
		Content:     c.Content,
		TimestampMs: c.TimestampMs,
		Type:        string(c.Type),
		CreatedAt:   c.CreatedAt,
	}
	if c.ParentID != nil {
		p := c.ParentID.String()
		d.ParentID = &p
	}
	return d
}

func (d commentDoc) toDomain() *types.Comment {
	c := &types.Comment{
		ID:          parseID(d.ID),
		LectureID:   parseID(d.LectureID),
		Author:      d.Author,
		Content:     d.Content,
		TimestampMs: d.TimestampMs,
		Type:        types.CommentType(d.Type),
		CreatedAt:   d.CreatedAt,
	}
	if d.ParentID != nil {
		p := parseID(*d.ParentID)
		c.ParentID = &p
	}
	return c
}

type iconFeedbackDoc struct {
	ID          string `bson:"_id"`
	LectureID   string `bson:"lecture_id"`
	TimestampMs int64  `bson:"timestamp_ms"`
	IconType    string `bson:"icon_type"`
}

func toIconFeedbackDoc(f *types.IconFeedback) iconFeedbackDoc {
	return iconFeedbackDoc{
		ID:          f.ID.String(),
		LectureID:   f.LectureID.String(),
		TimestampMs: f.TimestampMs,
		IconType:    string(f.Type),
	}
}

func (d iconFeedbackDoc) toDomain() *types.IconFeedback {
	return &types.IconFeedback{
		ID:          parseID(d.ID),
		LectureID:   parseID(d.LectureID),
		TimestampMs: d.TimestampMs,
		Type:        types.IconType(d.IconType),
	}
}

func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func ensureCreated(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC()
	}
}
