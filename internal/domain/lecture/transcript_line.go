package lecture

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TranscriptLine is one timed caption segment. Times are milliseconds from
// the start of the video and End always equals Start + Duration.
type TranscriptLine struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LectureID  uuid.UUID `gorm:"type:uuid;not null;index:idx_transcript_line_lecture_start,priority:1" json:"lectureKey"`
	Lecture    *Lecture  `gorm:"constraint:OnDelete:CASCADE;foreignKey:LectureID;references:ID" json:"-"`
	StartMs    int64     `gorm:"column:start_ms;not null;index:idx_transcript_line_lecture_start,priority:2" json:"start"`
	DurationMs int64     `gorm:"column:duration_ms;not null" json:"duration"`
	EndMs      int64     `gorm:"column:end_ms;not null" json:"end"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
}

func (TranscriptLine) TableName() string { return "transcript_line" }

func (t *TranscriptLine) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func NewTranscriptLine(lectureID uuid.UUID, startMs, durationMs int64, content string) *TranscriptLine {
	return &TranscriptLine{
		LectureID:  lectureID,
		StartMs:    startMs,
		DurationMs: durationMs,
		EndMs:      startMs + durationMs,
		Content:    content,
	}
}
