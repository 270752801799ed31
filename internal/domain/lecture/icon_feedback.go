package lecture

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IconType string

const (
	IconTypeGood    IconType = "GOOD"
	IconTypeBad     IconType = "BAD"
	IconTypeTooFast IconType = "TOO_FAST"
	IconTypeTooSlow IconType = "TOO_SLOW"
)

var iconTypes = map[IconType]struct{}{
	IconTypeGood:    {},
	IconTypeBad:     {},
	IconTypeTooFast: {},
	IconTypeTooSlow: {},
}

func ParseIconType(raw string) (IconType, bool) {
	it := IconType(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := iconTypes[it]; !ok {
		return "", false
	}
	return it, true
}

// IconFeedback is a single reaction at a point in the video. Rows are never
// merged or counted server-side.
type IconFeedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LectureID   uuid.UUID `gorm:"type:uuid;not null;index" json:"lecture"`
	Lecture     *Lecture  `gorm:"constraint:OnDelete:CASCADE;foreignKey:LectureID;references:ID" json:"-"`
	TimestampMs int64     `gorm:"column:timestamp_ms;not null" json:"timestampMs"`
	Type        IconType  `gorm:"column:icon_type;not null" json:"iconType"`
}

func (IconFeedback) TableName() string { return "icon_feedback" }

func (f *IconFeedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
