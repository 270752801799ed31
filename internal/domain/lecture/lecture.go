package lecture

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lecture struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	VideoURL  string    `gorm:"column:video_url;not null;index" json:"videoUrl"`
	VideoID   string    `gorm:"column:video_id;not null" json:"videoId"`
	CreatedAt time.Time `gorm:"not null" json:"created"`
}

func (Lecture) TableName() string { return "lecture" }

func (l *Lecture) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
