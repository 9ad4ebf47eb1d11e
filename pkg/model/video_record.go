package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoRecord is a video discovered by a crawl, tied to the schedule that
// found it.
type VideoRecord struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	URL         string    `gorm:"column:url;not null"`
	Thumbnail   *string   `gorm:"column:thumbnail"`
	Description *string   `gorm:"column:description"`
	DetectedAt  time.Time `gorm:"column:detected_at;autoCreateTime"`
	ScheduleID  string    `gorm:"column:schedule_id;not null"`
}

func (VideoRecord) TableName() string {
	return "video_records"
}

func (v *VideoRecord) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
