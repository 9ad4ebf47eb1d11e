package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationStatus is the outcome of one delivery attempt.
type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
	NotificationSkipped NotificationStatus = "skipped"
)

// NotificationLog records one attempt to notify the channel about a detected
// video.
type NotificationLog struct {
	ID           string             `gorm:"column:id;primaryKey"`
	VideoID      string             `gorm:"column:video_id;not null"`
	ScheduleID   string             `gorm:"column:schedule_id;not null"`
	Status       NotificationStatus `gorm:"column:status;not null"`
	ErrorDetails *string            `gorm:"column:error_details"`
	SentAt       time.Time          `gorm:"column:sent_at;autoCreateTime"`
}

func (NotificationLog) TableName() string {
	return "notification_logs"
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
