package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrawlSchedule is a monitoring configuration: which URL to watch, how often,
// and whether the schedule is currently active.
type CrawlSchedule struct {
	ID        string    `gorm:"column:id;primaryKey"`
	URL       string    `gorm:"column:url;not null"`
	Interval  int       `gorm:"column:interval;not null"`
	IsActive  bool      `gorm:"column:is_active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CrawlSchedule) TableName() string {
	return "crawl_schedules"
}

func (s *CrawlSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
