package gorm

import (
	"gorm.io/gorm"

	"github.com/videoalert/videoalert/pkg/model"
	"github.com/videoalert/videoalert/pkg/server/store"
)

// Ensure ScheduleStore implements store.ScheduleStore
var _ store.ScheduleStore = (*ScheduleStore)(nil)

// ScheduleStore implements store.ScheduleStore using GORM
type ScheduleStore struct {
	db *gorm.DB
}

// NewScheduleStore creates a new ScheduleStore
func NewScheduleStore(db *gorm.DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

// ListSchedules returns all schedules, most recently created first.
func (s *ScheduleStore) ListSchedules() ([]store.Schedule, error) {
	var records []model.CrawlSchedule
	if err := s.db.Order("created_at desc").Find(&records).Error; err != nil {
		return nil, err
	}

	schedules := make([]store.Schedule, 0, len(records))
	for _, record := range records {
		schedules = append(schedules, toStoreSchedule(record))
	}
	return schedules, nil
}

// CreateSchedule persists a new schedule.
func (s *ScheduleStore) CreateSchedule(schedule store.NewSchedule) (*store.Schedule, error) {
	record := model.CrawlSchedule{
		URL:      schedule.URL,
		Interval: schedule.Interval,
		IsActive: schedule.IsActive,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}

	created := toStoreSchedule(record)
	return &created, nil
}

func toStoreSchedule(record model.CrawlSchedule) store.Schedule {
	return store.Schedule{
		ID:        record.ID,
		URL:       record.URL,
		Interval:  record.Interval,
		IsActive:  record.IsActive,
		CreatedAt: record.CreatedAt,
	}
}
