package store

import "time"

// Schedule represents a crawl schedule with metadata
type Schedule struct {
	ID        string
	URL       string
	Interval  int
	IsActive  bool
	CreatedAt time.Time
}

// NewSchedule carries the caller-supplied fields of a schedule to create
type NewSchedule struct {
	URL      string
	Interval int
	IsActive bool
}

// ScheduleStore abstracts crawl schedule operations
type ScheduleStore interface {
	// ListSchedules returns all schedules, most recently created first.
	ListSchedules() ([]Schedule, error)

	// CreateSchedule persists a new schedule and returns it with its
	// generated identifier and timestamp.
	CreateSchedule(schedule NewSchedule) (*Schedule, error)
}
