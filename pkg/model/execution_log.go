package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExecutionStatus is the outcome of one crawl run.
type ExecutionStatus string

const (
	ExecutionRunning ExecutionStatus = "running"
	ExecutionSuccess ExecutionStatus = "success"
	ExecutionFailed  ExecutionStatus = "failed"
)

// CrawlExecutionLog records one run of the monitoring job for a schedule.
// FinishedAt is nil while the run is still in flight.
type CrawlExecutionLog struct {
	ID           string          `gorm:"column:id;primaryKey"`
	ScheduleID   string          `gorm:"column:schedule_id;not null"`
	StartedAt    time.Time       `gorm:"column:started_at;not null"`
	FinishedAt   *time.Time      `gorm:"column:finished_at"`
	Status       ExecutionStatus `gorm:"column:status;not null"`
	ErrorDetails *string         `gorm:"column:error_details"`
}

func (CrawlExecutionLog) TableName() string {
	return "crawl_execution_logs"
}

func (e *CrawlExecutionLog) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
