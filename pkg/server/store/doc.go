// Package store provides storage abstractions for the Video Alert server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - HealthStore: Database connectivity checks
//   - ScheduleStore: Crawl schedule operations
//
// # Usage
//
//	schedules := gorm.NewScheduleStore(db)
//	list, err := schedules.ListSchedules()
package store
