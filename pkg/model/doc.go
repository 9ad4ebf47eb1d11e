// Package model holds the persisted entities of the monitoring pipeline.
//
// Rows are written by the crawler, notifier and scheduler; this server only
// declares the structure (see pkg/db/bootstrap) and reads it back for the
// admin surface. Identifiers are uuid strings assigned on create.
package model
