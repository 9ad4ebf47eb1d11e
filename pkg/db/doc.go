// Package db opens the database handle from a DATABASE_URL-style string.
//
// The default deployment is a single sqlite file (sqlite:///path); postgres
// DSNs are accepted for deployments that outgrow that.
package db
