// Package main provides the Video Alert API server and its operator CLI.
//
// Video Alert watches a configured page for newly published videos and
// delivers Telegram notifications when one appears. This binary hosts the
// HTTP API and the database tooling.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Storage abstractions and GORM implementations
//   - pkg/disclosure: Admin-facing configuration disclosure
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/db/bootstrap: Idempotent schema creation
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the videoalertctl CLI:
//
//	# Create the database schema
//	videoalertctl db init
//
//	# Inspect the effective configuration
//	videoalertctl configuration show
//
//	# Start the server
//	videoalertctl server
//
// # Environment Variables
//
//   - DATABASE_URL: sqlite or PostgreSQL connection string
//   - MONITORED_URL: Page watched for new videos
//   - TELEGRAM_CHANNEL_ID: Notification target channel
//   - TELEGRAM_BOT_TOKEN: Notification credential
//   - ADMIN_TOKEN: Token expected on admin endpoints
//   - VIDEOALERT_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8000)
package main
