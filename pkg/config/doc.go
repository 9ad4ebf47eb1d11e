// Package config provides configuration management for the Video Alert API.
//
// Settings are loaded from an optional yaml file and overridden by
// environment variables.
//
// # Configuration Sources
//
//   - Environment variables (primary)
//   - Configuration file (optional, videoalert.yml)
//
// # Key Configuration Options
//
//   - MONITORED_URL: Page watched for new videos
//   - TELEGRAM_CHANNEL_ID: Notification target channel
//   - TELEGRAM_BOT_TOKEN: Notification credential
//   - ADMIN_TOKEN: Token expected on admin endpoints
//   - DATABASE_URL: Database connection
//   - PORT: Server listen port
package config
