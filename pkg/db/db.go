package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds database connection configuration
type Config struct {
	// URL is the database connection URL (defaults to DATABASE_URL env var)
	URL string
}

// Connect establishes a database connection.
// If no URL is provided, it reads from the DATABASE_URL environment variable.
//
// sqlite URLs (sqlite:///path, file:path, or a bare path) get their parent
// directory created if it is absent. postgres:// and key=value DSNs go to
// the postgres driver.
func Connect(cfg Config) (*gorm.DB, error) {
	dbURL := cfg.URL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	dialector, err := dialectorFor(dbURL)
	if err != nil {
		return nil, err
	}

	// Default to silent logging unless VIDEOALERT_LOG_LEVEL=debug is set
	logMode := logger.Silent
	if os.Getenv("VIDEOALERT_LOG_LEVEL") == "debug" {
		logMode = logger.Info
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return gdb, nil
}

// Close releases the underlying connection. It is safe to defer on every
// exit path of a bootstrap run.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(dbURL string) (gorm.Dialector, error) {
	if isPostgresURL(dbURL) {
		return postgres.New(postgres.Config{
			DSN:                  dbURL,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), nil
	}

	path, err := SQLitePath(dbURL)
	if err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}
	return sqlite.Open(path), nil
}

func isPostgresURL(dbURL string) bool {
	return strings.HasPrefix(dbURL, "postgres://") ||
		strings.HasPrefix(dbURL, "postgresql://") ||
		strings.Contains(dbURL, "host=")
}

// SQLitePath extracts the filesystem path from a sqlite database URL.
// It returns an error for URL schemes this package does not support.
func SQLitePath(dbURL string) (string, error) {
	switch {
	case strings.HasPrefix(dbURL, "sqlite:///"):
		return strings.TrimPrefix(dbURL, "sqlite:///"), nil
	case strings.HasPrefix(dbURL, "sqlite://"):
		return strings.TrimPrefix(dbURL, "sqlite://"), nil
	case strings.HasPrefix(dbURL, "file:"):
		return strings.TrimPrefix(dbURL, "file:"), nil
	case strings.Contains(dbURL, "://"):
		return "", fmt.Errorf("unsupported database URL %q: expected sqlite:///path or a postgres DSN", dbURL)
	default:
		return dbURL, nil
	}
}
