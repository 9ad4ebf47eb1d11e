// Package server provides the HTTP server for the Video Alert API.
//
// This package implements the core HTTP server that handles all API
// requests. It uses gorilla/mux for routing and gorilla/handlers for
// request logging and CORS.
//
// # Server Setup
//
//	srv := server.NewServer(settings, db)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Settings: Loaded configuration
//   - HealthStore: Database connectivity checks
//   - ScheduleStore: Crawl schedule operations
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers the service endpoints including:
//
//   - / - Service banner
//   - /health - Liveness and database connectivity
//   - /api/v1/admin/schedules - Crawl schedule listing and creation
//   - /api/v1/admin/system-variables - Admin configuration disclosure
package server
