package endpoints

import (
	"net/http"

	"github.com/videoalert/videoalert/pkg/config"
	"github.com/videoalert/videoalert/pkg/server"
	"github.com/videoalert/videoalert/pkg/server/store"
)

// BannerResponse represents the response from /
type BannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Health  string `json:"health"`
}

// HealthResponse represents the response from /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterStatusEndpoints registers the banner and health endpoints
func RegisterStatusEndpoints(s *server.Server) {
	healthStore := s.HealthStore

	// GET / - Service banner (no auth required)
	s.Router.HandleFunc("/", handleBanner()).Methods("GET")

	// GET /health - Liveness and database connectivity (no auth required)
	s.Router.HandleFunc("/health", handleHealth(healthStore)).Methods("GET")
}

func handleBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, BannerResponse{
			Message: config.ProjectName,
			Version: config.Version,
			Health:  "/health",
		})
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:   "unhealthy",
				Database: "unreachable",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, HealthResponse{
			Status:   "healthy",
			Database: "reachable",
		})
	}
}
