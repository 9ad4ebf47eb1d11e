package endpoints

import (
	"net/http"

	"github.com/videoalert/videoalert/pkg/disclosure"
	"github.com/videoalert/videoalert/pkg/server"
)

// SystemVariablesResponse represents the response from the admin
// system-variables endpoint. Each field is a disclosure record: public
// settings carry their raw value, secrets only whether one is set.
type SystemVariablesResponse struct {
	MonitoredResourceURL   disclosure.Record `json:"monitoredResourceUrl"`
	NotificationChannelID  disclosure.Record `json:"notificationChannelId"`
	NotificationCredential disclosure.Record `json:"notificationCredential"`
}

// RegisterAdminEndpoints registers the token-guarded admin endpoints
func RegisterAdminEndpoints(s *server.Server) {
	auth := server.TokenAuthenticator{Token: s.Settings.AdminToken}

	admin := s.Router.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(auth.Instrument)

	// GET /api/v1/admin/system-variables - Configuration disclosure
	admin.HandleFunc("/system-variables", handleSystemVariables(s)).Methods("GET")

	// GET /api/v1/admin/schedules - List schedules
	admin.HandleFunc("/schedules", handleListSchedules(s.ScheduleStore)).Methods("GET")

	// POST /api/v1/admin/schedules - Create a schedule
	admin.HandleFunc("/schedules", handleCreateSchedule(s.ScheduleStore)).Methods("POST")
}

func handleSystemVariables(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := disclosure.SystemVariables.Disclose(s.Settings)

		respondWithJSON(w, http.StatusOK, SystemVariablesResponse{
			MonitoredResourceURL:   records["MONITORED_URL"],
			NotificationChannelID:  records["TELEGRAM_CHANNEL_ID"],
			NotificationCredential: records["TELEGRAM_BOT_TOKEN"],
		})
	}
}
