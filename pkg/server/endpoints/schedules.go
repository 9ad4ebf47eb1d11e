package endpoints

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/videoalert/videoalert/pkg/server/store"
)

// ScheduleResponse represents a crawl schedule in API responses
type ScheduleResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Interval  int       `json:"interval"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateScheduleRequest is the body accepted when creating a schedule
type CreateScheduleRequest struct {
	URL      string `json:"url"`
	Interval int    `json:"interval"`
	IsActive bool   `json:"isActive"`
}

func handleListSchedules(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schedules, err := scheduleStore.ListSchedules()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list schedules")
			return
		}

		response := make([]ScheduleResponse, 0, len(schedules))
		for _, schedule := range schedules {
			response = append(response, toScheduleResponse(schedule))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleCreateSchedule(scheduleStore store.ScheduleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request CreateScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := validateScheduleRequest(request); err != "" {
			respondWithError(w, http.StatusBadRequest, err)
			return
		}

		created, err := scheduleStore.CreateSchedule(store.NewSchedule{
			URL:      request.URL,
			Interval: request.Interval,
			IsActive: request.IsActive,
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create schedule")
			return
		}

		respondWithJSON(w, http.StatusCreated, toScheduleResponse(*created))
	}
}

func validateScheduleRequest(request CreateScheduleRequest) string {
	u, err := url.Parse(request.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "url must be a valid http or https URL"
	}
	if request.Interval < 60 {
		return "interval must be at least 60 seconds"
	}
	return ""
}

func toScheduleResponse(schedule store.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        schedule.ID,
		URL:       schedule.URL,
		Interval:  schedule.Interval,
		IsActive:  schedule.IsActive,
		CreatedAt: schedule.CreatedAt,
	}
}
