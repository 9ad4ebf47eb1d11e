package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoalert/videoalert/pkg/config"
	"github.com/videoalert/videoalert/pkg/server"
)

func postSchedule(t *testing.T, s *server.Server, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/v1/admin/schedules", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(server.AdminTokenHeader, "dev-token")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func TestCreateAndListSchedules(t *testing.T) {
	s, err := NewTestServer(t.TempDir(), &config.Settings{})
	require.NoError(t, err)

	rr := postSchedule(t, s, `{"url": "https://example.com/videos", "interval": 300, "isActive": true}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created ScheduleResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "https://example.com/videos", created.URL)
	assert.Equal(t, 300, created.Interval)
	assert.True(t, created.IsActive)

	req := httptest.NewRequest("GET", "/api/v1/admin/schedules", nil)
	req.Header.Set(server.AdminTokenHeader, "dev-token")
	rr = httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var list []ScheduleResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestCreateScheduleValidation(t *testing.T) {
	s, err := NewTestServer(t.TempDir(), &config.Settings{})
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "malformed json",
			body: `{`,
			want: "Invalid request body",
		},
		{
			name: "missing url",
			body: `{"interval": 300}`,
			want: "url must be a valid",
		},
		{
			name: "non-http url",
			body: `{"url": "ftp://example.com", "interval": 300}`,
			want: "url must be a valid",
		},
		{
			name: "interval too small",
			body: `{"url": "https://example.com/videos", "interval": 5}`,
			want: "interval must be at least",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postSchedule(t, s, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.want)
		})
	}
}

func TestScheduleEndpointsRequireToken(t *testing.T) {
	s, err := NewTestServer(t.TempDir(), &config.Settings{})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/admin/schedules", nil)
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListSchedulesEmpty(t *testing.T) {
	s, err := NewTestServer(t.TempDir(), &config.Settings{})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/admin/schedules", nil)
	req.Header.Set(server.AdminTokenHeader, "dev-token")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
