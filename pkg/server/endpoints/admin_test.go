package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoalert/videoalert/pkg/config"
	"github.com/videoalert/videoalert/pkg/disclosure"
	"github.com/videoalert/videoalert/pkg/server"
)

func adminRequest(t *testing.T, s *server.Server, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/v1/admin/system-variables", nil)
	if token != "" {
		req.Header.Set(server.AdminTokenHeader, token)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func TestSystemVariablesMixedConfiguration(t *testing.T) {
	settings := &config.Settings{
		MonitoredURL:     "https://example.com/videos",
		TelegramBotToken: "abc123",
	}
	s, err := NewTestServer(t.TempDir(), settings)
	require.NoError(t, err)

	rr := adminRequest(t, s, "dev-token")
	require.Equal(t, http.StatusOK, rr.Code)

	var response SystemVariablesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

	require.NotNil(t, response.MonitoredResourceURL.Value)
	assert.Equal(t, "https://example.com/videos", *response.MonitoredResourceURL.Value)
	assert.True(t, response.MonitoredResourceURL.IsSet)
	assert.Equal(t, disclosure.HintConfigured, response.MonitoredResourceURL.Hint)

	assert.Nil(t, response.NotificationChannelID.Value)
	assert.False(t, response.NotificationChannelID.IsSet)
	assert.Equal(t, disclosure.HintNotSet, response.NotificationChannelID.Hint)

	assert.Nil(t, response.NotificationCredential.Value)
	assert.True(t, response.NotificationCredential.IsSet)
	assert.Equal(t, disclosure.HintWithheld, response.NotificationCredential.Hint)

	// The credential itself never appears anywhere in the payload.
	assert.NotContains(t, rr.Body.String(), "abc123")
}

func TestSystemVariablesNothingConfigured(t *testing.T) {
	s, err := NewTestServer(t.TempDir(), &config.Settings{})
	require.NoError(t, err)

	rr := adminRequest(t, s, "dev-token")
	require.Equal(t, http.StatusOK, rr.Code)

	var response SystemVariablesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

	for _, record := range []disclosure.Record{
		response.MonitoredResourceURL,
		response.NotificationChannelID,
		response.NotificationCredential,
	} {
		assert.Nil(t, record.Value)
		assert.False(t, record.IsSet)
		assert.Equal(t, disclosure.HintNotSet, record.Hint)
	}
}

func TestSystemVariablesRequiresToken(t *testing.T) {
	s, err := NewTestServer(t.TempDir(), &config.Settings{})
	require.NoError(t, err)

	rr := adminRequest(t, s, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
}

func TestSystemVariablesEnforcesConfiguredToken(t *testing.T) {
	s, err := NewTestServer(t.TempDir(), &config.Settings{AdminToken: "hunter2"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, adminRequest(t, s, "wrong").Code)
	assert.Equal(t, http.StatusOK, adminRequest(t, s, "hunter2").Code)
}
