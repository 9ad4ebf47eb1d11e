package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedHandler(auth TokenAuthenticator) http.Handler {
	return auth.Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
}

func TestTokenAuthenticatorRequiresHeader(t *testing.T) {
	handler := protectedHandler(TokenAuthenticator{})

	req := httptest.NewRequest("GET", "/api/v1/admin/system-variables", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail": "Admin token required"}`, rr.Body.String())
}

func TestTokenAuthenticatorAcceptsAnyTokenWhenUnconfigured(t *testing.T) {
	handler := protectedHandler(TokenAuthenticator{})

	req := httptest.NewRequest("GET", "/api/v1/admin/system-variables", nil)
	req.Header.Set(AdminTokenHeader, "anything")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestTokenAuthenticatorEnforcesConfiguredToken(t *testing.T) {
	handler := protectedHandler(TokenAuthenticator{Token: "hunter2"})

	req := httptest.NewRequest("GET", "/api/v1/admin/system-variables", nil)
	req.Header.Set(AdminTokenHeader, "wrong")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"detail": "Invalid admin token"}`, rr.Body.String())

	req.Header.Set(AdminTokenHeader, "hunter2")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
