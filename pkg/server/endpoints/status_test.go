package endpoints

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubHealthStore struct {
	err error
}

func (s stubHealthStore) CheckConnectivity() error {
	return s.err
}

func TestHandleBanner(t *testing.T) {
	handler := handleBanner()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"message": "Video Alert API", "version": "1.0.0", "health": "/health"}`, w.Body.String())
}

func TestHandleHealth(t *testing.T) {
	t.Run("reports ok when database is reachable", func(t *testing.T) {
		handler := handleHealth(stubHealthStore{})

		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status": "healthy", "database": "reachable"}`, w.Body.String())
	})

	t.Run("reports unhealthy when database is unreachable", func(t *testing.T) {
		handler := handleHealth(stubHealthStore{err: errors.New("connection refused")})

		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status": "unhealthy", "database": "unreachable"}`, w.Body.String())
	})
}
