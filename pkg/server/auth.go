package server

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// AdminTokenHeader carries the admin credential on admin endpoints.
const AdminTokenHeader = "X-Admin-Token"

// TokenAuthenticator guards admin endpoints with a shared token. When no
// token is configured, any non-empty header value is accepted; the header
// itself is always required.
type TokenAuthenticator struct {
	Token string
}

// Instrument wraps a handler with the admin token check. Requests without a
// credential get a 401 with a bearer challenge.
func (a TokenAuthenticator) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		presented := r.Header.Get(AdminTokenHeader)
		if presented == "" {
			unauthorized(w, "Admin token required")
			return
		}

		if a.Token != "" &&
			subtle.ConstantTimeCompare([]byte(presented), []byte(a.Token)) != 1 {
			unauthorized(w, "Invalid admin token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
