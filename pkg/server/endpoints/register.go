package endpoints

import (
	"github.com/videoalert/videoalert/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterAdminEndpoints(srv)
}
