package endpoints

import (
	"path/filepath"

	"github.com/videoalert/videoalert/pkg/config"
	"github.com/videoalert/videoalert/pkg/db"
	"github.com/videoalert/videoalert/pkg/db/bootstrap"
	"github.com/videoalert/videoalert/pkg/server"
)

// NewTestServer creates a fully registered server backed by a sqlite store
// under dir, for tests and local scripting.
func NewTestServer(dir string, settings *config.Settings) (*server.Server, error) {
	gdb, err := db.Connect(db.Config{URL: "sqlite:///" + filepath.Join(dir, "test.db")})
	if err != nil {
		return nil, err
	}
	if _, err := bootstrap.EnsureSchema(gdb); err != nil {
		return nil, err
	}

	s := server.NewServer(settings, gdb)
	RegisterAll(s)
	return s, nil
}
