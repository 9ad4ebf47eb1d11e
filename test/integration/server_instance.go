package integration

import (
	"fmt"
	"net/http/httptest"

	"gorm.io/gorm"

	"github.com/videoalert/videoalert/pkg/config"
	"github.com/videoalert/videoalert/pkg/db"
	"github.com/videoalert/videoalert/pkg/db/bootstrap"
	"github.com/videoalert/videoalert/pkg/model"
	"github.com/videoalert/videoalert/pkg/server"
	"github.com/videoalert/videoalert/pkg/server/endpoints"
)

// ServerInstance represents a running in-process server for a single
// scenario.
type ServerInstance struct {
	Server    *server.Server
	DB        *gorm.DB
	ServerURL string
	http      *httptest.Server
}

// StartServer connects to a fresh store, bootstraps the schema and serves
// the fully registered handler over a local listener.
func StartServer(tc *TestContext, settings *config.Settings) (*ServerInstance, error) {
	dbURL := settings.DatabaseURL
	if dbURL == "" {
		dbURL = tc.FreshDatabaseURL()
		settings.DatabaseURL = dbURL
	}

	gdb, err := db.Connect(db.Config{URL: dbURL})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	report, err := bootstrap.EnsureSchema(gdb)
	if err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	if !report.Ok() {
		return nil, fmt.Errorf("schema bootstrap left tables missing: %v", report.Missing)
	}

	// Postgres scenarios share one database, so each one starts from
	// empty tables. Children first to respect foreign keys.
	if tc.usePostgres {
		tables := model.Tables()
		for i := len(tables) - 1; i >= 0; i-- {
			if err := gdb.Exec("DELETE FROM " + tables[i]).Error; err != nil {
				return nil, fmt.Errorf("failed to reset table %s: %w", tables[i], err)
			}
		}
	}

	s := server.NewServer(settings, gdb)
	endpoints.RegisterAll(s)

	httpServer := httptest.NewServer(s.Handler())

	return &ServerInstance{
		Server:    s,
		DB:        gdb,
		ServerURL: httpServer.URL,
		http:      httpServer,
	}, nil
}

// Stop shuts the listener down and releases the database handle.
func (si *ServerInstance) Stop() {
	if si.http != nil {
		si.http.Close()
	}
	if si.DB != nil {
		_ = db.Close(si.DB)
	}
}
