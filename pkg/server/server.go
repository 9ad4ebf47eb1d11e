package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/videoalert/videoalert/pkg/config"
	"github.com/videoalert/videoalert/pkg/server/store"
	gormstore "github.com/videoalert/videoalert/pkg/server/store/gorm"
)

type Server struct {
	Router        *mux.Router
	DB            *gorm.DB
	Settings      *config.Settings
	HealthStore   store.HealthStore
	ScheduleStore store.ScheduleStore
	srv           *http.Server
}

func NewServer(settings *config.Settings, db *gorm.DB) *Server {
	router := mux.NewRouter().UseEncodedPath()

	cors := handlers.CORS(
		handlers.AllowedOriginValidator(OriginValidator(settings.AllowedOrigins)),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Admin-Token"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowCredentials(),
	)

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, cors(router)),
		Addr:    settings.ListenAddress(),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:        router,
		DB:            db,
		Settings:      settings,
		HealthStore:   gormstore.NewHealthStore(db),
		ScheduleStore: gormstore.NewScheduleStore(db),
		srv:           srv,
	}
}

// Handler returns the full middleware-wrapped handler the server serves.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
