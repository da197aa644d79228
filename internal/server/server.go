package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/BradWyatt-code/strangel-oracle/internal/oracle"
	"github.com/BradWyatt-code/strangel-oracle/internal/store"
)

// Server is the oracle HTTP API server.
type Server struct {
	db         *store.DB
	dispatcher *oracle.Dispatcher
	consultant *oracle.Consultant // nil when no LLM provider is configured
	logger     *zap.Logger
	router     chi.Router
	version    string
	started    time.Time
}

// New creates a new Server. consultant may be nil; the consult route then
// returns 503.
func New(db *store.DB, dispatcher *oracle.Dispatcher, consultant *oracle.Consultant, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		db:         db,
		dispatcher: dispatcher,
		consultant: consultant,
		logger:     logger,
		version:    version,
		started:    time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/oracle", func(r chi.Router) {
			r.Post("/seek", s.handleSeek)
			r.Post("/touch", s.handleTouch)
			r.Post("/consult", s.handleConsult)
			r.Post("/petition/fox", s.personaFixed(oracle.Fox))
			r.Post("/confess", s.personaFixed(oracle.Furies))
			r.Post("/invoke/nokso", s.personaFixed(oracle.Nokso))
			r.Get("/presence", s.handlePresence)
			r.Get("/personas", s.handlePersonas)
			r.Get("/personas/{persona}", s.handlePersona)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/personas/{persona}", s.handlePersonaLedger)
			r.Get("/{sessionID}", s.handleSessionLedger)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	if err := s.db.Ping(); err != nil {
		dbOK = false
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"db":      dbOK,
		"db_path": s.db.Path,
	})
}
