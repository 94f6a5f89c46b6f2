// Package api exposes the ranking pipeline over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sectionrank/sectionrank/internal/pipeline"
)

// Server is the HTTP API server for sectionrank.
type Server struct {
	router     chi.Router
	pipe       *pipeline.Pipeline
	folder     string
	numResults int
	apiKey     string
	log        *slog.Logger
}

// NewServer creates and configures the HTTP server. folder is the
// document folder requests are resolved against; apiKey empty disables
// authentication.
func NewServer(pipe *pipeline.Pipeline, folder string, numResults int, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		pipe:       pipe,
		folder:     folder,
		numResults: numResults,
		apiKey:     apiKey,
		log:        log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(AuthMiddleware(s.apiKey))
		}
		r.Post("/api/rank", s.handleRank)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
