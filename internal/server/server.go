// Package server exposes the time logger over HTTP for UI consumers: live
// parse/detect/segment endpoints while the user types, and entry endpoints
// on submit.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ElangBogopa/time-logger-sub000/internal/api"
	"github.com/ElangBogopa/time-logger-sub000/internal/config"
	"github.com/ElangBogopa/time-logger-sub000/internal/logging"
)

// Server is a thin wrapper over chi and the stdlib http.Server.
type Server struct {
	api api.API
	cfg config.ServerConfig
	srv *http.Server
	log *logging.Logger
}

// New builds the router and server from the business API and configuration.
func New(businessAPI api.API, cfg *config.Config) *Server {
	s := &Server{
		api: businessAPI,
		cfg: cfg.Server,
		log: logging.Named("http"),
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(s.recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Post("/detect", s.handleDetect)
		r.Post("/segments", s.handleSegments)

		r.Post("/entries", s.handleLogActivity)
		r.Get("/entries", s.handleSearchEntries)
		r.Get("/entries/{id}", s.handleGetEntry)
		r.Delete("/entries/{id}", s.handleDeleteEntry)

		r.Get("/summary", s.handleSummary)
	})

	s.srv = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// Handler returns the root handler, used directly in tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// Run starts the server and blocks until ctx is cancelled or the listener
// fails. Shutdown is graceful within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("http server listening")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.log.Info().Msg("http server shutting down")
		return s.srv.Shutdown(shutdownCtx)
	}
}
