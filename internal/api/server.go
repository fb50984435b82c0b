// Package api serves the analyzer over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"versematch/internal/analyzer"
	"versematch/internal/config"
	"versematch/internal/logging"
)

// Server is the HTTP front end of one analyzer.
type Server struct {
	analyzer *analyzer.Analyzer
	cfg      *config.Config
	router   *chi.Mux
	http     *http.Server
}

// NewServer wires the routes for a.
func NewServer(a *analyzer.Analyzer, cfg *config.Config) *Server {
	s := &Server{
		analyzer: a,
		cfg:      cfg,
		router:   chi.NewRouter(),
	}

	s.router.Use(requestID)
	s.router.Use(accessLog)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/analyze", s.handleAnalyze)
	s.router.Post("/analyze/batch", s.handleAnalyzeBatch)
	s.router.Get("/stats", s.handleStats)
	s.router.Route("/books", func(r chi.Router) {
		r.Get("/", s.handleBooks)
		r.Get("/{key}", s.handleBook)
		r.Get("/{key}/verses/{number}", s.handleVerse)
	})
	s.router.Get("/authors/{author}/books", s.handleAuthorBooks)

	s.http = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.router }

// Start serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()
	logging.API("listening on %s", s.http.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.GetShutdownTimeout())
	defer cancel()
	logging.API("shutting down")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
