// Package server exposes diagram rendering and storage over HTTP.
//
// Routes:
//
//	GET    /healthz
//	POST   /render?format=text|svg          body: diagram JSON
//	GET    /diagrams                        stored IDs
//	PUT    /diagrams/{id}                   body: diagram JSON
//	GET    /diagrams/{id}
//	DELETE /diagrams/{id}
//	GET    /diagrams/{id}/render?format=text|svg
//
// Errors are returned as {"code": ..., "message": ...} with INVALID_* codes
// mapped to 400 and NOT_FOUND to 404.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/protodiagram/pkg/pipeline"
	"github.com/matzehuels/protodiagram/pkg/store"
)

const (
	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes = 1 << 20

	shutdownTimeout = 10 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	Runner *pipeline.Runner
	Store  store.Store
	Logger *log.Logger
}

// New creates a server. A nil runner renders without a cache, a nil store
// keeps diagrams in memory and a nil logger discards output.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	return &Server{Runner: runner, Store: st, Logger: logger}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Route("/diagrams", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Route("/{id}", func(r chi.Router) {
			r.Put("/", s.handlePut)
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Get("/render", s.handleRenderStored)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
