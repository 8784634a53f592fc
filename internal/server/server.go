// Package server exposes the cleaning pipeline over HTTP for the web
// front-end: multipart upload in, ProcessedData JSON out.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/datapurity/purity-cli/internal/decode"
	"github.com/datapurity/purity-cli/internal/ingest"
	"github.com/datapurity/purity-cli/internal/model"
	"github.com/datapurity/purity-cli/internal/pipeline"
	"github.com/datapurity/purity-cli/internal/store"
)

// Options configures the API server.
type Options struct {
	Port        int
	MaxUploadMB int64
}

// Server handles upload and run-history requests.
type Server struct {
	pipe   *pipeline.Pipeline
	store  store.Store
	router *chi.Mux
	opts   Options
}

// New creates a Server. The store may be nil, in which case runs are not
// recorded and the runs endpoint reports an empty list.
func New(pipe *pipeline.Pipeline, st store.Store, opts Options) *Server {
	if opts.MaxUploadMB == 0 {
		opts.MaxUploadMB = 64
	}
	s := &Server{pipe: pipe, store: st, router: chi.NewRouter(), opts: opts}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/clean", s.handleClean)
		r.Get("/runs", s.handleRuns)
	})

	return s
}

// Handler returns the root handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.opts.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	zap.L().Info("server: listening", zap.Int("port", s.opts.Port))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleClean accepts a multipart upload under the "file" field, runs the
// pipeline, records the run, and returns the full ProcessedData.
func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadMB<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing multipart field \"file\"")
		return
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read upload")
		return
	}

	result, err := s.pipe.Process(r.Context(), header.Filename, data)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ingest.ErrUnsupportedType) ||
			errors.Is(err, ingest.ErrEmptyArchive) ||
			errors.Is(err, decode.ErrEmptyFile) {
			status = http.StatusUnprocessableEntity
		}
		zap.L().Warn("server: clean failed",
			zap.String("file", header.Filename),
			zap.Error(err),
		)
		writeError(w, status, err.Error())
		return
	}

	if s.store != nil {
		if _, err := s.store.SaveRun(r.Context(), model.NewRunSummary(header.Filename, result)); err != nil {
			zap.L().Error("server: save run", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusOK, []model.RunSummary{})
		return
	}

	runs, err := s.store.ListRuns(r.Context(), store.RunFilter{Limit: 100})
	if err != nil {
		zap.L().Error("server: list runs", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list runs")
		return
	}
	if runs == nil {
		runs = []model.RunSummary{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
