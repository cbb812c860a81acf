// Package server exposes the label generator as a local web form.
//
// The server mirrors the CLI operations over HTTP: code generation,
// PNG preview, PDF export in both layouts, and the SVG ZIP export.
// It is meant to run on localhost as the interactive counterpart to the
// command line, not as a hardened public service.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Server routes label generation requests to the render sinks.
type Server struct {
	logger *log.Logger
}

// New creates the HTTP handler with all routes registered.
func New(logger *log.Logger) http.Handler {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Post("/preview", s.handlePreview)
		r.Post("/export/pdf", s.handleExportPDF)
		r.Post("/export/zip", s.handleExportZIP)
	})

	return r
}

// requestLogger tags each request with a generated ID and logs its
// method, path, status, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
