package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fieldcorr/app"
	"fieldcorr/domain/core"
	"fieldcorr/internal"
	"fieldcorr/internal/config"
	"fieldcorr/models"
)

// RunLister reads recent ledger rows. Nil disables the /runs listing.
type RunLister interface {
	Recent(ctx context.Context, limit int) ([]models.RunRecord, error)
}

// Server exposes the latest report and a trigger to recompute it.
type Server struct {
	svc    *app.CorrelatorService
	cfg    *config.Config
	log    *internal.Logger
	lister RunLister
	router chi.Router
}

// NewServer creates the report server. lister may be nil.
func NewServer(svc *app.CorrelatorService, cfg *config.Config, logger *internal.Logger, lister RunLister) *Server {
	s := &Server{svc: svc, cfg: cfg, log: logger, lister: lister}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Get("/report", s.handleReport)
	r.Get("/report.html", s.handleReportHTML)
	r.Post("/runs", s.handleRun)
	r.Get("/runs", s.handleListRuns)
	s.router = r

	return s
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.serveFile(w, s.cfg.Working.ReportFile, "text/markdown; charset=utf-8")
}

func (s *Server) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	s.serveFile(w, s.cfg.Working.HTMLFile, "text/html; charset=utf-8")
}

func (s *Server) serveFile(w http.ResponseWriter, path, contentType string) {
	content, err := os.ReadFile(path)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no report generated yet"})
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Run(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsInputMissing(err) {
			status = http.StatusNotFound
		}
		s.log.Error("[Server] run failed: %v", err)
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.lister == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "run ledger not configured"})
		return
	}
	records, err := s.lister.Recent(r.Context(), 20)
	if err != nil {
		s.log.Error("[Server] failed to list runs: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list runs"})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
