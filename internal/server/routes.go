package server

import (
	"net/http"
	"time"

	"github.com/bobmcallan/compass/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)

	// Interview question datasets
	mux.HandleFunc("/api/questions/", s.handleQuestions)

	// Curriculum gap analysis (forwarded to the external service)
	mux.HandleFunc("/educator_gap", s.handleEducatorGap)

	// Built web UI, when configured
	s.registerStatic(mux)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	uptime := time.Since(s.app.StartupTime).Round(time.Second)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":    s.app.Config.Environment,
		"datasets_path":  s.app.Datasets.Dir(),
		"gap_configured": s.app.GapClient.Configured(),
		"web_dir":        s.app.Config.Web.Dir,
		"logging_level":  s.app.Config.Logging.Level,
		"uptime":         uptime.String(),
		"started_at":     s.app.StartupTime,
	})
}
