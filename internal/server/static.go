package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// registerStatic mounts the built web UI when web.dir is configured.
// Existing files are served directly; any other non-API path falls back
// to index.html so client-side routing works.
func (s *Server) registerStatic(mux *http.ServeMux) {
	dir := s.app.Config.Web.Dir
	if dir == "" {
		return
	}

	fileServer := http.FileServer(http.Dir(dir))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			WriteError(w, http.StatusNotFound, "Not found")
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	})
}
