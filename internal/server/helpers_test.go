package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/compass/internal/app"
	"github.com/bobmcallan/compass/internal/clients/gap"
	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/storage/datasetfs"
)

// newTestServer builds a server backed by a temp dataset directory.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newTestServerWithConfig(t, common.NewDefaultConfig())
}

func newTestServerWithConfig(t *testing.T, cfg *common.Config) *Server {
	t.Helper()

	logger := common.NewSilentLogger()
	if cfg.Datasets.Path == "data/datasets" || cfg.Datasets.Path == "" {
		cfg.Datasets.Path = t.TempDir()
	}

	store, err := datasetfs.NewStore(logger, cfg.Datasets.Path)
	require.NoError(t, err)

	a := &app.App{
		Config:      cfg,
		Logger:      logger,
		Datasets:    store,
		GapClient:   gap.NewClient(logger, cfg.Gap),
		StartupTime: time.Now(),
	}

	return NewServer(a)
}

// writeDataset drops a dataset file into the server's dataset directory.
func writeDataset(t *testing.T, srv *Server, filename, contents string) {
	t.Helper()
	dir := srv.app.Datasets.Dir()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(contents), 0644))
}

// doRequest runs a request through the full handler chain.
func doRequest(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}
