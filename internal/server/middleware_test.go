package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/compass/internal/common"
)

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/questions/Frontend", nil)
	rec := doRequest(srv, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorrelationID_Generated(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get("X-Correlation-ID"), 8)
}

func TestCorrelationID_Propagated(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-1234")
	rec := doRequest(srv, req)

	assert.Equal(t, "req-1234", rec.Header().Get("X-Correlation-ID"))
}

func TestRateLimit_Exceeded(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Limits.RatePerSecond = 1
	cfg.Limits.Burst = 1
	srv := newTestServerWithConfig(t, cfg)

	first := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRecovery_PanicReturns500(t *testing.T) {
	logger := common.NewSilentLogger()
	cfg := common.NewDefaultConfig()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := applyMiddleware(panicking, logger, cfg)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
