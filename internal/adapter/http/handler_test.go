package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-scheduler/internal/adapter/metrics"
)

func newTestHandler(checks map[string]Check) (*Handler, *metrics.Metrics) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	return NewHandler(checks, reg, slog.New(slog.DiscardHandler)), m
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(nil)

	rec := get(t, h.Router(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all ready", func(t *testing.T) {
		h, _ := newTestHandler(map[string]Check{"postgres": ok, "redis": ok})

		rec := get(t, h.Router(), "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`, rec.Body.String())
	})

	t.Run("dependency down", func(t *testing.T) {
		h, _ := newTestHandler(map[string]Check{"postgres": ok, "redis": down})

		rec := get(t, h.Router(), "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body readiness
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unavailable", body.Status)
		assert.Equal(t, "connection refused", body.Checks["redis"])
		assert.Equal(t, "ok", body.Checks["postgres"])
	})
}

func TestMetricsEndpoint(t *testing.T) {
	h, m := newTestHandler(nil)
	m.AddBatchesCreated(3)

	rec := get(t, h.Router(), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "campaign_scheduler_batches_created_total 3")
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestHandler(nil)

	assert.Equal(t, http.StatusNotFound, get(t, h.Router(), "/api/v1/ad/request").Code)
}
