package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portosolutions/tv-mounting/internal/availability"
	"github.com/portosolutions/tv-mounting/internal/booking"
	httpmiddleware "github.com/portosolutions/tv-mounting/internal/http/middleware"
	"github.com/portosolutions/tv-mounting/internal/leads"
	"github.com/portosolutions/tv-mounting/internal/observability/metrics"
	"github.com/portosolutions/tv-mounting/internal/site"
	"github.com/portosolutions/tv-mounting/pkg/logging"
)

func newTestRouter(t *testing.T, ready ReadyFunc) http.Handler {
	t.Helper()
	logger := logging.Discard()

	gen, err := availability.NewGenerator(availability.DefaultConfig(), availability.NewSequenceSource(true))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	svc := booking.NewService(booking.NewInMemoryStore(time.Hour), gen, logger,
		booking.WithMetrics(metrics.NewBookingMetrics(reg)),
		booking.WithClock(func() time.Time { return time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC) }),
	)
	siteHandler, err := site.NewHandler(site.DefaultContent(), logger)
	require.NoError(t, err)

	return New(&Config{
		Logger:             logger,
		BookingHandler:     booking.NewHandler(svc, logger),
		LeadsHandler:       leads.NewHandler(leads.NewInMemoryRepository(0), nil, logger),
		SiteHandler:        siteHandler,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: []string{"https://portotv.example"},
		RateLimiter:        httpmiddleware.NewRateLimiter(100, 100),
		Ready:              ready,
	})
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReady(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t, func(context.Context) error { return nil }).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	newTestRouter(t, func(context.Context) error { return errors.New("redis down") }).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "redis down")
}

func TestBookingRoutesMounted(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/booking/sessions", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var view map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	id, _ := view["session_id"].(string)
	require.NotEmpty(t, id)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/booking/sessions/"+id, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/booking/sessions/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tvmount_booking_sessions_total")
}

func TestSiteRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/site/content", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":249`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
}

func TestLeadsRoute(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(`{"name":"Ana","email":"ana@example.com","service":"premium"}`))
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), leads.SubmittedMessage)
}

func TestCORSPreflightOnBookingAPI(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/booking/sessions", nil)
	req.Header.Set("Origin", "https://portotv.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://portotv.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitOnlyGuardsAPI(t *testing.T) {
	logger := logging.Discard()
	siteHandler, err := site.NewHandler(site.DefaultContent(), logger)
	require.NoError(t, err)
	r := New(&Config{
		Logger:      logger,
		SiteHandler: siteHandler,
		RateLimiter: httpmiddleware.NewRateLimiter(0.001, 1),
	})

	get := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Real-Ip", "198.51.100.1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}
	assert.Equal(t, http.StatusOK, get("/api/site/content"))
	assert.Equal(t, http.StatusTooManyRequests, get("/api/site/content"))
	assert.Equal(t, http.StatusOK, get("/health"))
}
