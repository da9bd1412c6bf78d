package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/casestudy-api/internal/handler"
	"github.com/noah-isme/casestudy-api/internal/models"
	"github.com/noah-isme/casestudy-api/internal/repository"
	"github.com/noah-isme/casestudy-api/internal/service"
	"github.com/noah-isme/casestudy-api/pkg/config"
)

type staticSource []models.CaseStudy

func (s staticSource) Name() string { return "static" }

func (s staticSource) List(context.Context) ([]models.CaseStudy, error) { return s, nil }

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Env:       config.EnvDevelopment,
		APIPrefix: "/api",
		Auth:      config.AuthConfig{PublicPaths: []string{"/health", "/ready", "/metrics"}, RateLimit: 2, RateLimitWindow: time.Minute},
		Metrics:   config.MetricsConfig{Enabled: true},
	}
	logr := zap.NewNop()
	metrics := service.NewMetricsService()
	source := staticSource{
		{Agency: "Ray White Bondi", Brand: "Ray White", State: "NSW", Theme: "Growth", LegacySystem: "Console"},
		{Agency: "Harcourts Brisbane", Brand: "Harcourts", State: "QLD", Theme: "Efficiency", LegacySystem: "REST"},
	}
	cache := service.NewCacheService(repository.NewMemoryCacheRepository(), metrics, time.Hour, logr)
	caseStudies := service.NewCaseStudyService(source, cache, metrics, time.Hour, logr)
	auth := service.NewAuthService(service.AuthConfig{Password: "gotime"}, metrics, logr)

	return newRouter(cfg, logr, routerDeps{
		caseStudies: handler.NewCaseStudyHandler(caseStudies, service.NewExportService(), nil),
		auth:        handler.NewAuthHandler(auth, false),
		metrics:     handler.NewMetricsHandler(metrics, nil),
		guard:       auth,
		metricsSvc:  metrics,
	})
}

func do(r http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouterLoginFlow(t *testing.T) {
	r := testRouter(t)

	rec := do(r, http.MethodGet, "/api/case-studies", "")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/login", "").Code)

	rec = do(r, http.MethodPost, "/api/auth/login", `{"password":"gotime"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = do(r, http.MethodGet, "/api/case-studies?state=QLD", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.CaseStudy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Harcourts Brisbane", items[0].Agency)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(r, http.MethodPost, "/api/auth/logout", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, rec.Result().Cookies()[0].MaxAge < 0)
}

func TestRouterPublicEndpoints(t *testing.T) {
	r := testRouter(t)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/metrics", "").Code)
}

func TestRouterRateLimitsLogin(t *testing.T) {
	r := testRouter(t)
	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/api/auth/login", `{"password":"x"}`).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/api/auth/login", `{"password":"gotime"}`).Code)
}
