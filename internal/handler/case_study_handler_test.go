package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/casestudy-api/internal/dto"
	"github.com/noah-isme/casestudy-api/internal/models"
	"github.com/noah-isme/casestudy-api/internal/service"
	appErrors "github.com/noah-isme/casestudy-api/pkg/errors"
)

type fakeCaseStudySrv struct {
	items      []models.CaseStudy
	hit        bool
	err        error
	refreshed  bool
	lastAction models.FilterAction
}

func (f *fakeCaseStudySrv) List(context.Context) ([]models.CaseStudy, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	return f.items, f.hit, nil
}

func (f *fakeCaseStudySrv) Search(_ context.Context, filters models.FilterState) ([]models.CaseStudy, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return service.FilterCaseStudies(f.items, filters), len(f.items), nil
}

func (f *fakeCaseStudySrv) Options(context.Context) (models.FilterOptions, error) {
	if f.err != nil {
		return models.FilterOptions{}, f.err
	}
	return service.ExtractOptions(f.items), nil
}

func (f *fakeCaseStudySrv) Reduce(_ context.Context, state models.FilterState, action models.FilterAction) (models.FilterState, error) {
	f.lastAction = action
	return service.ReduceFilterState(state, action, service.ExtractOptions(f.items))
}

func (f *fakeCaseStudySrv) Refresh(context.Context) error {
	f.refreshed = true
	return f.err
}

func (f *fakeCaseStudySrv) CacheTTL() time.Duration { return time.Hour }

func sampleCaseStudies() []models.CaseStudy {
	return []models.CaseStudy{
		{Agency: "Ray White Bondi", Brand: "Ray White", State: "NSW", Theme: "Growth", LegacySystem: "Console", AgencySize: "1000+ PUM"},
		{Agency: "Belle Manly", Brand: "Belle Property", State: "NSW", Theme: "Retention", LegacySystem: "Console Cloud", AgencySize: ""},
		{Agency: "Harcourts Brisbane", Brand: "Harcourts", State: "QLD", Theme: "Growth, Efficiency", LegacySystem: "REST", AgencySize: "N/A"},
	}
}

func newCaseStudyHandlerForTest(srv *fakeCaseStudySrv) *CaseStudyHandler {
	return NewCaseStudyHandler(srv, service.NewExportService(), nil)
}

func newGinContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, rec
}

func TestCaseStudyHandlerListReturnsBareArray(t *testing.T) {
	handler := newCaseStudyHandlerForTest(&fakeCaseStudySrv{items: sampleCaseStudies(), hit: true})
	c, rec := newGinContext(http.MethodGet, "/api/case-studies", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "private, max-age=3600", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	var body []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 3)
	assert.Equal(t, "Ray White Bondi", body[0]["agency"])
	assert.Contains(t, body[0], "videoLink")
	assert.Contains(t, body[0], "yearPublished")
}

func TestCaseStudyHandlerListAppliesQueryFilters(t *testing.T) {
	handler := newCaseStudyHandlerForTest(&fakeCaseStudySrv{items: sampleCaseStudies()})
	c, rec := newGinContext(http.MethodGet, "/api/case-studies?state=NSW&theme=Growth&theme=Retention&agencySize=", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []models.CaseStudy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Belle Manly", body[0].Agency)
}

func TestCaseStudyHandlerListFetchFailure(t *testing.T) {
	handler := newCaseStudyHandlerForTest(&fakeCaseStudySrv{err: appErrors.WrapAs(errors.New("boom"), appErrors.ErrFetchCaseStudies)})
	c, rec := newGinContext(http.MethodGet, "/api/case-studies", nil)

	handler.List(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch case studies","code":"FETCH_FAILED"}`, rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestCaseStudyHandlerOptions(t *testing.T) {
	handler := newCaseStudyHandlerForTest(&fakeCaseStudySrv{items: sampleCaseStudies()})
	c, rec := newGinContext(http.MethodGet, "/api/case-studies/options", nil)

	handler.Options(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var options models.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	assert.Equal(t, []string{"Efficiency", "Growth", "Retention"}, options.Themes)
	assert.Equal(t, []string{"1000+ PUM"}, options.AgencySizes)
	assert.Equal(t, []models.LegacySystemCategory{models.LegacyConsole, models.LegacyREST}, options.LegacySystemCategories)
}

func TestCaseStudyHandlerSearch(t *testing.T) {
	handler := newCaseStudyHandlerForTest(&fakeCaseStudySrv{items: sampleCaseStudies()})
	payload, _ := json.Marshal(dto.SearchRequest{LegacySystems: []string{"Console", "Console Cloud"}})
	c, rec := newGinContext(http.MethodPost, "/api/case-studies/search", payload)

	handler.Search(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 3, resp.Total)
}

func TestCaseStudyHandlerSearchRejectsMalformedBody(t *testing.T) {
	handler := newCaseStudyHandlerForTest(&fakeCaseStudySrv{items: sampleCaseStudies()})
	c, rec := newGinContext(http.MethodPost, "/api/case-studies/search", []byte(`{"themes":"Growth"}`))

	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCaseStudyHandlerReduceToggleCategory(t *testing.T) {
	srv := &fakeCaseStudySrv{items: sampleCaseStudies()}
	handler := newCaseStudyHandlerForTest(srv)
	payload := []byte(`{"filters":{"legacySystems":["Console"]},"action":{"type":"toggleCategory","category":"Console"}}`)
	c, rec := newGinContext(http.MethodPost, "/api/filters/reduce", payload)

	handler.Reduce(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var state models.FilterState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.ElementsMatch(t, []string{"Console", "Console Cloud"}, state.LegacySystems)
	assert.Equal(t, models.FilterActionToggleCategory, srv.lastAction.Type)
}

func TestCaseStudyHandlerReduceRejectsUnknownAction(t *testing.T) {
	handler := newCaseStudyHandlerForTest(&fakeCaseStudySrv{items: sampleCaseStudies()})
	c, rec := newGinContext(http.MethodPost, "/api/filters/reduce", []byte(`{"action":{"type":"shuffle"}}`))

	handler.Reduce(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCaseStudyHandlerExportCSV(t *testing.T) {
	handler := newCaseStudyHandlerForTest(&fakeCaseStudySrv{items: sampleCaseStudies()})
	c, rec := newGinContext(http.MethodGet, "/api/case-studies/export?format=csv&state=QLD", nil)

	handler.Export(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), `attachment; filename="case-studies-`))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Harcourts Brisbane")
}

func TestCaseStudyHandlerExportRejectsUnknownFormat(t *testing.T) {
	handler := newCaseStudyHandlerForTest(&fakeCaseStudySrv{items: sampleCaseStudies()})
	c, rec := newGinContext(http.MethodGet, "/api/case-studies/export?format=xlsx", nil)

	handler.Export(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCaseStudyHandlerRefresh(t *testing.T) {
	srv := &fakeCaseStudySrv{}
	handler := newCaseStudyHandlerForTest(srv)
	c, rec := newGinContext(http.MethodPost, "/api/case-studies/refresh", nil)

	handler.Refresh(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, srv.refreshed)
}
