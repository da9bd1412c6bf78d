package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/casestudy-api/internal/dto"
	"github.com/noah-isme/casestudy-api/internal/models"
	"github.com/noah-isme/casestudy-api/internal/service"
	appErrors "github.com/noah-isme/casestudy-api/pkg/errors"
	"github.com/noah-isme/casestudy-api/pkg/response"
)

type caseStudyService interface {
	List(ctx context.Context) ([]models.CaseStudy, bool, error)
	Search(ctx context.Context, filters models.FilterState) ([]models.CaseStudy, int, error)
	Options(ctx context.Context) (models.FilterOptions, error)
	Reduce(ctx context.Context, state models.FilterState, action models.FilterAction) (models.FilterState, error)
	Refresh(ctx context.Context) error
	CacheTTL() time.Duration
}

type exportRenderer interface {
	Render(records []models.CaseStudy, format string) (*service.ExportFile, error)
}

// CaseStudyHandler exposes the case study catalogue.
type CaseStudyHandler struct {
	service  caseStudyService
	exporter exportRenderer
	validate *validator.Validate
}

// NewCaseStudyHandler constructs the handler.
func NewCaseStudyHandler(svc caseStudyService, exporter exportRenderer, validate *validator.Validate) *CaseStudyHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &CaseStudyHandler{service: svc, exporter: exporter, validate: validate}
}

// List godoc
// @Summary List case studies
// @Description Returns every published case study in sheet order, optionally narrowed by repeated facet parameters
// @Tags CaseStudies
// @Produce json
// @Param theme query []string false "Theme" collectionFormat(multi)
// @Param brand query []string false "Brand" collectionFormat(multi)
// @Param state query []string false "State" collectionFormat(multi)
// @Param agencySize query []string false "Agency size" collectionFormat(multi)
// @Param legacySystem query []string false "Raw legacy system" collectionFormat(multi)
// @Success 200 {array} models.CaseStudy
// @Failure 500 {object} errors.Error
// @Router /case-studies [get]
func (h *CaseStudyHandler) List(c *gin.Context) {
	query, err := h.bindQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, hit, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if filters := query.Filters(); filters.HasActive() {
		items = service.FilterCaseStudies(items, filters)
	}
	c.Header("X-Cache", cacheHeader(hit))
	response.Cached(c, http.StatusOK, items, int(h.service.CacheTTL().Seconds()))
}

// Options godoc
// @Summary Filter options
// @Description Distinct facet values and available legacy system categories
// @Tags CaseStudies
// @Produce json
// @Success 200 {object} models.FilterOptions
// @Failure 500 {object} errors.Error
// @Router /case-studies/options [get]
func (h *CaseStudyHandler) Options(c *gin.Context) {
	options, err := h.service.Options(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cached(c, http.StatusOK, options, int(h.service.CacheTTL().Seconds()))
}

// Search godoc
// @Summary Search case studies
// @Tags CaseStudies
// @Accept json
// @Produce json
// @Param payload body dto.SearchRequest true "Filter state"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} errors.Error
// @Failure 500 {object} errors.Error
// @Router /case-studies/search [post]
func (h *CaseStudyHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter payload"))
		return
	}
	items, total, err := h.service.Search(c.Request.Context(), req.Filters())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.SearchResponse{Items: items, Count: len(items), Total: total})
}

// Reduce godoc
// @Summary Apply a filter action
// @Description Applies one user action to a client-held filter state and returns the new state
// @Tags Filters
// @Accept json
// @Produce json
// @Param payload body dto.ReduceRequest true "State and action"
// @Success 200 {object} models.FilterState
// @Failure 400 {object} errors.Error
// @Router /filters/reduce [post]
func (h *CaseStudyHandler) Reduce(c *gin.Context) {
	var req dto.ReduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter action"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter action"))
		return
	}
	state, err := h.service.Reduce(c.Request.Context(), req.Filters.Filters(), req.Action.Model())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// Export godoc
// @Summary Export case studies
// @Description Downloads the (optionally filtered) case studies as CSV or PDF
// @Tags CaseStudies
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} errors.Error
// @Router /case-studies/export [get]
func (h *CaseStudyHandler) Export(c *gin.Context) {
	query, err := h.bindQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, _, err := h.service.Search(c.Request.Context(), query.Filters())
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exporter.Render(items, query.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Body)
}

// Refresh godoc
// @Summary Invalidate cached case studies
// @Tags CaseStudies
// @Success 204
// @Router /case-studies/refresh [post]
func (h *CaseStudyHandler) Refresh(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (h *CaseStudyHandler) bindQuery(c *gin.Context) (dto.CaseStudyQuery, error) {
	var query dto.CaseStudyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return query, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters")
	}
	if err := h.validate.Struct(query); err != nil {
		return query, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters")
	}
	return query, nil
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
