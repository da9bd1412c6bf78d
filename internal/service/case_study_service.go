package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/noah-isme/casestudy-api/internal/models"
	appErrors "github.com/noah-isme/casestudy-api/pkg/errors"
	"github.com/noah-isme/casestudy-api/pkg/jobs"
)

const caseStudiesCacheKey = "case_studies:all"

// JobWarmCaseStudies refetches the record set ahead of cache expiry.
const JobWarmCaseStudies = "case_studies.warm"

// CaseStudySource is the read-only upstream holding the published rows.
type CaseStudySource interface {
	Name() string
	List(ctx context.Context) ([]models.CaseStudy, error)
}

// CaseStudyService serves the record set through a time-bounded cache and derives filter views over it.
type CaseStudyService struct {
	source  CaseStudySource
	cache   *CacheService
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
	group   singleflight.Group
}

// NewCaseStudyService constructs the service. ttl bounds how stale a served record set may be.
func NewCaseStudyService(source CaseStudySource, cache *CacheService, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *CaseStudyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CaseStudyService{source: source, cache: cache, metrics: metrics, ttl: ttl, logger: logger}
}

// CacheTTL returns the revalidation window of the record set.
func (s *CaseStudyService) CacheTTL() time.Duration {
	return s.ttl
}

// List returns the full ordered record set and whether it was served from cache.
// A failed fetch yields no records at all.
func (s *CaseStudyService) List(ctx context.Context) ([]models.CaseStudy, bool, error) {
	var cached []models.CaseStudy
	if hit, err := s.cache.Get(ctx, caseStudiesCacheKey, &cached); err == nil && hit {
		return cached, true, nil
	}

	items, err := s.sharedFetch(ctx)
	if err != nil {
		return nil, false, err
	}
	return items, false, nil
}

// sharedFetch joins the in-flight upstream fetch or starts one. The fetch ignores
// cancellation of the caller that started it; every caller stops waiting when its own ctx ends.
func (s *CaseStudyService) sharedFetch(ctx context.Context) ([]models.CaseStudy, error) {
	ch := s.group.DoChan(caseStudiesCacheKey, func() (interface{}, error) {
		return s.fetch(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.CaseStudy), nil
	case <-ctx.Done():
		return nil, appErrors.WrapAs(ctx.Err(), appErrors.ErrFetchCaseStudies)
	}
}

func (s *CaseStudyService) fetch(ctx context.Context) ([]models.CaseStudy, error) {
	start := time.Now()
	items, err := s.source.List(ctx)
	s.metrics.ObserveSourceFetch(s.source.Name(), len(items), err, time.Since(start))
	if err != nil {
		s.logger.Error("fetch case studies failed", zap.String("source", s.source.Name()), zap.Error(err))
		return nil, appErrors.WrapAs(err, appErrors.ErrFetchCaseStudies)
	}
	if items == nil {
		items = []models.CaseStudy{}
	}
	s.logger.Info("fetched case studies", zap.String("source", s.source.Name()), zap.Int("count", len(items)))
	_ = s.cache.Set(ctx, caseStudiesCacheKey, items, s.ttl)
	return items, nil
}

// Search returns the records matching filters along with the size of the unfiltered set.
func (s *CaseStudyService) Search(ctx context.Context, filters models.FilterState) ([]models.CaseStudy, int, error) {
	items, _, err := s.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return FilterCaseStudies(items, filters), len(items), nil
}

// Options derives the selectable facet values from the current record set.
func (s *CaseStudyService) Options(ctx context.Context) (models.FilterOptions, error) {
	items, _, err := s.List(ctx)
	if err != nil {
		return models.FilterOptions{}, err
	}
	return ExtractOptions(items), nil
}

// Reduce applies a user action to a client-held filter state against the current options.
func (s *CaseStudyService) Reduce(ctx context.Context, state models.FilterState, action models.FilterAction) (models.FilterState, error) {
	options, err := s.Options(ctx)
	if err != nil {
		return state, err
	}
	return ReduceFilterState(state, action, options)
}

// Refresh drops the cached record set so the next read goes upstream.
func (s *CaseStudyService) Refresh(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx, caseStudiesCacheKey); err != nil {
		return appErrors.WrapAs(err, appErrors.ErrInternal)
	}
	s.logger.Info("case study cache invalidated")
	return nil
}

// Warm fetches the record set from the source and replaces the cached copy.
func (s *CaseStudyService) Warm(ctx context.Context) error {
	_, err := s.sharedFetch(ctx)
	return err
}

// HandleJob runs background work queued for the catalogue.
func (s *CaseStudyService) HandleJob(ctx context.Context, job jobs.Job) error {
	switch job.Type {
	case JobWarmCaseStudies:
		return s.Warm(ctx)
	}
	s.logger.Warn("unknown job type", zap.String("type", job.Type))
	return nil
}
