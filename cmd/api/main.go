package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/casestudy-api/api/swagger"
	"github.com/noah-isme/casestudy-api/internal/handler"
	"github.com/noah-isme/casestudy-api/internal/repository"
	"github.com/noah-isme/casestudy-api/internal/service"
	"github.com/noah-isme/casestudy-api/pkg/cache"
	"github.com/noah-isme/casestudy-api/pkg/config"
	"github.com/noah-isme/casestudy-api/pkg/database"
	"github.com/noah-isme/casestudy-api/pkg/jobs"
	"github.com/noah-isme/casestudy-api/pkg/logger"
)

// @title Case Study API
// @version 1.0.0
// @description Password-gated catalogue of published customer case studies
// @BasePath /api
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	checks := map[string]handler.ReadinessCheck{}

	source, closeSource, err := newSource(ctx, cfg, checks)
	if err != nil {
		logr.Fatal("failed to init case study source", zap.String("driver", cfg.Source.Driver), zap.Error(err))
	}
	defer closeSource()

	cacheRepo, closeCache, err := newCacheRepository(cfg, checks, logr)
	if err != nil {
		logr.Fatal("failed to init cache", zap.Error(err))
	}
	defer closeCache()

	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.CaseStudies.CacheTTL, logr)
	caseStudySvc := service.NewCaseStudyService(source, cacheSvc, metricsSvc, cfg.CaseStudies.CacheTTL, logr)
	authSvc := service.NewAuthService(service.AuthConfig{
		Password:      cfg.Auth.Password,
		PasswordHash:  cfg.Auth.PasswordHash,
		TokenSecret:   cfg.Auth.TokenSecret,
		SigningSecret: cfg.Auth.SigningSecret,
		SessionMaxAge: cfg.Auth.SessionMaxAge,
	}, metricsSvc, logr)

	warmQueue := jobs.NewQueue("case-study-warmer", caseStudySvc.HandleJob, jobs.QueueConfig{
		Workers:    1,
		MaxRetries: 2,
		RetryDelay: 30 * time.Second,
		Logger:     logr,
	})
	warmQueue.Start(ctx)
	defer warmQueue.Stop()
	if cfg.CaseStudies.WarmInterval > 0 {
		if err := warmQueue.Enqueue(jobs.Job{Type: service.JobWarmCaseStudies}); err != nil {
			logr.Warn("initial warm not queued", zap.Error(err))
		}
		warmQueue.Every(ctx, cfg.CaseStudies.WarmInterval, service.JobWarmCaseStudies)
	}

	r := newRouter(cfg, logr, routerDeps{
		caseStudies: handler.NewCaseStudyHandler(caseStudySvc, service.NewExportService(), validator.New()),
		auth:        handler.NewAuthHandler(authSvc, cfg.Auth.CookieSecure),
		metrics:     handler.NewMetricsHandler(metricsSvc, checks),
		guard:       authSvc,
		metricsSvc:  metricsSvc,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env), zap.String("source", source.Name()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server shutdown error", zap.Error(err))
	}
}

func newSource(ctx context.Context, cfg *config.Config, checks map[string]handler.ReadinessCheck) (service.CaseStudySource, func(), error) {
	switch cfg.Source.Driver {
	case config.SourcePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		checks["database"] = db.PingContext
		return repository.NewCaseStudyRepository(db), func() { _ = db.Close() }, nil
	default:
		reader, err := repository.NewSheetsValueReader(ctx, cfg.Sheets)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSheetsRepository(reader, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName), func() {}, nil
	}
}

func newCacheRepository(cfg *config.Config, checks map[string]handler.ReadinessCheck, logr *zap.Logger) (service.CacheRepository, func(), error) {
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		logr.Info("redis disabled; using in-memory cache")
		return repository.NewMemoryCacheRepository(), func() {}, nil
	}
	repo := repository.NewCacheRepository(client)
	checks["redis"] = repo.Ping
	return repo, func() { _ = repo.Close() }, nil
}
