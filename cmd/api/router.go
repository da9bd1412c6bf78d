package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/casestudy-api/internal/handler"
	"github.com/noah-isme/casestudy-api/internal/middleware"
	"github.com/noah-isme/casestudy-api/internal/service"
	"github.com/noah-isme/casestudy-api/pkg/config"
	"github.com/noah-isme/casestudy-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/casestudy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/casestudy-api/pkg/middleware/requestid"
)

type routerDeps struct {
	caseStudies *handler.CaseStudyHandler
	auth        *handler.AuthHandler
	metrics     *handler.MetricsHandler
	guard       middleware.MarkerValidator
	metricsSvc  *service.MetricsService
}

func newRouter(cfg *config.Config, logr *zap.Logger, deps routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.metricsSvc, "/metrics"))

	publicPaths := append([]string{cfg.APIPrefix + "/auth/"}, cfg.Auth.PublicPaths...)
	if cfg.Env != config.EnvProduction {
		publicPaths = append(publicPaths, "/docs/")
	}
	r.Use(middleware.SessionGuard(deps.guard, publicPaths))

	r.GET("/health", deps.metrics.Health)
	r.GET("/ready", deps.metrics.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", deps.metrics.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET(middleware.LoginPath, deps.auth.LoginPage)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, cfg.APIPrefix+"/case-studies")
	})

	api := r.Group(cfg.APIPrefix)

	limiter := middleware.NewRateLimiter(cfg.Auth.RateLimit, cfg.Auth.RateLimitWindow)
	auth := api.Group("/auth")
	auth.POST("/login", limiter.Middleware(), deps.auth.Login)
	auth.POST("/token", limiter.Middleware(), deps.auth.Token)
	auth.POST("/logout", deps.auth.Logout)

	caseStudies := api.Group("/case-studies")
	caseStudies.GET("", deps.caseStudies.List)
	caseStudies.GET("/options", deps.caseStudies.Options)
	caseStudies.POST("/search", deps.caseStudies.Search)
	caseStudies.GET("/export", deps.caseStudies.Export)
	caseStudies.POST("/refresh", deps.caseStudies.Refresh)

	api.POST("/filters/reduce", deps.caseStudies.Reduce)

	return r
}
