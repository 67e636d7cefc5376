package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/hospital-api/internal/config"
	"github.com/jwalitptl/hospital-api/internal/handler"
	promhandler "github.com/jwalitptl/hospital-api/internal/handler/prometheus"
	"github.com/jwalitptl/hospital-api/internal/middleware"
	"github.com/jwalitptl/hospital-api/pkg/validator"
)

type RouterConfig struct {
	CORSConfig     middleware.CORSConfig
	RateLimit      rate.Limit
	RateBurst      int
	RateEnabled    bool
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	MetricsPath    string
}

// ConfigFrom derives the router settings from the service configuration.
func ConfigFrom(cfg *config.Config) RouterConfig {
	cors := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		cors.AllowOrigins = cfg.Security.AllowedOrigins
	}

	rc := RouterConfig{
		CORSConfig:     cors,
		RateLimit:      rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:      cfg.RateLimit.Burst,
		RateEnabled:    cfg.RateLimit.Enabled,
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
	}
	if cfg.Monitoring.PrometheusEnabled {
		rc.MetricsPath = cfg.Monitoring.MetricsPath
	}
	return rc
}

// New builds the engine and mounts every handler at the root. prom may be
// nil, which disables request metrics and the metrics endpoint.
func New(config RouterConfig, prom *promhandler.Handler, handlers ...handler.RouteRegistrar) *gin.Engine {
	validator.Register()

	engine := gin.New()

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
	)
	if prom != nil {
		engine.Use(prom.Middleware())
	}
	engine.Use(
		middleware.Recovery(),
		middleware.ErrorHandler(),
		middleware.CORS(config.CORSConfig),
		middleware.SizeLimit(middleware.SizeLimitConfig{MaxBodySize: config.MaxBodyBytes}),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.RequestTimeout}),
	)

	if config.RateEnabled {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "not found"})
	})

	if prom != nil && config.MetricsPath != "" {
		engine.GET(config.MetricsPath, prom.Handler())
	}

	root := &engine.RouterGroup
	for _, h := range handlers {
		h.RegisterRoutes(root)
	}

	return engine
}
