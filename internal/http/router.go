package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/Swapnil27012000/uomdcs-sub000/internal/http/handlers"
	httpMW "github.com/Swapnil27012000/uomdcs-sub000/internal/http/middleware"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/observability"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	AllowedOrigins string
	ServiceName    string

	AuthMiddleware *httpMW.AuthMiddleware

	ScoreHandler    *httpH.ScoreHandler
	ReviewHandler   *httpH.ReviewHandler
	DocumentHandler *httpH.DocumentHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	if cfg.AuthMiddleware != nil {
		api.Use(cfg.AuthMiddleware.RequireAuth())
	}

	if cfg.ScoreHandler != nil {
		api.GET("/departments/:dept/scores", cfg.ScoreHandler.GetSummary)
		api.GET("/departments/:dept/scores/breakdown", cfg.ScoreHandler.GetBreakdown)
		api.POST("/departments/:dept/scores/invalidate", cfg.ScoreHandler.Invalidate)
		api.POST("/departments/:dept/scores/recompute", cfg.ScoreHandler.Recompute)
	}

	if cfg.ReviewHandler != nil {
		api.GET("/departments/:dept/review", cfg.ReviewHandler.Get)
		api.PUT("/departments/:dept/review", cfg.ReviewHandler.Save)
		api.DELETE("/departments/:dept/review", cfg.ReviewHandler.Delete)
		api.POST("/departments/:dept/review/lock", cfg.ReviewHandler.Lock)
		api.POST("/departments/:dept/review/unlock", cfg.ReviewHandler.Unlock)
		api.GET("/departments/:dept/reviews", cfg.ReviewHandler.List)
	}

	if cfg.DocumentHandler != nil {
		api.GET("/departments/:dept/documents", cfg.DocumentHandler.List)
	}

	return r
}
