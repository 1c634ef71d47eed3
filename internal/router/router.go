package router

import (
	"github.com/gin-gonic/gin"

	"medreportz/internal/config"
	"medreportz/internal/handler"
	"medreportz/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Report analysis routes
	reports := v1.Group("/reports")
	reports.POST("/analyze", reportH.Analyze)
	reports.POST("/analyze-file", reportH.AnalyzeFile)
	reports.POST("/export/csv", reportH.ExportCSV)

	return r
}
