package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupWebRoutes registers the banner and endpoint listing
func SetupWebRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Career ROI Salary Service",
			"version": "1.0.0",
			"docs":    "/docs",
		})
	})

	router.GET("/docs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"api": "Career ROI API v1",
			"endpoints": map[string]string{
				"calculate":   "POST /v1/salary/calculate",
				"batch":       "POST /v1/salary/batch",
				"process":     "POST /v1/skills/process",
				"suggest":     "POST /v1/skills/suggest",
				"pillars":     "GET /v1/pillars",
				"pillar":      "GET /v1/pillars/:key",
				"detect":      "POST /v1/pillars/detect",
				"cache_stats": "GET /v1/admin/cache/stats",
				"cache_clear": "POST /v1/admin/cache/clear",
				"health":      "GET /health",
			},
		})
	})
}
