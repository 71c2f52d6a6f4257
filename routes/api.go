package routes

import (
	"github.com/career-roi/app/controllers"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the /v1 API
func SetupAPIRoutes(router *gin.Engine, salaryController *controllers.SalaryController, adminController *controllers.AdminController) {
	v1 := router.Group("/v1")
	{
		salary := v1.Group("/salary")
		{
			salary.POST("/calculate", salaryController.Calculate)
			salary.POST("/batch", salaryController.CalculateBatch)
		}

		skills := v1.Group("/skills")
		{
			skills.POST("/process", salaryController.ProcessSkills)
			skills.POST("/suggest", salaryController.SuggestSkills)
		}

		pillars := v1.Group("/pillars")
		{
			pillars.GET("", salaryController.ListPillars)
			pillars.GET("/:key", salaryController.GetPillar)
			pillars.POST("/detect", salaryController.DetectPillars)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/cache/stats", adminController.GetCacheStats)
			admin.POST("/cache/clear", adminController.ClearCache)
		}

		v1.GET("/health", salaryController.HealthCheck)
	}
}

// SetupHealthRoutes registers the probe routes
func SetupHealthRoutes(router *gin.Engine, salaryController *controllers.SalaryController) {
	router.GET("/health", salaryController.HealthCheck)
	router.GET("/ready", salaryController.HealthCheck)
	router.GET("/live", salaryController.HealthCheck)
}
