package controllers

import (
	"net/http"
	"time"

	"github.com/career-roi/app/responses"
	"github.com/career-roi/app/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminController exposes operational endpoints for the skill cache
type AdminController struct {
	salaryService *services.SalaryService
	logger        *zap.Logger
}

// NewAdminController creates an AdminController
func NewAdminController(salaryService *services.SalaryService, logger *zap.Logger) *AdminController {
	return &AdminController{
		salaryService: salaryService,
		logger:        logger,
	}
}

// GetCacheStats returns skill cache counters
func (ac *AdminController) GetCacheStats(c *gin.Context) {
	stats, ok := ac.salaryService.CacheStats()
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse(c, "CACHE_DISABLED", "Skill cache is disabled"))
		return
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success:   true,
		Message:   "Cache stats",
		Data:      stats,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// ClearCache empties the skill cache. Results are unaffected.
func (ac *AdminController) ClearCache(c *gin.Context) {
	if !ac.salaryService.ClearCache() {
		c.JSON(http.StatusNotFound, errorResponse(c, "CACHE_DISABLED", "Skill cache is disabled"))
		return
	}

	ac.logger.Info("Skill cache cleared via admin API")
	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success:   true,
		Message:   "Cache cleared",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
