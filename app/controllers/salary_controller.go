package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/career-roi/app/config"
	"github.com/career-roi/app/requests"
	"github.com/career-roi/app/responses"
	"github.com/career-roi/app/services"
	"github.com/career-roi/helpers/utils"
	"github.com/career-roi/internal/salary"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

// SalaryController handles salary projection and skill classification
type SalaryController struct {
	salaryService *services.SalaryService
	logger        *zap.Logger
}

// NewSalaryController creates a SalaryController
func NewSalaryController(salaryService *services.SalaryService, logger *zap.Logger) *SalaryController {
	return &SalaryController{
		salaryService: salaryService,
		logger:        logger,
	}
}

// Calculate projects before/after salary for one profile
func (sc *SalaryController) Calculate(c *gin.Context) {
	var req requests.CalculateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	startTime := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), config.RequestTimeout())
	defer cancel()

	result, err := sc.salaryService.Calculate(ctx, req.Profile())
	if err != nil {
		sc.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.CalculateSalaryResponse{
		Result:           result,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		RequestID:        c.GetString(utils.RequestIDKey),
	})
}

// CalculateBatch prices up to 1000 profiles in one request
func (sc *SalaryController) CalculateBatch(c *gin.Context) {
	var req requests.BatchCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	startTime := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), config.RequestTimeout())
	defer cancel()

	results, err := sc.salaryService.CalculateBatch(ctx, req.ProfileList(), config.C.BatchWorkers)
	if err != nil {
		sc.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.BatchCalculateResponse{
		Results:          results,
		Total:            len(results),
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		RequestID:        c.GetString(utils.RequestIDKey),
	})
}

// ProcessSkills returns the normalized, alias-resolved skill list
func (sc *SalaryController) ProcessSkills(c *gin.Context) {
	var req requests.SkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.ProcessSkillsResponse{
		Skills: sc.salaryService.ProcessSkills(req.Skills),
	})
}

// DetectPillars previews which pillars a skill list covers
func (sc *SalaryController) DetectPillars(c *gin.Context) {
	var req requests.SkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p := sc.salaryService.Preview(req.Skills)
	c.JSON(http.StatusOK, responses.DetectPillarsResponse{
		ProcessedSkills: p.ProcessedSkills,
		DetectedPillars: p.DetectedPillars,
		PillarNames:     p.PillarNames,
	})
}

// SuggestSkills returns close catalog keywords for unmatched skills
func (sc *SalaryController) SuggestSkills(c *gin.Context) {
	var req requests.SkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.SuggestSkillsResponse{
		Unmatched: sc.salaryService.Suggest(req.Skills),
	})
}

// ListPillars lists every pillar definition in priority order
func (sc *SalaryController) ListPillars(c *gin.Context) {
	c.JSON(http.StatusOK, responses.PillarsResponse{
		Pillars: sc.salaryService.Pillars(),
	})
}

// GetPillar returns one pillar definition
func (sc *SalaryController) GetPillar(c *gin.Context) {
	def, err := sc.salaryService.Pillar(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse(c, "PILLAR_NOT_FOUND", "Unknown pillar: "+c.Param("key")))
		return
	}
	c.JSON(http.StatusOK, def)
}

// HealthCheck reports service health
func (sc *SalaryController) HealthCheck(c *gin.Context) {
	uptime := time.Since(sc.salaryService.GetStartTime())

	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    uptime.String(),
		Version:   version,
		Services: map[string]string{
			"salary_engine": "healthy",
			"skill_cache":   cacheHealth(sc.salaryService),
		},
	})
}

func (sc *SalaryController) abort(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.Is(err, salary.ErrSalaryOutOfRange):
		badRequest(c, err)
		return
	}
	sc.logger.Warn("Salary calculation aborted", zap.Error(err), zap.String("request_id", c.GetString(utils.RequestIDKey)))
	c.JSON(status, errorResponse(c, "CALCULATION_ABORTED", err.Error()))
}

func cacheHealth(s *services.SalaryService) string {
	if _, ok := s.CacheStats(); ok {
		return "healthy"
	}
	return "disabled"
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse(c, "INVALID_REQUEST", "Invalid request: "+err.Error()))
}

func errorResponse(c *gin.Context, code, message string) responses.ErrorResponse {
	return responses.ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: c.GetString(utils.RequestIDKey),
	}
}
