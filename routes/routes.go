// Package routes wires controllers and middleware into a gin engine.
//
// - api.go: /v1 API and probe routes
// - web.go: banner and endpoint listing
// - middleware.go: request ID and zap request logging
package routes

import (
	"net/http"

	"github.com/career-roi/app/controllers"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupAllRoutes installs middleware and every route
func SetupAllRoutes(router *gin.Engine, salaryController *controllers.SalaryController, adminController *controllers.AdminController, logger *zap.Logger) {
	setupMiddleware(router, logger)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, salaryController)
	SetupAPIRoutes(router, salaryController, adminController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
}
