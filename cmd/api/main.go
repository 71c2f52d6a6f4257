package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/career-roi/app/config"
	"github.com/career-roi/app/controllers"
	"github.com/career-roi/app/services"
	"github.com/career-roi/internal/catalog"
	"github.com/career-roi/internal/logger"
	"github.com/career-roi/routes"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	loadConfig()

	// 2. Logger
	zl, err := logger.New(viper.GetBool("log.json"), viper.GetBool("log.debug"))
	if err != nil {
		log.Fatalf("Cannot initialize logger: %v", err)
	}
	defer zl.Sync()
	zl = logger.WithFields(zl, zap.String("env", viper.GetString("app.env")))

	zl.Info("Starting Career ROI Salary Service")

	// 3. Engine tuning
	enginePath := viper.GetString("engine.config_path")
	if err := config.Load(enginePath); err != nil {
		zl.Warn("Using default engine settings", zap.String("path", enginePath), zap.Error(err))
	}

	// 4. Services
	skillCache, err := services.NewSkillCacheService(config.C.Cache.SkillSize, zl)
	if err != nil {
		zl.Fatal("Failed to initialize skill cache", zap.Error(err))
	}
	salaryService, err := services.NewSalaryService(catalog.Default(), skillCache, config.C.Suggest, zl)
	if err != nil {
		zl.Fatal("Failed to initialize salary engine", zap.Error(err))
	}

	// 5. Controllers
	salaryController := controllers.NewSalaryController(salaryService, zl)
	adminController := controllers.NewAdminController(salaryService, zl)

	// 6. Router
	if viper.GetString("app.env") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, salaryController, adminController, zl)

	// 7. Server
	srv := &http.Server{
		Addr:              ":" + viper.GetString("app.port"),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zl.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("Forced shutdown", zap.Error(err))
	}

	zl.Info("Server exited")
}

// loadConfig reads config/app.yaml and env vars (APP_PORT, LOG_JSON, ...)
func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("log.json", false)
	viper.SetDefault("log.debug", false)
	viper.SetDefault("engine.config_path", "config/engine.yaml")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}
}
