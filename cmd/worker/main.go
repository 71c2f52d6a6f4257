package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/career-roi/app/config"
	"github.com/career-roi/app/services"
	"github.com/career-roi/helpers/utils"
	"github.com/career-roi/internal/batch"
	"github.com/career-roi/internal/catalog"
	"github.com/career-roi/internal/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Batch worker: reads NDJSON profiles from WORKER_INPUT (default stdin) and
// writes NDJSON results to WORKER_OUTPUT (default stdout).
func main() {
	viper.SetDefault("worker.input", "")
	viper.SetDefault("worker.output", "")
	viper.SetDefault("worker.concurrency", 0)
	viper.SetDefault("log.json", true)
	viper.SetDefault("log.debug", false)
	viper.SetDefault("engine.config_path", "config/engine.yaml")
	viper.BindEnv("worker.input", "WORKER_INPUT")
	viper.BindEnv("worker.output", "WORKER_OUTPUT")
	viper.BindEnv("worker.concurrency", "WORKER_CONCURRENCY")
	viper.BindEnv("log.json", "LOG_JSON")
	viper.BindEnv("log.debug", "LOG_DEBUG")
	viper.BindEnv("engine.config_path", "ENGINE_CONFIG_PATH")

	os.Exit(start())
}

// start runs one batch and returns the process exit code once every
// deferred cleanup has run.
func start() int {
	zl, err := logger.New(viper.GetBool("log.json"), viper.GetBool("log.debug"))
	if err != nil {
		log.Printf("Cannot initialize logger: %v", err)
		return 1
	}
	defer zl.Sync()
	zl = zl.With(zap.String("batch_id", utils.GenerateShortID()))

	if err := config.Load(viper.GetString("engine.config_path")); err != nil {
		zl.Warn("Using default engine settings", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, zl); err != nil {
		zl.Error("Batch failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, zl *zap.Logger) (err error) {
	in := io.Reader(os.Stdin)
	if path := viper.GetString("worker.input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if path := viper.GetString("worker.output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		out = f
	}

	profiles, err := batch.Decode(in)
	if err != nil {
		return err
	}

	skillCache, err := services.NewSkillCacheService(config.C.Cache.SkillSize, zl)
	if err != nil {
		return err
	}
	svc, err := services.NewSalaryService(catalog.Default(), skillCache, config.C.Suggest, zl)
	if err != nil {
		return err
	}

	workers := viper.GetInt("worker.concurrency")
	if workers <= 0 {
		workers = config.C.BatchWorkers
	}

	start := time.Now()
	zl.Info("Starting batch", zap.Int("profiles", len(profiles)), zap.Int("workers", workers))
	results, err := svc.CalculateBatch(ctx, profiles, workers)
	if err != nil {
		return err
	}
	if err := batch.Encode(out, results); err != nil {
		return err
	}

	stats := skillCache.GetStats()
	zl.Info("Batch done",
		zap.Int("results", len(results)),
		zap.Float64("skill_cache_hit_rate", stats.HitRate),
		zap.Duration("took", time.Since(start)))
	return nil
}
