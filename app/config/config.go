package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/career-roi/internal/suggest"
	"gopkg.in/yaml.v3"
)

type CacheCfg struct {
	SkillSize int `yaml:"skill_size" json:"skill_size"`
}

type EngineCfg struct {
	Cache            CacheCfg        `yaml:"cache" json:"cache"`
	Suggest          suggest.Options `yaml:"suggest" json:"suggest"`
	RequestTimeoutMs int             `yaml:"request_timeout_ms" json:"request_timeout_ms"`
	BatchWorkers     int             `yaml:"batch_workers" json:"batch_workers"`
}

// Defaults returns the settings used when no engine file is present
func Defaults() EngineCfg {
	return EngineCfg{
		Cache:            CacheCfg{SkillSize: 4096},
		Suggest:          suggest.DefaultOptions,
		RequestTimeoutMs: 1500,
		BatchWorkers:     4,
	}
}

var C = Defaults()

// Load reads the engine tuning file at path over the defaults, then applies
// environment overrides. C is left untouched on error.
func Load(path string) error {
	cfg := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := applyEnv(&cfg); err != nil {
		return err
	}
	C = cfg
	return nil
}

// ENV overrides
func applyEnv(cfg *EngineCfg) error {
	if v := os.Getenv("SKILL_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SKILL_CACHE_SIZE: %w", err)
		}
		cfg.Cache.SkillSize = n
	}
	if v := os.Getenv("SUGGEST_MIN_SCORE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SUGGEST_MIN_SCORE: %w", err)
		}
		cfg.Suggest.MinScore = f
	}
	return nil
}

func RequestTimeout() time.Duration {
	if C.RequestTimeoutMs <= 0 {
		return 1500 * time.Millisecond
	}
	return time.Duration(C.RequestTimeoutMs) * time.Millisecond
}
