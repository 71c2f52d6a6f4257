package services

import (
	"context"
	"errors"
	"time"

	"github.com/career-roi/internal/batch"
	"github.com/career-roi/internal/catalog"
	"github.com/career-roi/internal/pillars"
	"github.com/career-roi/internal/salary"
	"github.com/career-roi/internal/suggest"
	"go.uber.org/zap"
)

var ErrPillarNotFound = errors.New("pillar not found")

// SalaryService wraps the salary engine and the skill suggester for the
// HTTP layer
type SalaryService struct {
	engine    *salary.Engine
	matcher   *suggest.SkillMatcher
	cache     ISkillCache
	logger    *zap.Logger
	startTime time.Time
}

// PillarPreview is the outcome of classifying a skill list without pricing it
type PillarPreview struct {
	ProcessedSkills []string      `json:"processed_skills"`
	DetectedPillars []pillars.Key `json:"detected_pillars"`
	PillarNames     []string      `json:"pillar_names"`
}

// NewSalaryService builds the engine over cat. cache may be nil.
func NewSalaryService(cat *catalog.Catalog, cache ISkillCache, suggestOpts suggest.Options, logger *zap.Logger) (*SalaryService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var opts []salary.Option
	if cache != nil {
		opts = append(opts, salary.WithSkillCache(cache))
	}
	engine, err := salary.NewEngine(cat, opts...)
	if err != nil {
		return nil, err
	}

	return &SalaryService{
		engine:    engine,
		matcher:   suggest.NewSkillMatcher(engine.Classifier(), engine.Resolver(), suggestOpts, logger),
		cache:     cache,
		logger:    logger,
		startTime: time.Now(),
	}, nil
}

// Calculate projects the salary for one profile
func (ss *SalaryService) Calculate(ctx context.Context, profile salary.Profile) (salary.Result, error) {
	if err := ctx.Err(); err != nil {
		return salary.Result{}, err
	}
	if err := profile.Validate(); err != nil {
		return salary.Result{}, err
	}
	start := time.Now()
	result := ss.engine.Calculate(profile)

	ss.logger.Debug("Salary calculated",
		zap.String("segment", string(profile.Segment)),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("detected", len(result.DetectedPillars)),
		zap.Float64("after", result.After),
		zap.Duration("took", time.Since(start)))
	return result, nil
}

// CalculateBatch prices many profiles concurrently, keeping input order
func (ss *SalaryService) CalculateBatch(ctx context.Context, profiles []salary.Profile, workers int) ([]salary.Result, error) {
	start := time.Now()
	results, err := batch.Run(ctx, ss, profiles, workers)
	if err != nil {
		return nil, err
	}
	ss.logger.Info("Batch calculated",
		zap.Int("profiles", len(profiles)),
		zap.Duration("took", time.Since(start)))
	return results, nil
}

// ProcessSkills normalizes and alias-resolves raw skills
func (ss *SalaryService) ProcessSkills(raw []string) []string {
	return ss.engine.ProcessSkills(raw)
}

// Preview classifies raw skills
func (ss *SalaryService) Preview(raw []string) PillarPreview {
	processed := ss.engine.ProcessSkills(raw)
	detected := ss.engine.DetectPillars(processed)
	return PillarPreview{
		ProcessedSkills: processed,
		DetectedPillars: detected,
		PillarNames:     ss.engine.PillarNames(detected),
	}
}

// Pillars lists every pillar in priority order
func (ss *SalaryService) Pillars() []pillars.Definition {
	return ss.engine.Classifier().Definitions()
}

// Pillar looks up a single pillar definition
func (ss *SalaryService) Pillar(key string) (pillars.Definition, error) {
	def, ok := ss.engine.PillarDefinition(pillars.Key(key))
	if !ok {
		return pillars.Definition{}, ErrPillarNotFound
	}
	return def, nil
}

// Suggest returns "did you mean" hints for raw skills that match no pillar
func (ss *SalaryService) Suggest(raw []string) []suggest.SkillSuggestions {
	out := ss.matcher.Unmatched(ss.engine.ProcessSkills(raw))
	if len(out) > 0 {
		unmatched := make([]string, 0, len(out))
		for _, s := range out {
			unmatched = append(unmatched, s.Skill)
		}
		ss.logger.Debug("Unmatched skills", zap.Strings("skills", unmatched))
	}
	return out
}

// CacheStats reports the skill cache counters; ok is false without a cache
func (ss *SalaryService) CacheStats() (CacheStats, bool) {
	if ss.cache == nil {
		return CacheStats{}, false
	}
	return ss.cache.GetStats(), true
}

// ClearCache empties the skill cache, if any
func (ss *SalaryService) ClearCache() bool {
	if ss.cache == nil {
		return false
	}
	ss.cache.Clear()
	return true
}

// GetStartTime reports when the service was built
func (ss *SalaryService) GetStartTime() time.Time {
	return ss.startTime
}
