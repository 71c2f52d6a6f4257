package services

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// SkillCacheService is an in-process LRU over preprocessed skills
type SkillCacheService struct {
	cache    *lru.Cache[string, string]
	capacity int
	hits     atomic.Int64
	misses   atomic.Int64
	logger   *zap.Logger
}

// NewSkillCacheService creates a cache holding up to size skills
func NewSkillCacheService(size int, logger *zap.Logger) (*SkillCacheService, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create skill cache: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkillCacheService{cache: cache, capacity: size, logger: logger}, nil
}

func (s *SkillCacheService) Get(raw string) (string, bool) {
	v, ok := s.cache.Get(raw)
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return v, ok
}

func (s *SkillCacheService) Add(raw, processed string) {
	if evicted := s.cache.Add(raw, processed); evicted {
		s.logger.Debug("Skill cache eviction", zap.Int("capacity", s.capacity))
	}
}

func (s *SkillCacheService) Clear() {
	s.cache.Purge()
	s.hits.Store(0)
	s.misses.Store(0)
	s.logger.Info("Skill cache cleared")
}

func (s *SkillCacheService) GetStats() CacheStats {
	hits := s.hits.Load()
	misses := s.misses.Load()

	stats := CacheStats{
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(s.cache.Len()),
		Capacity:   s.capacity,
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats
}
