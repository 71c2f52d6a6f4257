package services

import "github.com/career-roi/internal/normalizer"

// CacheStats counters of the skill cache
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
	Capacity   int     `json:"capacity"`
}

// ISkillCache memoizes raw skill -> processed skill. Entries are pure
// functions of the raw text, so clearing never changes results.
type ISkillCache interface {
	normalizer.Cache

	// Clear drops every entry and resets counters
	Clear()

	// GetStats reports hit/miss counters and current size
	GetStats() CacheStats
}
