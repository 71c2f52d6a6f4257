// Package suggest offers "did you mean" hints for skills that match no
// pillar. Hints are informational only and never feed the salary engine.
package suggest

import (
	"math"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/career-roi/internal/normalizer"
	"github.com/career-roi/internal/pillars"
	"github.com/xrash/smetrics"
	"go.uber.org/zap"
)

// Options tunes the scoring
type Options struct {
	JaroWinklerWeight float64 `yaml:"jw_weight"`
	LevenshteinWeight float64 `yaml:"lev_weight"`
	MinScore          float64 `yaml:"min_score"`
	TopK              int     `yaml:"top_k"`
}

// DefaultOptions are used for zero fields
var DefaultOptions = Options{
	JaroWinklerWeight: 0.6,
	LevenshteinWeight: 0.4,
	MinScore:          0.75,
	TopK:              3,
}

// Suggestion is a catalog keyword close to an unmatched skill
type Suggestion struct {
	Keyword string      `json:"keyword"`
	Pillar  pillars.Key `json:"pillar"`
	Score   float64     `json:"score"`
}

// SkillSuggestions groups the hints for one unmatched skill
type SkillSuggestions struct {
	Skill       string       `json:"skill"`
	Suggestions []Suggestion `json:"suggestions"`
}

type entry struct {
	keyword string
	folded  string
	pillar  pillars.Key
}

// SkillMatcher ranks catalog keywords and aliases against free-text skills
type SkillMatcher struct {
	classifier *pillars.Classifier
	entries    []entry
	opts       Options
	logger     *zap.Logger
}

// NewSkillMatcher indexes every pillar keyword plus every alias whose
// canonical skill belongs to a pillar. Aliases are reported under their
// canonical name.
func NewSkillMatcher(classifier *pillars.Classifier, resolver *normalizer.Resolver, opts Options, logger *zap.Logger) *SkillMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &SkillMatcher{
		classifier: classifier,
		opts:       withDefaults(opts),
		logger:     logger,
	}

	for _, def := range classifier.Definitions() {
		for _, kw := range def.Keywords {
			m.entries = append(m.entries, entry{keyword: kw, folded: normalizer.Fold(kw), pillar: def.Key})
		}
	}
	if resolver != nil {
		for _, a := range resolver.Aliases() {
			pillar, ok := classifier.PillarOf(a.Canonical)
			if !ok {
				continue
			}
			m.entries = append(m.entries, entry{keyword: a.Canonical, folded: normalizer.Fold(a.Alias), pillar: pillar})
		}
	}

	m.logger.Debug("Skill matcher ready", zap.Int("entries", len(m.entries)))
	return m
}

func withDefaults(o Options) Options {
	if o.JaroWinklerWeight <= 0 && o.LevenshteinWeight <= 0 {
		o.JaroWinklerWeight = DefaultOptions.JaroWinklerWeight
		o.LevenshteinWeight = DefaultOptions.LevenshteinWeight
	}
	if o.MinScore <= 0 {
		o.MinScore = DefaultOptions.MinScore
	}
	if o.TopK <= 0 {
		o.TopK = DefaultOptions.TopK
	}
	return o
}

// Options returns the effective options
func (m *SkillMatcher) Options() Options {
	return m.opts
}

// Unmatched returns hints for every processed skill the classifier cannot
// place. Skills are reported once, in input order.
func (m *SkillMatcher) Unmatched(processed []string) []SkillSuggestions {
	out := []SkillSuggestions{}
	seen := make(map[string]bool, len(processed))
	for _, skill := range processed {
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		if _, ok := m.classifier.PillarOf(skill); ok {
			continue
		}
		out = append(out, SkillSuggestions{Skill: skill, Suggestions: m.Suggest(skill)})
	}
	return out
}

// Suggest ranks catalog keywords by similarity to skill, best first
func (m *SkillMatcher) Suggest(skill string) []Suggestion {
	query := normalizer.Fold(skill)
	if query == "" {
		return []Suggestion{}
	}

	best := make(map[string]Suggestion)
	for _, e := range m.entries {
		score := m.score(query, e.folded)
		if score < m.opts.MinScore {
			continue
		}
		if cur, ok := best[e.keyword]; ok && cur.Score >= score {
			continue
		}
		best[e.keyword] = Suggestion{Keyword: e.keyword, Pillar: e.pillar, Score: score}
	}

	out := make([]Suggestion, 0, len(best))
	for _, s := range best {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Keyword < out[j].Keyword
	})
	if len(out) > m.opts.TopK {
		out = out[:m.opts.TopK]
	}
	for i := range out {
		out[i].Score = math.Round(out[i].Score*1000) / 1000
	}
	return out
}

// score blends Jaro-Winkler similarity with a length-normalized
// Levenshtein similarity, both in [0, 1].
func (m *SkillMatcher) score(query, candidate string) float64 {
	if candidate == "" {
		return 0
	}
	jaro := smetrics.JaroWinkler(query, candidate, 0.7, 4)

	levDist := levenshtein.ComputeDistance(query, candidate)
	maxLen := math.Max(float64(len(query)), float64(len(candidate)))
	lev := 1.0 - float64(levDist)/maxLen

	total := m.opts.JaroWinklerWeight + m.opts.LevenshteinWeight
	return (m.opts.JaroWinklerWeight*jaro + m.opts.LevenshteinWeight*lev) / total
}
