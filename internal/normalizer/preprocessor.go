package normalizer

// Cache memoizes the processed form of a raw skill. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(raw string) (string, bool)
	Add(raw, processed string)
}

// Preprocessor runs Normalize and alias resolution over raw skill lists
type Preprocessor struct {
	resolver *Resolver
	cache    Cache
}

// NewPreprocessor creates a preprocessor. cache may be nil.
func NewPreprocessor(resolver *Resolver, cache Cache) *Preprocessor {
	return &Preprocessor{resolver: resolver, cache: cache}
}

// WithCache returns a preprocessor sharing the resolver but using cache
func (p *Preprocessor) WithCache(cache Cache) *Preprocessor {
	return &Preprocessor{resolver: p.resolver, cache: cache}
}

// Process normalizes and resolves every raw skill, preserving order and
// duplicates and dropping entries that normalize to "".
func (p *Preprocessor) Process(rawSkills []string) []string {
	out := make([]string, 0, len(rawSkills))
	for _, raw := range rawSkills {
		if skill := p.One(raw); skill != "" {
			out = append(out, skill)
		}
	}
	return out
}

// One processes a single raw skill
func (p *Preprocessor) One(raw string) string {
	if p.cache != nil {
		if skill, ok := p.cache.Get(raw); ok {
			return skill
		}
	}
	skill := Normalize(raw)
	if skill != "" {
		skill = p.resolver.Resolve(skill)
	}
	if p.cache != nil {
		p.cache.Add(raw, skill)
	}
	return skill
}
