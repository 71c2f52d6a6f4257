package normalizer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapCache struct {
	mu    sync.Mutex
	items map[string]string
	hits  int
}

func (m *mapCache) Get(raw string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[raw]
	if ok {
		m.hits++
	}
	return v, ok
}

func (m *mapCache) Add(raw, processed string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[raw] = processed
}

func TestPreprocessor_Process(t *testing.T) {
	p := NewPreprocessor(newTestResolver(t), nil)

	got := p.Process([]string{"GA4", "  ", "SEO!!", "Chat GPT", "seo", "!!!"})
	assert.Equal(t, []string{"google analytics", "seo", "chatgpt", "seo"}, got)
}

func TestPreprocessor_NilAndEmpty(t *testing.T) {
	p := NewPreprocessor(newTestResolver(t), nil)

	assert.NotNil(t, p.Process(nil))
	assert.Empty(t, p.Process(nil))
	assert.Empty(t, p.Process([]string{"", " ", "--"}))
}

func TestPreprocessor_CacheDoesNotChangeResults(t *testing.T) {
	resolver := newTestResolver(t)
	plain := NewPreprocessor(resolver, nil)
	cache := &mapCache{items: map[string]string{}}
	cached := plain.WithCache(cache)

	input := []string{"GTM", "ppc", "Excel", "   ", "GTM"}
	first := cached.Process(input)
	second := cached.Process(input)

	assert.Equal(t, plain.Process(input), first)
	assert.Equal(t, first, second)
	assert.Equal(t, 6, cache.hits)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "generative ai", Fold("Génerative AI"))
	assert.Equal(t, "seo", Fold("SÉO"))
	assert.Equal(t, "", Fold(""))
}
