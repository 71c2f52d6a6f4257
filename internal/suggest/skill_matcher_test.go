package suggest

import (
	"testing"

	"github.com/career-roi/internal/catalog"
	"github.com/career-roi/internal/normalizer"
	"github.com/career-roi/internal/pillars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T, opts Options) *SkillMatcher {
	t.Helper()
	cat := catalog.MustLoad()
	classifier, err := pillars.NewClassifier(cat.Pillars)
	require.NoError(t, err)
	resolver, err := normalizer.NewResolver(cat.Aliases)
	require.NoError(t, err)
	return NewSkillMatcher(classifier, resolver, opts, nil)
}

func TestSuggest_Typos(t *testing.T) {
	m := newTestMatcher(t, Options{})

	testCases := []struct {
		skill   string
		keyword string
		pillar  pillars.Key
	}{
		{skill: "storytellng", keyword: "storytelling", pillar: pillars.Foundations},
		{skill: "chatgtp", keyword: "chatgpt", pillar: pillars.AI},
		{skill: "midjurney", keyword: "midjourney", pillar: pillars.AI},
		{skill: "copywritting", keyword: "copywriting", pillar: pillars.Foundations},
	}

	for _, tc := range testCases {
		t.Run(tc.skill, func(t *testing.T) {
			got := m.Suggest(tc.skill)
			require.NotEmpty(t, got)
			assert.Equal(t, tc.keyword, got[0].Keyword)
			assert.Equal(t, tc.pillar, got[0].Pillar)
			assert.GreaterOrEqual(t, got[0].Score, m.Options().MinScore)
			assert.LessOrEqual(t, got[0].Score, 1.0)
		})
	}
}

func TestSuggest_RankingAndLimits(t *testing.T) {
	m := newTestMatcher(t, Options{TopK: 2, MinScore: 0.5})

	got := m.Suggest("chatgtp")
	require.LessOrEqual(t, len(got), 2)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}

	keywords := map[string]bool{}
	for _, s := range got {
		assert.False(t, keywords[s.Keyword], "duplicate keyword %s", s.Keyword)
		keywords[s.Keyword] = true
	}

	strict := newTestMatcher(t, Options{MinScore: 0.99})
	assert.Empty(t, strict.Suggest("storytellng"))

	assert.Empty(t, m.Suggest(""))
	assert.Empty(t, m.Suggest("!!!"))
}

func TestUnmatched(t *testing.T) {
	m := newTestMatcher(t, Options{})

	got := m.Unmatched([]string{"seo", "storytellng", "storytellng", "google analytics"})
	require.Len(t, got, 1)
	assert.Equal(t, "storytellng", got[0].Skill)
	assert.Equal(t, "storytelling", got[0].Suggestions[0].Keyword)

	assert.NotNil(t, m.Unmatched(nil))
	assert.Empty(t, m.Unmatched([]string{"seo", "scrum"}))
}

func TestOptions_Defaults(t *testing.T) {
	m := newTestMatcher(t, Options{})
	assert.Equal(t, DefaultOptions, m.Options())

	m = newTestMatcher(t, Options{JaroWinklerWeight: 1, TopK: 5})
	assert.Equal(t, 1.0, m.Options().JaroWinklerWeight)
	assert.Equal(t, 0.0, m.Options().LevenshteinWeight)
	assert.Equal(t, 5, m.Options().TopK)
	assert.Equal(t, DefaultOptions.MinScore, m.Options().MinScore)
}
