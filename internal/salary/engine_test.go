package salary

import (
	"math"
	"sync"
	"testing"

	"github.com/career-roi/internal/catalog"
	"github.com/career-roi/internal/pillars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contributions(items []SkillContribution) []float64 {
	out := make([]float64, 0, len(items))
	for _, it := range items {
		out = append(out, it.Contribution)
	}
	return out
}

func pillarsOf(items []SkillContribution) []pillars.Key {
	out := make([]pillars.Key, 0, len(items))
	for _, it := range items {
		out = append(out, it.Pillar)
	}
	return out
}

func TestFresher_NoSkills(t *testing.T) {
	r := Default().Fresher(nil, false)

	assert.Equal(t, 3.0, r.Before)
	assert.Equal(t, 3.0, r.After)
	assert.Equal(t, 0.0, r.Uplift)
	assert.Empty(t, r.DetectedPillars)
	assert.Empty(t, r.SkillsAdded)
	assert.Equal(t, "Base salary for entry-level position. Complete Full Stack Program to unlock growth potential.", r.Explanation)
}

func TestFresher_DetectedOnly(t *testing.T) {
	r := Default().Fresher([]string{"ChatGPT"}, false)
	assert.Equal(t, 4.0, r.Before)
	assert.Equal(t, 4.0, r.After)
	assert.Equal(t, 0.0, r.Uplift)
	assert.Equal(t, []pillars.Key{pillars.AI}, r.DetectedPillars)

	r = Default().Fresher([]string{"SEO", "excel"}, false)
	assert.Equal(t, 4.4, r.Before)
	assert.Equal(t, 4.4, r.After)
	assert.Equal(t,
		"Salary calculated based on skill coverage across strategy & growth execution, analytics & data, reflecting current market readiness.",
		r.Explanation)
}

func TestFresher_ProgramCompleted(t *testing.T) {
	r := Default().Fresher([]string{"chatgpt"}, true)

	assert.Equal(t, 4.0, r.Before)
	assert.Equal(t, 8.2, r.After)
	assert.Equal(t, 4.2, r.Uplift)
	assert.Equal(t, []pillars.Key{pillars.AI}, r.DetectedPillars)
	assert.Equal(t, pillars.Keys[:], pillarsOf(r.SkillsAdded))
	assert.Equal(t, []float64{0.4, 0.8, 1.1, 0.7, 1.3}, contributions(r.SkillsAdded))
	assert.Equal(t, "Foundations & Narratives", r.SkillsAdded[0].Name)
	assert.Equal(t,
		"Salary calculated with all five pillars and market-readiness multiplier, reflecting full-stack marketing engineer capabilities.",
		r.Explanation)
}

func TestFresher_ProgramCompletedAfterIsIndependentOfSkills(t *testing.T) {
	e := Default()

	none := e.Fresher(nil, true)
	seo := e.Fresher([]string{"seo"}, true)
	all := e.Fresher([]string{"storytelling", "seo", "sql", "scrum", "zapier"}, true)

	assert.Equal(t, 8.2, none.After)
	assert.Equal(t, 8.2, seo.After)
	assert.Equal(t, 8.2, all.After)

	assert.Equal(t, 3.6, seo.Before)
	assert.Equal(t, 4.6, seo.Uplift)
	assert.Equal(t, 6.2, all.Before)
	assert.Equal(t, 2.0, all.Uplift)
	assert.Len(t, all.SkillsAdded, 5)
}

func TestExperienced_MissingSalary(t *testing.T) {
	e := Default()
	for _, salary := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		r := e.Experienced(salary, []string{"seo", "chatgpt"}, true)
		assert.Equal(t, 0.0, r.Before)
		assert.Equal(t, 0.0, r.After)
		assert.Equal(t, 0.0, r.Uplift)
		assert.Empty(t, r.DetectedPillars)
		assert.Empty(t, r.SkillsAdded)
		assert.Equal(t, "Please enter your current salary to calculate growth potential.", r.Explanation)
	}
}

func TestExperienced_AllPillarsMissing(t *testing.T) {
	r := Default().Experienced(10, nil, true)

	assert.Equal(t, 10.0, r.Before)
	assert.Equal(t, 19.7, r.After)
	assert.Equal(t, 9.7, r.Uplift)
	assert.Empty(t, r.DetectedPillars)

	byPillar := map[pillars.Key]float64{}
	sum := 0.0
	for _, it := range r.SkillsAdded {
		byPillar[it.Pillar] = it.Contribution
		sum += it.Contribution
	}
	assert.Equal(t, map[pillars.Key]float64{
		pillars.Analytics:         2.3,
		pillars.AI:                2.7,
		pillars.ProjectManagement: 1.8,
		pillars.Strategy:          1.6,
		pillars.Foundations:       1.4,
	}, byPillar)
	assert.Equal(t, pillars.Keys[:], pillarsOf(r.SkillsAdded))

	// breakdown is rounded per line and is not reconciled with the total
	assert.InDelta(t, 9.8, sum, 1e-9)
	assert.NotEqual(t, r.Uplift, math.Round(sum*10)/10)
}

func TestExperienced_SomePillarsMissing(t *testing.T) {
	r := Default().Experienced(12, []string{"SEO"}, true)

	assert.Equal(t, 12.0, r.Before)
	assert.Equal(t, 21.7, r.After)
	assert.Equal(t, 9.7, r.Uplift)
	assert.Equal(t, []pillars.Key{pillars.Strategy}, r.DetectedPillars)
	assert.Equal(t,
		[]pillars.Key{pillars.Foundations, pillars.Analytics, pillars.ProjectManagement, pillars.AI},
		pillarsOf(r.SkillsAdded))
	assert.Equal(t, []float64{1.6, 2.7, 2.2, 3.2}, contributions(r.SkillsAdded))
	assert.Equal(t,
		"Salary uplift calculated based on adding missing pillars: foundations & narratives, analytics & data, project & marketing operations, ai & automation for marketing. These skills are in high demand and command premium salaries.",
		r.Explanation)
}

func TestExperienced_AllPillarsPresent(t *testing.T) {
	r := Default().Experienced(10, []string{"storytelling", "seo", "sql", "scrum", "zapier"}, true)

	assert.Equal(t, 10.0, r.Before)
	assert.Equal(t, 11.5, r.After)
	assert.Equal(t, 1.5, r.Uplift)
	assert.Len(t, r.DetectedPillars, 5)
	assert.Equal(t, []float64{0.2, 0.3, 0.3, 0.3, 0.4}, contributions(r.SkillsAdded))
	assert.Equal(t,
		"You already have strong skill coverage. Full Stack Program certification adds 15% premium for verified expertise.",
		r.Explanation)
}

func TestExperienced_NotCompleted(t *testing.T) {
	e := Default()

	r := e.Experienced(12, []string{"SEO"}, false)
	assert.Equal(t, 12.0, r.Before)
	assert.Equal(t, 12.0, r.After)
	assert.Equal(t, 0.0, r.Uplift)
	assert.Empty(t, r.SkillsAdded)
	assert.Equal(t,
		"Current salary reflects your existing skills in strategy & growth execution. Complete Full Stack Program to unlock additional growth.",
		r.Explanation)

	r = e.Experienced(7.25, nil, false)
	assert.Equal(t, 7.3, r.Before)
	assert.Equal(t, 7.3, r.After)
	assert.Equal(t,
		"Current salary baseline. Add skills and complete Full Stack Program to see significant growth potential.",
		r.Explanation)
}

func TestCalculate_Dispatch(t *testing.T) {
	fresher := Calculate(Profile{Segment: SegmentFresher, Skills: []string{"chatgpt"}, ProgramCompleted: true})
	assert.Equal(t, 8.2, fresher.After)

	experienced := Calculate(Profile{Segment: SegmentExperienced, CurrentSalary: 10, ProgramCompleted: true})
	assert.Equal(t, 19.7, experienced.After)

	// salary is ignored for freshers
	withSalary := Calculate(Profile{Segment: SegmentFresher, CurrentSalary: 50})
	assert.Equal(t, 3.0, withSalary.Before)

	for _, seg := range []Segment{"unknown", "", "Fresher"} {
		r := Calculate(Profile{Segment: seg, Skills: []string{}})
		assert.Equal(t, 0.0, r.Before)
		assert.Equal(t, 0.0, r.After)
		assert.Equal(t, 0.0, r.Uplift)
		assert.Empty(t, r.DetectedPillars)
		assert.Equal(t, "Please select your experience level to calculate salary.", r.Explanation)
	}
}

func TestCalculate_DeterministicAcrossGoroutines(t *testing.T) {
	e := Default()
	profile := Profile{Segment: SegmentExperienced, CurrentSalary: 14.5, Skills: []string{"GA4", "gen ai", "Scrum"}, ProgramCompleted: true}
	want := e.Calculate(profile)

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Calculate(profile)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestEngine_Accessors(t *testing.T) {
	e := Default()

	assert.Equal(t, []string{"google analytics", "google tag manager"}, e.ProcessSkills([]string{"GA4", "", "GTM"}))
	assert.Equal(t, []pillars.Key{pillars.Strategy}, e.DetectPillars([]string{"seo"}))
	assert.Equal(t, pillars.Keys[:], e.AllPillarKeys())
	assert.Equal(t, []string{"Analytics & Data"}, e.PillarNames([]pillars.Key{pillars.Analytics}))

	def, ok := e.PillarDefinition(pillars.ProjectManagement)
	require.True(t, ok)
	assert.Equal(t, "Project & Marketing Operations", def.Name)
}

func TestNewEngine_CopiesTables(t *testing.T) {
	cat := catalog.MustLoad()
	e, err := NewEngine(cat)
	require.NoError(t, err)

	cat.Salary.Fresher.Base = 100
	cat.Salary.Fresher.PillarValues[pillars.AI] = 100

	assert.Equal(t, 4.0, e.Fresher([]string{"chatgpt"}, false).Before)
}

func TestNewEngine_InvalidCatalog(t *testing.T) {
	cat := catalog.MustLoad()
	cat.Aliases = append(cat.Aliases, cat.Aliases[0])
	_, err := NewEngine(cat)
	assert.Error(t, err)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 8.2, round1(8.215))
	assert.Equal(t, 2.3, round1(2.25))
	assert.Equal(t, 0.0, round1(0))
	assert.Equal(t, 19.7, round1(19.72))
	assert.Equal(t, 0.8, round1(0.795))
}
