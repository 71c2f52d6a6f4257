package catalog

import (
	"testing"

	"github.com/career-roi/internal/pillars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	require.Len(t, c.Pillars, len(pillars.Keys))
	for i, def := range c.Pillars {
		assert.Equal(t, pillars.Keys[i], def.Key)
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Keywords)
	}

	assert.Equal(t, "ga", c.Aliases[0].Alias)
	assert.Equal(t, "google analytics", c.Aliases[0].Canonical)
	assert.Len(t, c.Aliases, 13)

	f := c.Salary.Fresher
	assert.Equal(t, 3.0, f.Base)
	assert.Equal(t, 1.25, f.MultiplierMin)
	assert.Equal(t, 1.4, f.MultiplierMax)
	assert.Equal(t, map[pillars.Key]float64{
		pillars.Foundations:       0.3,
		pillars.Strategy:          0.6,
		pillars.Analytics:         0.8,
		pillars.ProjectManagement: 0.5,
		pillars.AI:                1.0,
	}, f.PillarValues)

	e := c.Salary.Experienced
	assert.Equal(t, 0.9, e.CompoundFactor)
	assert.Equal(t, 0.15, e.CertificationPremium)
	assert.Equal(t, 0.30, e.PillarUplifts[pillars.AI])
	assert.Equal(t, 0.15, e.PillarUplifts[pillars.Foundations])
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()
	require.NotSame(t, a, b)
	assert.Equal(t, a, b)

	a.Aliases[0].Canonical = "mutated"
	a.Pillars[0].Keywords[0] = "mutated"
	a.Salary.Fresher.PillarValues[pillars.AI] = 100
	a.Salary.Experienced.PillarUplifts[pillars.AI] = 100
	a.Salary.Fresher.Base = 100

	c := Default()
	assert.Equal(t, "google analytics", c.Aliases[0].Canonical)
	assert.NotEqual(t, "mutated", c.Pillars[0].Keywords[0])
	assert.Equal(t, 1.0, c.Salary.Fresher.PillarValues[pillars.AI])
	assert.Equal(t, 0.30, c.Salary.Experienced.PillarUplifts[pillars.AI])
	assert.Equal(t, 3.0, c.Salary.Fresher.Base)
	assert.Equal(t, b, c)
}

func TestClone_Deep(t *testing.T) {
	c := MustLoad()
	cp := c.Clone()
	assert.Equal(t, c, cp)

	cp.Pillars[1].Keywords = append(cp.Pillars[1].Keywords[:0], "only")
	assert.NotEqual(t, "only", c.Pillars[1].Keywords[0])
	require.NoError(t, c.Validate())
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "not yaml", doc: "aliases: [unterminated"},
		{name: "empty", doc: ""},
		{
			name: "missing pillars",
			doc: `
aliases:
  - { alias: "ga", canonical: "google analytics" }
pillars: []
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestValidate_SalaryTables(t *testing.T) {
	c := MustLoad()
	delete(c.Salary.Fresher.PillarValues, pillars.AI)
	assert.Error(t, c.Validate())

	c = MustLoad()
	c.Salary.Experienced.CompoundFactor = 1.5
	assert.Error(t, c.Validate())

	c = MustLoad()
	c.Salary.Fresher.MultiplierMax = 1.0
	assert.Error(t, c.Validate())

	c = MustLoad()
	c.Pillars[0], c.Pillars[4] = c.Pillars[4], c.Pillars[0]
	assert.Error(t, c.Validate())
}
