// Package catalog loads the fixed skill and salary tables from embedded YAML.
// A Catalog is built once and never mutated afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"sync"

	"github.com/career-roi/internal/normalizer"
	"github.com/career-roi/internal/pillars"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var catalogYAML []byte

// FresherTables holds the new-entrant projection constants (LPA)
type FresherTables struct {
	Base          float64                 `yaml:"base"`
	PillarValues  map[pillars.Key]float64 `yaml:"pillar_values"`
	MultiplierMin float64                 `yaml:"multiplier_min"`
	MultiplierMax float64                 `yaml:"multiplier_max"`
}

// ExperiencedTables holds the experienced projection constants (fractions)
type ExperiencedTables struct {
	PillarUplifts        map[pillars.Key]float64 `yaml:"pillar_uplifts"`
	CompoundFactor       float64                 `yaml:"compound_factor"`
	CertificationPremium float64                 `yaml:"certification_premium"`
}

// SalaryTables groups both projection tables
type SalaryTables struct {
	Fresher     FresherTables     `yaml:"fresher"`
	Experienced ExperiencedTables `yaml:"experienced"`
}

// Catalog is the parsed rules file
type Catalog struct {
	Aliases []normalizer.Alias   `yaml:"aliases"`
	Pillars []pillars.Definition `yaml:"pillars"`
	Salary  SalaryTables         `yaml:"salary"`
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// Load parses the embedded catalog
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// MustLoad is like Load but panics on a corrupt embedded catalog
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns a copy of the process-wide catalog, parsing it on first
// use. Callers may modify the copy without affecting later calls.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustLoad()
	})
	return defaultCatalog.Clone()
}

// Clone returns a deep copy of c
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Aliases: append([]normalizer.Alias(nil), c.Aliases...),
		Pillars: make([]pillars.Definition, len(c.Pillars)),
		Salary: SalaryTables{
			Fresher:     c.Salary.Fresher,
			Experienced: c.Salary.Experienced,
		},
	}
	for i, def := range c.Pillars {
		def.Keywords = append([]string(nil), def.Keywords...)
		out.Pillars[i] = def
	}
	out.Salary.Fresher.PillarValues = cloneValues(c.Salary.Fresher.PillarValues)
	out.Salary.Experienced.PillarUplifts = cloneValues(c.Salary.Experienced.PillarUplifts)
	return out
}

func cloneValues(m map[pillars.Key]float64) map[pillars.Key]float64 {
	if m == nil {
		return nil
	}
	out := make(map[pillars.Key]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Validate checks that every pillar key has a table entry and that all
// constants are usable.
func (c *Catalog) Validate() error {
	if len(c.Aliases) == 0 {
		return fmt.Errorf("alias table is empty")
	}
	if len(c.Pillars) != len(pillars.Keys) {
		return fmt.Errorf("expected %d pillars, got %d", len(pillars.Keys), len(c.Pillars))
	}
	for i, def := range c.Pillars {
		if def.Key != pillars.Keys[i] {
			return fmt.Errorf("pillar %d: expected %q, got %q", i, pillars.Keys[i], def.Key)
		}
	}

	f := c.Salary.Fresher
	if !positive(f.Base) {
		return fmt.Errorf("fresher base must be positive")
	}
	if !positive(f.MultiplierMin) || f.MultiplierMax < f.MultiplierMin {
		return fmt.Errorf("fresher multiplier range [%v, %v] is invalid", f.MultiplierMin, f.MultiplierMax)
	}
	if err := checkPerPillar("fresher pillar_values", f.PillarValues); err != nil {
		return err
	}

	e := c.Salary.Experienced
	if err := checkPerPillar("experienced pillar_uplifts", e.PillarUplifts); err != nil {
		return err
	}
	if !positive(e.CompoundFactor) || e.CompoundFactor > 1 {
		return fmt.Errorf("compound factor %v out of (0, 1]", e.CompoundFactor)
	}
	if !positive(e.CertificationPremium) {
		return fmt.Errorf("certification premium must be positive")
	}
	return nil
}

func checkPerPillar(name string, table map[pillars.Key]float64) error {
	if len(table) != len(pillars.Keys) {
		return fmt.Errorf("%s: expected %d entries, got %d", name, len(pillars.Keys), len(table))
	}
	for _, k := range pillars.Keys {
		v, ok := table[k]
		if !ok {
			return fmt.Errorf("%s: missing %q", name, k)
		}
		if !positive(v) {
			return fmt.Errorf("%s: %q must be positive", name, k)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
