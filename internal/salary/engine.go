// Package salary projects before/after salaries from a skill list.
//
// An Engine is immutable once built; every method is a pure function of its
// arguments and the catalog tables, so one Engine may serve any number of
// goroutines.
package salary

import (
	"fmt"
	"strings"
	"sync"

	"github.com/career-roi/internal/catalog"
	"github.com/career-roi/internal/normalizer"
	"github.com/career-roi/internal/pillars"
)

// Engine ties preprocessing, classification and both projectors together
type Engine struct {
	resolver     *normalizer.Resolver
	preprocessor *normalizer.Preprocessor
	classifier   *pillars.Classifier

	fresherBase   float64
	pillarValue   [len(pillars.Keys)]float64
	multiplierMin float64
	multiplierMax float64

	upliftFraction [len(pillars.Keys)]float64
	compound       float64
	premium        float64
}

// Option configures an Engine
type Option func(*Engine)

// WithSkillCache memoizes per-skill preprocessing
func WithSkillCache(cache normalizer.Cache) Option {
	return func(e *Engine) {
		e.preprocessor = e.preprocessor.WithCache(cache)
	}
}

// NewEngine builds an engine over the tables of cat. The tables are copied,
// later changes to cat are not observed.
func NewEngine(cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	resolver, err := normalizer.NewResolver(cat.Aliases)
	if err != nil {
		return nil, fmt.Errorf("build alias resolver: %w", err)
	}
	classifier, err := pillars.NewClassifier(cat.Pillars)
	if err != nil {
		return nil, fmt.Errorf("build pillar classifier: %w", err)
	}

	e := &Engine{
		resolver:      resolver,
		preprocessor:  normalizer.NewPreprocessor(resolver, nil),
		classifier:    classifier,
		fresherBase:   cat.Salary.Fresher.Base,
		multiplierMin: cat.Salary.Fresher.MultiplierMin,
		multiplierMax: cat.Salary.Fresher.MultiplierMax,
		compound:      cat.Salary.Experienced.CompoundFactor,
		premium:       cat.Salary.Experienced.CertificationPremium,
	}
	for i, k := range pillars.Keys {
		e.pillarValue[i] = cat.Salary.Fresher.PillarValues[k]
		e.upliftFraction[i] = cat.Salary.Experienced.PillarUplifts[k]
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns an engine over the embedded catalog
func Default() *Engine {
	defaultOnce.Do(func() {
		e, err := NewEngine(catalog.Default())
		if err != nil {
			panic(err)
		}
		defaultEngine = e
	})
	return defaultEngine
}

// Calculate is Default().Calculate
func Calculate(p Profile) Result {
	return Default().Calculate(p)
}

// Calculate routes the profile to the projector for its segment. Unknown
// segments yield a zero result asking for a segment.
func (e *Engine) Calculate(p Profile) Result {
	switch p.Segment {
	case SegmentFresher:
		return e.Fresher(p.Skills, p.ProgramCompleted)
	case SegmentExperienced:
		return e.Experienced(p.CurrentSalary, p.Skills, p.ProgramCompleted)
	}
	return zeroResult(msgSelectSegment)
}

// ProcessSkills normalizes and alias-resolves raw skills
func (e *Engine) ProcessSkills(raw []string) []string {
	return e.preprocessor.Process(raw)
}

// DetectPillars classifies already processed skills
func (e *Engine) DetectPillars(processed []string) []pillars.Key {
	return e.classifier.Detect(processed)
}

// AllPillarKeys returns every pillar key in priority order
func (e *Engine) AllPillarKeys() []pillars.Key {
	return e.classifier.AllKeys()
}

// PillarNames maps keys to display names, skipping unknown keys
func (e *Engine) PillarNames(keys []pillars.Key) []string {
	return e.classifier.Names(keys)
}

// PillarDefinition looks up one pillar
func (e *Engine) PillarDefinition(key pillars.Key) (pillars.Definition, bool) {
	return e.classifier.Definition(key)
}

// Classifier exposes the pillar classifier
func (e *Engine) Classifier() *pillars.Classifier { return e.classifier }

// Resolver exposes the alias resolver
func (e *Engine) Resolver() *normalizer.Resolver { return e.resolver }

func (e *Engine) detect(rawSkills []string) []pillars.Key {
	return e.classifier.Detect(e.preprocessor.Process(rawSkills))
}

func (e *Engine) joinedNames(keys []pillars.Key) string {
	return strings.ToLower(strings.Join(e.classifier.Names(keys), ", "))
}

func (e *Engine) contribution(k pillars.Key, amount float64) SkillContribution {
	def, _ := e.classifier.Definition(k)
	return SkillContribution{Pillar: k, Name: def.Name, Contribution: round1(amount)}
}
