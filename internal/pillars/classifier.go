package pillars

import (
	"fmt"
	"strings"
)

// Classifier maps processed skills to pillars. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	defs [len(Keys)]Definition
}

// NewClassifier builds a classifier from one definition per key, given in
// priority order.
func NewClassifier(defs []Definition) (*Classifier, error) {
	if len(defs) != len(Keys) {
		return nil, fmt.Errorf("expected %d pillar definitions, got %d", len(Keys), len(defs))
	}

	c := &Classifier{}
	for i, def := range defs {
		if def.Key != Keys[i] {
			return nil, fmt.Errorf("pillar %d: expected key %q, got %q", i, Keys[i], def.Key)
		}
		if strings.TrimSpace(def.Name) == "" {
			return nil, fmt.Errorf("pillar %q: empty name", def.Key)
		}
		if len(def.Keywords) == 0 {
			return nil, fmt.Errorf("pillar %q: no keywords", def.Key)
		}
		keywords := make([]string, 0, len(def.Keywords))
		for _, kw := range def.Keywords {
			if kw == "" {
				return nil, fmt.Errorf("pillar %q: empty keyword", def.Key)
			}
			keywords = append(keywords, kw)
		}
		c.defs[i] = Definition{Key: def.Key, Name: def.Name, Keywords: keywords}
	}
	return c, nil
}

// Detect returns the set of pillars covered by skills, in detection order.
// Each skill selects at most one pillar: the first one in priority order,
// not yet detected, whose keywords contain it or are contained by it.
func (c *Classifier) Detect(skills []string) []Key {
	detected := make([]Key, 0, len(Keys))
	var seen [len(Keys)]bool

	for _, raw := range skills {
		skill := strings.ToLower(strings.TrimSpace(raw))
		if skill == "" {
			continue
		}
		for i := range c.defs {
			if seen[i] {
				continue
			}
			if c.defs[i].matches(skill) {
				seen[i] = true
				detected = append(detected, c.defs[i].Key)
				break
			}
		}
		if len(detected) == len(Keys) {
			break
		}
	}
	return detected
}

// AllKeys returns every pillar key in priority order
func (c *Classifier) AllKeys() []Key {
	keys := make([]Key, len(Keys))
	copy(keys, Keys[:])
	return keys
}

// Names maps keys to display names, skipping unknown keys
func (c *Classifier) Names(keys []Key) []string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if def, ok := c.Definition(k); ok {
			names = append(names, def.Name)
		}
	}
	return names
}

// Definition returns a copy of the definition for key
func (c *Classifier) Definition(key Key) (Definition, bool) {
	i := key.Index()
	if i < 0 {
		return Definition{}, false
	}
	def := c.defs[i]
	def.Keywords = append([]string(nil), def.Keywords...)
	return def, true
}

// Definitions returns copies of all definitions in priority order
func (c *Classifier) Definitions() []Definition {
	out := make([]Definition, 0, len(Keys))
	for _, k := range Keys {
		def, _ := c.Definition(k)
		out = append(out, def)
	}
	return out
}

// PillarOf returns the pillar a single processed skill would select when
// nothing has been detected yet.
func (c *Classifier) PillarOf(skill string) (Key, bool) {
	detected := c.Detect([]string{skill})
	if len(detected) == 0 {
		return "", false
	}
	return detected[0], true
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
