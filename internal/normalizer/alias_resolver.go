package normalizer

import (
	"fmt"
	"strings"
)

// Alias maps an abbreviation or variant to its canonical skill phrase
type Alias struct {
	Alias     string `json:"alias" yaml:"alias"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

// Resolver resolves normalized skills to canonical phrases. The alias table
// order is significant: the containment scan returns the first hit.
type Resolver struct {
	aliases []Alias
	exact   map[string]string
}

// NewResolver builds a resolver over a copy of aliases
func NewResolver(aliases []Alias) (*Resolver, error) {
	r := &Resolver{
		aliases: make([]Alias, 0, len(aliases)),
		exact:   make(map[string]string, len(aliases)),
	}
	for _, a := range aliases {
		if a.Alias == "" || a.Canonical == "" {
			return nil, fmt.Errorf("alias entry %q -> %q: empty field", a.Alias, a.Canonical)
		}
		if Normalize(a.Alias) != a.Alias {
			return nil, fmt.Errorf("alias %q is not in normalized form", a.Alias)
		}
		if _, dup := r.exact[a.Alias]; dup {
			return nil, fmt.Errorf("duplicate alias %q", a.Alias)
		}
		r.exact[a.Alias] = a.Canonical
		r.aliases = append(r.aliases, a)
	}
	return r, nil
}

// Resolve returns the canonical phrase for a normalized skill: exact alias
// first, then the first alias that contains or is contained by the skill,
// otherwise the skill unchanged.
func (r *Resolver) Resolve(normalized string) string {
	if normalized == "" {
		return ""
	}
	if canonical, ok := r.exact[normalized]; ok {
		return canonical
	}
	for _, a := range r.aliases {
		if strings.Contains(normalized, a.Alias) || strings.Contains(a.Alias, normalized) {
			return a.Canonical
		}
	}
	return normalized
}

// Aliases returns a copy of the alias table in lookup order
func (r *Resolver) Aliases() []Alias {
	return append([]Alias(nil), r.aliases...)
}
