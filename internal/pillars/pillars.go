package pillars

// Key identifies one of the five career pillars
type Key string

const (
	Foundations       Key = "foundations"
	Strategy          Key = "strategy"
	Analytics         Key = "analytics"
	ProjectManagement Key = "project-management"
	AI                Key = "ai"
)

// Keys is the fixed priority order used for classification and enumeration.
var Keys = [...]Key{Foundations, Strategy, Analytics, ProjectManagement, AI}

// Valid reports whether k is one of the known pillar keys
func (k Key) Valid() bool {
	switch k {
	case Foundations, Strategy, Analytics, ProjectManagement, AI:
		return true
	}
	return false
}

// Index returns the priority position of k, or -1 for an unknown key
func (k Key) Index() int {
	for i, key := range Keys {
		if key == k {
			return i
		}
	}
	return -1
}

// Definition describes a pillar: display name and the keywords that select it
type Definition struct {
	Key      Key      `json:"key" yaml:"key"`
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// matches tests bidirectional containment against every keyword
func (d *Definition) matches(skill string) bool {
	for _, keyword := range d.Keywords {
		if containsEither(skill, keyword) {
			return true
		}
	}
	return false
}
