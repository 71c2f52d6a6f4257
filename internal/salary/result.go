package salary

import (
	"errors"
	"fmt"

	"github.com/career-roi/internal/pillars"
)

// Segment selects the projection algorithm
type Segment string

const (
	SegmentFresher     Segment = "fresher"
	SegmentExperienced Segment = "experienced"
)

// Profile is the input of a single calculation. Background, YearsOfExperience
// and CurrentRole are carried for the caller but do not affect the figures.
type Profile struct {
	Segment           Segment  `json:"segment"`
	Skills            []string `json:"skills"`
	Background        string   `json:"background,omitempty"`
	YearsOfExperience string   `json:"yearsOfExperience,omitempty"`
	CurrentRole       string   `json:"currentRole,omitempty"`
	CurrentSalary     float64  `json:"currentSalary,omitempty"`
	ProgramCompleted  bool     `json:"programCompleted"`
}

// MaxCurrentSalary is the largest current salary (LPA) accepted from callers
const MaxCurrentSalary = 100000

// ErrSalaryOutOfRange is returned by Profile.Validate
var ErrSalaryOutOfRange = errors.New("current salary out of range")

// Validate bounds CurrentSalary to [0, MaxCurrentSalary]. The engine itself
// accepts any value; callers validate so projections stay finite.
func (p Profile) Validate() error {
	if !(p.CurrentSalary >= 0 && p.CurrentSalary <= MaxCurrentSalary) {
		return fmt.Errorf("%w: %v not in [0, %d]", ErrSalaryOutOfRange, p.CurrentSalary, MaxCurrentSalary)
	}
	return nil
}

// SkillContribution is one line of the uplift breakdown (LPA)
type SkillContribution struct {
	Pillar       pillars.Key `json:"pillar"`
	Name         string      `json:"name"`
	Contribution float64     `json:"contribution"`
}

// Result is the projection outcome. Money values are LPA rounded to one
// decimal; SkillsAdded items are rounded on their own and need not add up
// to Uplift.
type Result struct {
	Before          float64             `json:"before"`
	After           float64             `json:"after"`
	Uplift          float64             `json:"uplift"`
	DetectedPillars []pillars.Key       `json:"detectedPillars"`
	SkillsAdded     []SkillContribution `json:"skillsAdded"`
	Explanation     string              `json:"explanation"`
}

const (
	msgEnterSalary   = "Please enter your current salary to calculate growth potential."
	msgSelectSegment = "Please select your experience level to calculate salary."
)

func zeroResult(explanation string) Result {
	return Result{
		DetectedPillars: []pillars.Key{},
		SkillsAdded:     []SkillContribution{},
		Explanation:     explanation,
	}
}
