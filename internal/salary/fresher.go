package salary

import "github.com/career-roi/internal/pillars"

const (
	msgFresherFullStack = "Salary calculated with all five pillars and market-readiness multiplier, reflecting full-stack marketing engineer capabilities."
	msgFresherBaseline  = "Base salary for entry-level position. Complete Full Stack Program to unlock growth potential."
)

// Fresher projects salary for new entrants and career switchers.
//
// before = base + value of each detected pillar. When the program is
// completed all five pillars count and the total is scaled by the midpoint
// of the market-readiness multiplier range.
func (e *Engine) Fresher(rawSkills []string, programCompleted bool) Result {
	detected := e.detect(rawSkills)

	contributions := 0.0
	for _, k := range detected {
		contributions += e.pillarValue[k.Index()]
	}
	before := e.fresherBase + contributions

	after := before
	skillsAdded := []SkillContribution{}
	var explanation string

	if programCompleted {
		fullStack := 0.0
		for i := range pillars.Keys {
			fullStack += e.pillarValue[i]
		}
		fullStackBase := e.fresherBase + fullStack

		multiplier := (e.multiplierMin + e.multiplierMax) / 2
		after = float64(fullStackBase * multiplier)

		for i, k := range pillars.Keys {
			skillsAdded = append(skillsAdded, e.contribution(k, float64(e.pillarValue[i]*multiplier)))
		}
		explanation = msgFresherFullStack
	} else if len(detected) > 0 {
		explanation = "Salary calculated based on skill coverage across " + e.joinedNames(detected) +
			", reflecting current market readiness."
	} else {
		explanation = msgFresherBaseline
	}

	return Result{
		Before:          round1(before),
		After:           round1(after),
		Uplift:          round1(after - before),
		DetectedPillars: detected,
		SkillsAdded:     skillsAdded,
		Explanation:     explanation,
	}
}
