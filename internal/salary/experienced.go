package salary

import (
	"math"
	"strconv"

	"github.com/career-roi/internal/pillars"
)

const (
	msgExperiencedBaseline = "Current salary baseline. Add skills and complete Full Stack Program to see significant growth potential."
)

// Experienced projects salary for professionals with a current salary.
//
// With the program completed, each missing pillar adds its uplift fraction;
// the summed fraction is discounted once by the compound factor. Breakdown
// lines are discounted and rounded one by one, so their sum may differ from
// Uplift by a few tenths. A profile already covering every pillar gets the
// flat certification premium instead.
func (e *Engine) Experienced(currentSalary float64, rawSkills []string, programCompleted bool) Result {
	// also rejects NaN
	if !(currentSalary > 0) || math.IsInf(currentSalary, 1) {
		return zeroResult(msgEnterSalary)
	}

	detected := e.detect(rawSkills)
	before := currentSalary
	after := currentSalary
	skillsAdded := []SkillContribution{}
	var explanation string

	switch {
	case programCompleted:
		missing := missingPillars(detected)
		if len(missing) > 0 {
			total := 0.0
			for _, k := range missing {
				fraction := e.upliftFraction[k.Index()]
				discounted := float64(fraction * e.compound)
				skillsAdded = append(skillsAdded, e.contribution(k, float64(currentSalary*discounted)))
				total += fraction
			}
			total = float64(total * e.compound)
			after = float64(currentSalary * (1 + total))
			explanation = "Salary uplift calculated based on adding missing pillars: " + e.joinedNames(missing) +
				". These skills are in high demand and command premium salaries."
		} else {
			weight := 0.0
			for i := range pillars.Keys {
				weight += e.upliftFraction[i]
			}
			for i, k := range pillars.Keys {
				share := e.upliftFraction[i] / weight
				skillsAdded = append(skillsAdded, e.contribution(k, float64(currentSalary*e.premium*share)))
			}
			after = float64(currentSalary * (1 + e.premium))
			explanation = "You already have strong skill coverage. Full Stack Program certification adds " +
				strconv.Itoa(int(math.Round(e.premium*100))) + "% premium for verified expertise."
		}
	case len(detected) > 0:
		explanation = "Current salary reflects your existing skills in " + e.joinedNames(detected) +
			". Complete Full Stack Program to unlock additional growth."
	default:
		explanation = msgExperiencedBaseline
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

// missingPillars lists the keys absent from detected, in priority order
func missingPillars(detected []pillars.Key) []pillars.Key {
	var seen [len(pillars.Keys)]bool
	for _, k := range detected {
		seen[k.Index()] = true
	}
	missing := make([]pillars.Key, 0, len(pillars.Keys))
	for i, k := range pillars.Keys {
		if !seen[i] {
			missing = append(missing, k)
		}
	}
	return missing
}
