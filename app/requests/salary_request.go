package requests

import "github.com/career-roi/internal/salary"

// CalculateSalaryRequest body of POST /v1/salary/calculate. Segment is not
// validated here; unknown segments get an explanatory zero result.
type CalculateSalaryRequest struct {
	Segment           string   `json:"segment"`
	Skills            []string `json:"skills" binding:"max=100,dive,max=200"`
	Background        string   `json:"background,omitempty"`
	YearsOfExperience string   `json:"yearsOfExperience,omitempty"`
	CurrentRole       string   `json:"currentRole,omitempty"`
	CurrentSalary     float64  `json:"currentSalary" binding:"gte=0,lte=100000"` // LPA, up to salary.MaxCurrentSalary
	ProgramCompleted  bool     `json:"programCompleted"`
}

// Profile converts the request into engine input
func (r CalculateSalaryRequest) Profile() salary.Profile {
	return salary.Profile{
		Segment:           salary.Segment(r.Segment),
		Skills:            r.Skills,
		Background:        r.Background,
		YearsOfExperience: r.YearsOfExperience,
		CurrentRole:       r.CurrentRole,
		CurrentSalary:     r.CurrentSalary,
		ProgramCompleted:  r.ProgramCompleted,
	}
}

// SkillsRequest body of the skill processing, detection and suggestion routes
type SkillsRequest struct {
	Skills []string `json:"skills" binding:"required,max=100,dive,max=200"`
}

// BatchCalculateRequest body of POST /v1/salary/batch
type BatchCalculateRequest struct {
	Profiles []CalculateSalaryRequest `json:"profiles" binding:"required,min=1,max=1000,dive"`
}

// ProfileList converts every entry into engine input
func (r BatchCalculateRequest) ProfileList() []salary.Profile {
	out := make([]salary.Profile, 0, len(r.Profiles))
	for _, p := range r.Profiles {
		out = append(out, p.Profile())
	}
	return out
}
