package responses

import (
	"github.com/career-roi/internal/pillars"
	"github.com/career-roi/internal/salary"
	"github.com/career-roi/internal/suggest"
)

// CalculateSalaryResponse response of POST /v1/salary/calculate
type CalculateSalaryResponse struct {
	Result           salary.Result `json:"result"`
	ProcessingTimeMs int64         `json:"processing_time_ms"`
	RequestID        string        `json:"request_id,omitempty"`
}

// BatchCalculateResponse response of POST /v1/salary/batch
type BatchCalculateResponse struct {
	Results          []salary.Result `json:"results"`
	Total            int             `json:"total"`
	ProcessingTimeMs int64           `json:"processing_time_ms"`
	RequestID        string          `json:"request_id,omitempty"`
}

// ProcessSkillsResponse response of POST /v1/skills/process
type ProcessSkillsResponse struct {
	Skills []string `json:"skills"`
}

// DetectPillarsResponse response of POST /v1/pillars/detect
type DetectPillarsResponse struct {
	ProcessedSkills []string      `json:"processed_skills"`
	DetectedPillars []pillars.Key `json:"detected_pillars"`
	PillarNames     []string      `json:"pillar_names"`
}

// PillarsResponse response of GET /v1/pillars
type PillarsResponse struct {
	Pillars []pillars.Definition `json:"pillars"`
}

// SuggestSkillsResponse response of POST /v1/skills/suggest
type SuggestSkillsResponse struct {
	Unmatched []suggest.SkillSuggestions `json:"unmatched"`
}

// ErrorResponse error envelope
type ErrorResponse struct {
	Error     string      `json:"error"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp string      `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
}

// SuccessResponse generic success envelope
type SuccessResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// HealthCheckResponse response of the health routes
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
