package model

import "time"

// RunStatus represents the current state of an assessment run.
type RunStatus string

const (
	RunStatusQueued       RunStatus = "queued"
	RunStatusScoring      RunStatus = "scoring"
	RunStatusCategorizing RunStatus = "categorizing"
	RunStatusRecommending RunStatus = "recommending"
	RunStatusReporting    RunStatus = "reporting"
	RunStatusComplete     RunStatus = "complete"
	RunStatusFailed       RunStatus = "failed"
)

// AssessmentInput is what the external collaborators place in shared state
// before the engine runs: the validated profile and the frozen holdings list.
type AssessmentInput struct {
	Profile     Profile      `json:"profile"`
	Investments []Investment `json:"investments"`
}

// Run represents a single assessment run.
type Run struct {
	ID        string          `json:"id"`
	Input     AssessmentInput `json:"input"`
	Status    RunStatus       `json:"status"`
	Result    *RunResult      `json:"result,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RunResult holds the final outcome of a run.
type RunResult struct {
	RiskScore    int           `json:"risk_score"`
	RiskCategory Category      `json:"risk_category"`
	TimeHorizon  Horizon       `json:"time_horizon"`
	Phases       []PhaseResult `json:"phases"`
	Report       *Report       `json:"report,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// RunPhase represents an engine stage within a run.
type RunPhase struct {
	ID        string       `json:"id"`
	RunID     string       `json:"run_id"`
	Name      string       `json:"name"`
	Status    PhaseStatus  `json:"status"`
	Result    *PhaseResult `json:"result,omitempty"`
	StartedAt time.Time    `json:"started_at"`
}

// PhaseStatus represents the current state of an engine stage.
type PhaseStatus string

const (
	PhaseStatusRunning  PhaseStatus = "running"
	PhaseStatusComplete PhaseStatus = "complete"
	PhaseStatusFailed   PhaseStatus = "failed"
)

// PhaseResult holds the outcome of an engine stage.
type PhaseResult struct {
	Name     string         `json:"name"`
	Status   PhaseStatus    `json:"status"`
	Duration int64          `json:"duration_ms"`
	Error    string         `json:"error,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
