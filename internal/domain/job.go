package domain

import "time"

// JobStatus enumerates generation job lifecycle states.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Terminal reports whether the status is a final state.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// GenerationJob tracks one asynchronous request to the Job Service. A new
// submission supersedes any job still in flight; there is never more than one
// live job per session.
type GenerationJob struct {
	ID           string
	UserEmail    string
	Status       JobStatus
	IdeaText     string
	ResultJSON   []byte
	ErrorMessage string
	SubmittedAt  time.Time
	UpdatedAt    time.Time
}

// StageStatus enumerates the presentational states of one agent stage.
type StageStatus string

const (
	StagePending   StageStatus = "pending"
	StageRunning   StageStatus = "running"
	StageCompleted StageStatus = "completed"
	StageError     StageStatus = "error"
)

// AgentStage is one of the six fixed phases shown to the user while a job is
// in flight. Stage progress is a UI heuristic driven by elapsed wall-clock
// time, not by the backend's real internal state.
type AgentStage struct {
	Name        string
	Description string
	Status      StageStatus
	Progress    int
}
