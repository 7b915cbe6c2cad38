package training

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus represents the state of a training run.
type RunStatus string

const (
	StatusRunning RunStatus = "running"
	StatusDone    RunStatus = "done"
	StatusFailed  RunStatus = "failed"
)

// Run is the record kept for a single launch: where the experiment lives,
// what was asked for, and how it ended.
type Run struct {
	ID             string    `json:"id"`
	CheckpointPath string    `json:"checkpoint_path"`
	ForwardedArgs  []string  `json:"forwarded_args"`
	Command        []string  `json:"command"`
	Status         RunStatus `json:"status"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	ExitCode       int       `json:"exit_code"`
	Error          string    `json:"error,omitempty"`
}

// NewRun creates a running record for a launch.
func NewRun(checkpointPath string, forwarded, command []string) *Run {
	return &Run{
		ID:             uuid.NewString(),
		CheckpointPath: checkpointPath,
		ForwardedArgs:  forwarded,
		Command:        command,
		Status:         StatusRunning,
		StartedAt:      time.Now(),
	}
}

// Finish stamps the record with the run's outcome.
func (r *Run) Finish(exitCode int, err error) {
	r.FinishedAt = time.Now()
	r.ExitCode = exitCode
	if err != nil {
		r.Status = StatusFailed
		r.Error = err.Error()
		return
	}
	if exitCode == 0 {
		r.Status = StatusDone
	} else {
		r.Status = StatusFailed
	}
}
