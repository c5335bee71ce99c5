package model

import (
	"time"
)

// Outcome is the terminal result of a job as seen by the user.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSuccess
	OutcomeFailed
)

// String returns a lowercase name for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

// DownloadJob represents one invocation of the downloader tool
type DownloadJob struct {
	ID         string
	URL        string
	Args       []string  // full argument list passed to the downloader
	Status     JobStatus // current lifecycle state
	StatusText string    // latest collapsed output or error text
	ExitCode   int       // valid once Status is finished
	StartedAt  time.Time // when the process was launched
	FinishedAt time.Time // when the process exited
}

// Outcome derives the user-facing outcome from the job status.
func (j *DownloadJob) Outcome() Outcome {
	switch j.Status {
	case JobStatusCompleted:
		return OutcomeSuccess
	case JobStatusError:
		return OutcomeFailed
	default:
		return OutcomePending
	}
}

// Err returns a *ProcessFailedError for failed jobs and nil otherwise.
func (j *DownloadJob) Err() error {
	if j.Outcome() != OutcomeFailed {
		return nil
	}
	return &ProcessFailedError{ExitCode: j.ExitCode}
}

// Elapsed returns the run time of the job, up to now if it is still running.
func (j *DownloadJob) Elapsed() time.Duration {
	if j.StartedAt.IsZero() {
		return 0
	}
	if j.FinishedAt.IsZero() {
		return time.Since(j.StartedAt)
	}
	return j.FinishedAt.Sub(j.StartedAt)
}
