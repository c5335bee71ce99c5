package download

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-clipper/internal/model"
)

// JobIDPrefix prefixes every generated job id
const JobIDPrefix = "job-"

// EventKind tells which stream or lifecycle change produced an Event
type EventKind int

const (
	EventOutput EventKind = iota
	EventError
	EventFinished
)

// String returns the event kind name
func (k EventKind) String() string {
	switch k {
	case EventOutput:
		return "output"
	case EventError:
		return "error"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is a single notification about a running job.
type Event struct {
	Kind     EventKind
	Text     string // display text for output and error events
	ExitCode int    // exit code for the finished event
}

// Succeeded reports whether a finished event carries a zero exit code
func (e Event) Succeeded() bool {
	return e.Kind == EventFinished && e.ExitCode == 0
}

// Job is the handle of one downloader invocation
type Job struct {
	mu     sync.RWMutex
	state  model.DownloadJob
	events chan Event
	done   chan struct{}
}

func newJob(url string, args []string, buffer int) *Job {
	argsCopy := make([]string, len(args))
	copy(argsCopy, args)

	return &Job{
		state: model.DownloadJob{
			ID:     generateJobID(),
			URL:    url,
			Args:   argsCopy,
			Status: model.JobStatusStarting,
		},
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
}

// ID returns the job id
func (j *Job) ID() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.state.ID
}

// Events returns the job's event channel. It receives output and error chunks
// as they arrive, then exactly one EventFinished, and is then closed.
// Callers must drain it.
func (j *Job) Events() <-chan Event {
	return j.events
}

// Done is closed once the process has exited and the finished event was sent
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Snapshot returns a copy of the job state
func (j *Job) Snapshot() model.DownloadJob {
	j.mu.RLock()
	defer j.mu.RUnlock()

	s := j.state
	s.Args = append([]string(nil), j.state.Args...)
	return s
}

// Outcome returns the current outcome of the job
func (j *Job) Outcome() model.Outcome {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.state.Outcome()
}

func (j *Job) markRunning() {
	j.mu.Lock()
	j.state.Status = model.JobStatusDownloading
	j.state.StartedAt = time.Now()
	j.mu.Unlock()
}

// emit records chunk as the latest status text and forwards it as an event
func (j *Job) emit(kind EventKind, chunk string) {
	text := statusText(kind, chunk)

	j.mu.Lock()
	j.state.StatusText = text
	j.mu.Unlock()

	j.events <- Event{Kind: kind, Text: text}
}

// finish moves the job to its terminal state
func (j *Job) finish(exitCode int) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.state.ExitCode = exitCode
	j.state.FinishedAt = time.Now()
	if exitCode == 0 {
		j.state.Status = model.JobStatusCompleted
	} else {
		j.state.Status = model.JobStatusError
	}
}

// generateJobID generates a unique job id using UUID v7, which is time ordered
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
