package download

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/yt-clipper/internal/command"
	"github.com/ytget/yt-clipper/internal/model"
)

const (
	// DefaultBinary is the downloader executable, resolved via PATH
	DefaultBinary = "yt-dlp"

	// ReadBufferSize bounds a single output chunk
	ReadBufferSize = 4096

	// EventBufferSize is the capacity of a job's event channel
	EventBufferSize = 64

	// unknownExitCode is recorded when the process ended without an exit status
	unknownExitCode = -1
)

// CommandFactory creates the command for a downloader invocation
type CommandFactory func(name string, args ...string) *exec.Cmd

// Option configures a Service
type Option func(*Service)

// WithCommandFactory replaces exec.Command as the way processes are created
func WithCommandFactory(f CommandFactory) Option {
	return func(s *Service) {
		s.newCommand = f
	}
}

// Service supervises the downloader process. It owns the single active job
// handle; Start checks and sets it under one lock.
type Service struct {
	mu         sync.Mutex
	active     *Job
	binary     string
	workDir    string
	newCommand CommandFactory
}

// NewService creates a new download service running binary in workDir.
// An empty binary selects DefaultBinary.
func NewService(binary, workDir string, opts ...Option) *Service {
	if binary == "" {
		binary = DefaultBinary
	}
	s := &Service{
		binary:     binary,
		workDir:    workDir,
		newCommand: exec.Command,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetBinary sets the downloader executable
func (s *Service) SetBinary(binary string) {
	if binary == "" {
		binary = DefaultBinary
	}
	s.mu.Lock()
	s.binary = binary
	s.mu.Unlock()
}

// Binary returns the downloader executable
func (s *Service) Binary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.binary
}

// SetWorkDir sets the directory new jobs run in; files are written there
func (s *Service) SetWorkDir(dir string) {
	s.mu.Lock()
	s.workDir = dir
	s.mu.Unlock()
}

// Active returns the running job, if any
func (s *Service) Active() (*Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.active != nil
}

// Start launches the downloader with args without waiting for it.
// A second call while a job is active fails with model.ErrJobAlreadyRunning
// and leaves the running job untouched.
func (s *Service) Start(args []string) (*Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, model.ErrJobAlreadyRunning
	}

	url := ""
	if len(args) > 0 {
		url = args[len(args)-1]
	}
	job := newJob(url, args, EventBufferSize)

	cmd := s.newCommand(s.binary, args...)
	if s.workDir != "" {
		cmd.Dir = s.workDir
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		log.WithError(err).WithField("binary", s.binary).Error("Failed to start downloader")
		return nil, fmt.Errorf("failed to start %s: %w", s.binary, err)
	}

	job.markRunning()
	s.active = job

	log.WithFields(log.Fields{
		"job": job.ID(),
		"url": url,
		"dir": s.workDir,
	}).Infof("Downloader started: %s", command.CommandLine(s.binary, args))

	go s.supervise(job, cmd, stdout, stderr)

	return job, nil
}

// supervise pumps both streams until EOF, waits for the process, releases
// the active handle and delivers the single finished event.
func (s *Service) supervise(job *Job, cmd *exec.Cmd, stdout, stderr io.Reader) {
	var wg sync.WaitGroup
	wg.Add(2)
	go pump(job, stdout, EventOutput, &wg)
	go pump(job, stderr, EventError, &wg)
	wg.Wait()

	exitCode := exitCodeOf(cmd.Wait())
	job.finish(exitCode)

	s.mu.Lock()
	if s.active == job {
		s.active = nil
	}
	s.mu.Unlock()

	entry := log.WithFields(log.Fields{"job": job.ID(), "exit_code": exitCode})
	if exitCode == 0 {
		entry.Info("Downloader finished")
	} else {
		entry.Warn("Downloader failed")
	}

	job.events <- Event{Kind: EventFinished, ExitCode: exitCode}
	close(job.events)
	close(job.done)
}

// pump forwards every chunk read from r as an event of the given kind
func pump(job *Job, r io.Reader, kind EventKind, wg *sync.WaitGroup) {
	defer wg.Done()

	buf := make([]byte, ReadBufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			job.emit(kind, string(buf[:n]))
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.WithError(err).WithField("stream", kind.String()).Debug("Downloader stream closed")
			}
			return
		}
	}
}

// exitCodeOf extracts the process exit code from the error returned by Wait
func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code != 0 {
			return code
		}
	}
	return unknownExitCode
}
