package model

import (
	"errors"
	"fmt"
)

// Errors surfaced to the user at the point of the triggering action.
var (
	// ErrInvalidURL indicates an empty URL
	ErrInvalidURL = errors.New("url is empty")

	// ErrNoFormatSelected indicates that no output container was chosen
	ErrNoFormatSelected = errors.New("no format selected")

	// ErrInvalidTimeFormat indicates a time range bound that could not be parsed
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvertedOrEmptyRange indicates a time range whose end is not after its start
	ErrInvertedOrEmptyRange = errors.New("end time must be after start time")

	// ErrJobAlreadyRunning indicates a start request while another job is active
	ErrJobAlreadyRunning = errors.New("a download is already in progress")
)

// ProcessFailedError reports a downloader run that exited with a non-zero code.
type ProcessFailedError struct {
	ExitCode int
}

func (e *ProcessFailedError) Error() string {
	return fmt.Sprintf("downloader exited with code %d", e.ExitCode)
}
