package model

// JobStatus represents the status of a download job
type JobStatus string

const (
	// JobStatusStarting means the downloader process is being launched
	JobStatusStarting JobStatus = "Starting"

	// JobStatusDownloading means the downloader process is running
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusCompleted means the downloader exited with code 0
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the downloader exited with a non-zero code
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job has not reached a terminal state
func (js JobStatus) IsActive() bool {
	return js == JobStatusStarting || js == JobStatusDownloading
}

// IsFinished returns true if the job is in a terminal state (completed or error)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusError
}
