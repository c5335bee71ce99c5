package download

// Downloader defines the interface for the download service.
type Downloader interface {
	// Start launches the downloader with args. It fails with
	// model.ErrJobAlreadyRunning while another job is active.
	Start(args []string) (*Job, error)

	// Active returns the running job, if any
	Active() (*Job, bool)

	// SetBinary sets the downloader executable name or path
	SetBinary(binary string)

	// Binary returns the configured downloader executable
	Binary() string

	// SetWorkDir sets the directory the downloader runs in
	SetWorkDir(dir string)
}
