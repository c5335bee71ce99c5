package download

// Package download supervises the external yt-dlp process. At most one job
// runs at a time; its stdout/stderr chunks and its exit status are delivered
// to the caller over a per-job event channel.
