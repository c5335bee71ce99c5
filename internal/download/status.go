package download

import "strings"

const (
	// ErrorPrefix marks status text that came from the downloader's stderr
	ErrorPrefix = "Error: "

	carriageReturn = "\r"
)

// CollapseStatus returns the part of chunk after its last carriage return,
// or the whole chunk when it contains none. Downloaders redraw progress lines
// with "\r", so the last segment is the current status.
func CollapseStatus(chunk string) string {
	if i := strings.LastIndex(chunk, carriageReturn); i >= 0 {
		return chunk[i+len(carriageReturn):]
	}
	return chunk
}

// statusText renders a chunk of the given kind for display
func statusText(kind EventKind, chunk string) string {
	text := CollapseStatus(chunk)
	if kind == EventError {
		return ErrorPrefix + text
	}
	return text
}
