package model

import (
	"fmt"
)

// PlaylistEntry represents a single video listed in a playlist preview
type PlaylistEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"` // seconds, 0 if unknown
	URL      string `json:"url"`
}

// VideoInfo is the metadata shown in the preview card for a URL
type VideoInfo struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Uploader   string           `json:"uploader,omitempty"`
	Duration   int              `json:"duration"` // seconds, 0 if unknown
	WebpageURL string           `json:"webpage_url"`
	Entries    []*PlaylistEntry `json:"entries,omitempty"`
}

// IsPlaylist reports whether the preview describes a playlist
func (v *VideoInfo) IsPlaylist() bool {
	return len(v.Entries) > 0
}

// DurationString returns the duration as HH:MM:SS or MM:SS, "—" if unknown
func (v *VideoInfo) DurationString() string {
	return formatDuration(v.Duration)
}

// DurationString returns the entry duration as HH:MM:SS or MM:SS, "—" if unknown
func (e *PlaylistEntry) DurationString() string {
	return formatDuration(e.Duration)
}

// TotalDuration sums the known durations of all playlist entries
func (v *VideoInfo) TotalDuration() int {
	total := 0
	for _, e := range v.Entries {
		total += e.Duration
	}
	return total
}

func formatDuration(seconds int) string {
	if seconds <= 0 {
		return "—"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
