package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ytget/yt-clipper/internal/model"
)

// Probe flags passed to yt-dlp
var probeArgs = []string{"--dump-single-json", "--skip-download", "--flat-playlist", "--no-warnings"}

// probeOutput is the subset of yt-dlp's info JSON shown in the preview
type probeOutput struct {
	Type       string       `json:"_type"`
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Uploader   string       `json:"uploader"`
	Channel    string       `json:"channel"`
	Duration   float64      `json:"duration"`
	WebpageURL string       `json:"webpage_url"`
	Entries    []probeEntry `json:"entries"`
}

type probeEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
	URL      string  `json:"url"`
}

// runProbe runs the downloader in metadata-only mode and returns its JSON
func runProbe(ctx context.Context, binary, url string) ([]byte, error) {
	args := append(append([]string(nil), probeArgs...), url)
	out, err := exec.CommandContext(ctx, binary, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("metadata probe failed: %s: %w", strings.TrimSpace(string(exitErr.Stderr)), err)
		}
		return nil, fmt.Errorf("metadata probe failed: %w", err)
	}
	return out, nil
}

// parseVideoInfo converts yt-dlp's info JSON into preview metadata
func parseVideoInfo(data []byte, url string) (*model.VideoInfo, error) {
	var raw probeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	if raw.ID == "" && raw.Title == "" {
		return nil, fmt.Errorf("metadata has neither id nor title")
	}

	info := &model.VideoInfo{
		ID:         raw.ID,
		Title:      raw.Title,
		Uploader:   raw.Uploader,
		Duration:   int(raw.Duration),
		WebpageURL: raw.WebpageURL,
	}
	if info.Uploader == "" {
		info.Uploader = raw.Channel
	}
	if info.WebpageURL == "" {
		info.WebpageURL = url
	}

	for _, e := range raw.Entries {
		entryURL := e.URL
		if entryURL == "" && e.ID != "" {
			entryURL = fmt.Sprintf(YouTubeVideoURLTemplate, e.ID)
		}
		info.Entries = append(info.Entries, &model.PlaylistEntry{
			ID:       e.ID,
			Title:    e.Title,
			Duration: int(e.Duration),
			URL:      entryURL,
		})
	}
	return info, nil
}
