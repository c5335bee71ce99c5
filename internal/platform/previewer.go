package platform

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/yt-clipper/internal/model"
)

// Timeout constants
const (
	DefaultPreviewTimeout = 60 * time.Second
)

// DefaultBinary is the downloader used for metadata probes
const DefaultBinary = "yt-dlp"

// Previewer resolves the metadata shown before a download
type Previewer struct {
	mu      sync.RWMutex
	binary  string
	timeout time.Duration

	probe func(ctx context.Context, binary, url string) ([]byte, error)
	list  func(ctx context.Context, playlistID string) ([]*model.PlaylistEntry, error)
}

// NewPreviewer creates a previewer that probes with binary
func NewPreviewer(binary string) *Previewer {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Previewer{
		binary:  binary,
		timeout: DefaultPreviewTimeout,
		probe:   runProbe,
		list:    listPlaylistItems,
	}
}

// SetBinary sets the downloader used for probes
func (p *Previewer) SetBinary(binary string) {
	if binary == "" {
		binary = DefaultBinary
	}
	p.mu.Lock()
	p.binary = binary
	p.mu.Unlock()
}

// SetTimeout sets the timeout for a single preview
func (p *Previewer) SetTimeout(timeout time.Duration) {
	p.mu.Lock()
	p.timeout = timeout
	p.mu.Unlock()
}

// config returns the binary and timeout for one preview
func (p *Previewer) config() (string, time.Duration) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.binary, p.timeout
}

// Preview returns metadata for url. Playlist URLs are listed through the
// ytdlp library; anything else is probed with the downloader executable.
func (p *Previewer) Preview(ctx context.Context, url string) (*model.VideoInfo, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, model.ErrInvalidURL
	}

	binary, timeout := p.config()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	entry := log.WithField("url", url)
	started := time.Now()

	var (
		info *model.VideoInfo
		err  error
	)
	if IsPlaylistURL(url) {
		info, err = p.previewPlaylist(ctx, url)
	} else {
		info, err = p.previewVideo(ctx, binary, url)
	}
	if err != nil {
		entry.WithError(err).Warn("Preview failed")
		return nil, err
	}

	entry.WithFields(log.Fields{
		"title":   info.Title,
		"entries": len(info.Entries),
		"elapsed": time.Since(started).Round(time.Millisecond),
	}).Info("Preview loaded")
	return info, nil
}

func (p *Previewer) previewPlaylist(ctx context.Context, url string) (*model.VideoInfo, error) {
	playlistID, err := ExtractPlaylistID(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidURL, err)
	}

	entries, err := p.list(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	return &model.VideoInfo{
		ID:         playlistID,
		Title:      playlistTitle(entries),
		WebpageURL: url,
		Entries:    entries,
	}, nil
}

func (p *Previewer) previewVideo(ctx context.Context, binary, url string) (*model.VideoInfo, error) {
	data, err := p.probe(ctx, binary, url)
	if err != nil {
		return nil, err
	}
	return parseVideoInfo(data, url)
}
