package model

import (
	"fmt"
	"strings"
)

// Format is an output container the downloader is asked to produce.
type Format string

const (
	FormatMP4  Format = "mp4"
	FormatWEBM Format = "webm"
)

// Preference clauses passed to yt-dlp's -f option, one per container.
const (
	ClauseMP4  = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/mp4"
	ClauseWEBM = "bestvideo[ext=webm]+bestaudio[ext=webm]/best[ext=webm]/webm"
)

// AllFormats lists supported formats in declaration order.
var AllFormats = []Format{FormatMP4, FormatWEBM}

// Clause returns the downloader format-preference expression for f.
func (f Format) Clause() string {
	switch f {
	case FormatMP4:
		return ClauseMP4
	case FormatWEBM:
		return ClauseWEBM
	default:
		return ""
	}
}

// Label returns the upper-case name shown in the UI.
func (f Format) Label() string {
	return strings.ToUpper(string(f))
}

// ParseFormat converts a case-insensitive name ("mp4", "WEBM") into a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f.Clause() == "" {
		return "", fmt.Errorf("unsupported format: %q", name)
	}
	return f, nil
}

// ParseFormats parses a list of names, keeping their order.
func ParseFormats(names []string) ([]Format, error) {
	formats := make([]Format, 0, len(names))
	for _, name := range names {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// FormatSelection removes duplicates from formats while keeping the first
// occurrence of each, so the result is the preference order.
func FormatSelection(formats []Format) []Format {
	seen := make(map[Format]struct{}, len(formats))
	out := make([]Format, 0, len(formats))
	for _, f := range formats {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
