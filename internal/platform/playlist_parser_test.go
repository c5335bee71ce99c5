package platform

import (
	"strings"
	"testing"

	"github.com/ytget/yt-clipper/internal/model"
)

func TestIsPlaylistURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/playlist?list=PL123", true},
		{"https://www.youtube.com/watch?v=abc&list=PL123&index=2", true},
		{"https://www.youtube.com/watch?v=abc", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPlaylistURL(tt.url); got != tt.want {
			t.Errorf("IsPlaylistURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "playlist page", url: "https://www.youtube.com/playlist?list=PLabc", want: "PLabc"},
		{name: "watch with radio", url: "https://www.youtube.com/watch?v=x&list=RDxyz&start_radio=1", want: "RDxyz"},
		{name: "no list parameter", url: "https://www.youtube.com/watch?v=x", wantErr: true},
		{name: "empty id", url: "https://www.youtube.com/watch?v=x&list=&index=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPlaylistID(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractPlaylistID(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractPlaylistID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestPlaylistTitle(t *testing.T) {
	long := strings.Repeat("a", MaxTitleLength+5)

	tests := []struct {
		name    string
		entries []*model.PlaylistEntry
		want    string
	}{
		{name: "empty", want: DefaultPlaylistTitle},
		{
			name:    "common prefix",
			entries: []*model.PlaylistEntry{{Title: "Go Conference 2024 - Day 1"}, {Title: "Go Conference 2024 - Day 2"}},
			want:    "Go Conference 2024 - Day" + PlaylistSuffix,
		},
		{
			name:    "short prefix uses first title",
			entries: []*model.PlaylistEntry{{Title: "Intro"}, {Title: "Outro"}},
			want:    "Intro" + PlaylistSuffix,
		},
		{
			name:    "long title truncated",
			entries: []*model.PlaylistEntry{{Title: long}},
			want:    long[:MaxTitleLength] + TitleTruncateSuffix + PlaylistSuffix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := playlistTitle(tt.entries); got != tt.want {
				t.Errorf("playlistTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindCommonPrefix(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   string
	}{
		{"abcdef", "abcxyz", "abc"},
		{"abc", "abcdef", "abc"},
		{"", "abc", ""},
		{"xyz", "abc", ""},
	}

	for _, tt := range tests {
		if got := findCommonPrefix(tt.s1, tt.s2); got != tt.want {
			t.Errorf("findCommonPrefix(%q, %q) = %q, want %q", tt.s1, tt.s2, got, tt.want)
		}
	}
}
