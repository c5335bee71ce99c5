package model

import "testing"

func TestVideoInfo_DurationString(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
	}

	for _, test := range tests {
		info := &VideoInfo{Duration: test.seconds}
		if got := info.DurationString(); got != test.expected {
			t.Errorf("DurationString() with Duration=%d = %s, expected %s", test.seconds, got, test.expected)
		}
	}
}

func TestVideoInfo_Playlist(t *testing.T) {
	info := &VideoInfo{Title: "single"}
	if info.IsPlaylist() {
		t.Error("Expected video without entries to not be a playlist")
	}

	info.Entries = []*PlaylistEntry{
		{ID: "a", Duration: 60},
		{ID: "b", Duration: 0},
		{ID: "c", Duration: 30},
	}
	if !info.IsPlaylist() {
		t.Error("Expected video with entries to be a playlist")
	}
	if got := info.TotalDuration(); got != 90 {
		t.Errorf("TotalDuration() = %d, expected 90", got)
	}
	if got := info.Entries[1].DurationString(); got != "—" {
		t.Errorf("Entry DurationString() = %s, expected —", got)
	}
}
