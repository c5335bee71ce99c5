package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-clipper/internal/model"
)

func TestFormRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		partial   bool
		start     string
		end       string
		selected  []string
		want      model.DownloadRequest
		wantError bool
	}{
		{
			name:     "full video keeps no range",
			url:      " https://youtu.be/abc\n",
			start:    "00:00:10",
			end:      "00:00:20",
			selected: []string{"MP4"},
			want:     model.DownloadRequest{URL: "https://youtu.be/abc", Formats: []model.Format{model.FormatMP4}},
		},
		{
			name:     "partial with selection order",
			url:      "https://youtu.be/abc",
			partial:  true,
			start:    "3:40",
			end:      "4:00",
			selected: []string{"WEBM", "MP4"},
			want: model.DownloadRequest{
				URL:     "https://youtu.be/abc",
				Formats: []model.Format{model.FormatWEBM, model.FormatMP4},
				Range:   &model.TimeRange{Start: "3:40", End: "4:00"},
			},
		},
		{
			name: "nothing selected",
			url:  "https://youtu.be/abc",
			want: model.DownloadRequest{URL: "https://youtu.be/abc", Formats: []model.Format{}},
		},
		{
			name:      "unknown label",
			url:       "https://youtu.be/abc",
			selected:  []string{"MKV"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formRequest(tt.url, tt.partial, tt.start, tt.end, tt.selected)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.URL, got.URL)
			assert.Equal(t, tt.want.Formats, got.Formats)
			assert.Equal(t, tt.want.Range, got.Range)
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"https://www.youtube.com/watch?v=abc", false},
		{"http://youtu.be/abc", false},
		{"ftp://example.com/file", true},
		{"youtube.com/watch?v=abc", true},
		{"https://", true},
	}

	for _, tt := range tests {
		err := validateURL(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, model.ErrInvalidURL) {
			t.Errorf("validateURL(%q) error should wrap ErrInvalidURL, got %v", tt.input, err)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		name string
		err  error
		key  string
	}{
		{name: "empty url", err: model.ErrInvalidURL, key: KeyPleaseEnterURL},
		{name: "malformed url", err: validateURL("ftp://x"), key: KeyInvalidURL},
		{name: "no format", err: model.ErrNoFormatSelected, key: KeySelectFormat},
		{name: "bad time", err: fmt.Errorf("%w: start %q", model.ErrInvalidTimeFormat, "x"), key: KeyInvalidTime},
		{name: "inverted range", err: model.ErrInvertedOrEmptyRange, key: KeyRangeOrder},
		{name: "busy", err: model.ErrJobAlreadyRunning, key: KeyAlreadyRunning},
		{name: "process failed", err: &model.ProcessFailedError{ExitCode: 2}, key: KeyDownloadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, l.GetText(tt.key), errorMessage(l, tt.err))
		})
	}

	msg := errorMessage(l, errors.New(`exec: "yt-dlp": executable file not found in $PATH`))
	assert.True(t, strings.HasPrefix(msg, l.GetText(KeyLaunchFailed)+": "))
}
