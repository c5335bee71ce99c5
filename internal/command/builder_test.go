package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/timecode"
)

const testURL = "https://example.com/v"

func TestBuild_FullMP4(t *testing.T) {
	args, err := Build(model.DownloadRequest{
		URL:     testURL,
		Formats: []model.Format{model.FormatMP4},
	})
	require.NoError(t, err)

	expected := []string{
		"-f", model.ClauseMP4,
		"-o", "%(title)s.%(ext)s",
		testURL,
	}
	assert.Equal(t, expected, args)

	joined := strings.Join(args, " ")
	assert.Equal(t, 1, strings.Count(joined, model.ClauseMP4), "MP4 clause should appear exactly once")
	assert.True(t, strings.HasSuffix(joined, `-o %(title)s.%(ext)s `+testURL))
}

func TestBuild_BothFormatsInSelectionOrder(t *testing.T) {
	tests := []struct {
		name     string
		formats  []model.Format
		expected string
	}{
		{
			name:     "mp4 first",
			formats:  []model.Format{model.FormatMP4, model.FormatWEBM},
			expected: model.ClauseMP4 + "/" + model.ClauseWEBM,
		},
		{
			name:     "webm first",
			formats:  []model.Format{model.FormatWEBM, model.FormatMP4},
			expected: model.ClauseWEBM + "/" + model.ClauseMP4,
		},
		{
			name:     "duplicates collapsed",
			formats:  []model.Format{model.FormatWEBM, model.FormatWEBM},
			expected: model.ClauseWEBM,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := Build(model.DownloadRequest{URL: testURL, Formats: tt.formats})
			require.NoError(t, err)
			assert.Equal(t, "-f", args[0])
			assert.Equal(t, tt.expected, args[1])
		})
	}
}

func TestBuild_NoFormatSelected(t *testing.T) {
	requests := []model.DownloadRequest{
		{URL: testURL},
		{URL: ""},
		{URL: testURL, Range: &model.TimeRange{Start: "10:00", End: "5:00"}},
		{URL: testURL, Formats: []model.Format{model.Format("avi")}},
	}

	for _, req := range requests {
		_, err := Build(req)
		assert.ErrorIs(t, err, model.ErrNoFormatSelected)
	}
}

func TestBuild_EmptyURL(t *testing.T) {
	for _, url := range []string{"", "   "} {
		_, err := Build(model.DownloadRequest{URL: url, Formats: []model.Format{model.FormatMP4}})
		assert.ErrorIs(t, err, model.ErrInvalidURL)
	}
}

func TestBuild_TrimsURL(t *testing.T) {
	args, err := Build(model.DownloadRequest{URL: "  " + testURL + "\t", Formats: []model.Format{model.FormatMP4}})
	require.NoError(t, err)
	assert.Equal(t, testURL, args[len(args)-1])
}

func TestBuild_PartialRange(t *testing.T) {
	args, err := Build(model.DownloadRequest{
		URL:     testURL,
		Formats: []model.Format{model.FormatWEBM},
		Range:   &model.TimeRange{Start: "1:30", End: "1:02:03"},
	})
	require.NoError(t, err)

	expected := []string{
		"-f", model.ClauseWEBM,
		"-o", OutputTemplate,
		"--download-sections", "*00:01:30-01:02:03",
		"--extractor-args", "youtube:player_client=android,web",
		testURL,
	}
	assert.Equal(t, expected, args)
}

func TestBuild_InvertedOrEmptyRange(t *testing.T) {
	ranges := []model.TimeRange{
		{Start: "00:10:00", End: "00:05:00"},
		{Start: "5", End: "5"},
		{Start: "0:60", End: "1:00"},
	}

	for _, r := range ranges {
		r := r
		_, err := Build(model.DownloadRequest{URL: testURL, Formats: []model.Format{model.FormatMP4}, Range: &r})
		assert.ErrorIs(t, err, model.ErrInvertedOrEmptyRange, "range %+v", r)
	}
}

func TestBuild_InvalidTimeFormat(t *testing.T) {
	ranges := []model.TimeRange{
		{Start: "abc", End: "1:00"},
		{Start: "0", End: "1:2:3:4"},
		{Start: "", End: "1:00"},
	}

	for _, r := range ranges {
		r := r
		_, err := Build(model.DownloadRequest{URL: testURL, Formats: []model.Format{model.FormatMP4}, Range: &r})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidTimeFormat, "range %+v", r)
	}

	_, err := ParseSection(model.TimeRange{Start: "x", End: "1"})
	assert.True(t, errors.Is(err, timecode.ErrNotANumber), "parser cause should be preserved")
}

func TestBuild_HugeEndIsNotInverted(t *testing.T) {
	r := model.TimeRange{Start: "0", End: "99999999999999999999:00:00"}
	_, err := Build(model.DownloadRequest{URL: testURL, Formats: []model.Format{model.FormatMP4}, Range: &r})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidTimeFormat)
	assert.NotErrorIs(t, err, model.ErrInvertedOrEmptyRange)

	r = model.TimeRange{Start: "0", End: "9999999999999999:00:00"}
	_, err = Build(model.DownloadRequest{URL: testURL, Formats: []model.Format{model.FormatMP4}, Range: &r})
	assert.NotErrorIs(t, err, model.ErrInvertedOrEmptyRange)
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection(model.TimeRange{Start: "3:40", End: "1:00:00"})
	require.NoError(t, err)

	assert.Equal(t, 220, s.StartSecs)
	assert.Equal(t, 3600, s.EndSecs)
	assert.Equal(t, 3380, s.Duration())
	assert.Equal(t, "*00:03:40-01:00:00", s.Arg())
}

func TestBuild_Deterministic(t *testing.T) {
	req := model.DownloadRequest{
		URL:     testURL,
		Formats: []model.Format{model.FormatMP4, model.FormatWEBM},
		Range:   &model.TimeRange{Start: "0", End: "30"},
	}
	first, err := Build(req)
	require.NoError(t, err)
	second, err := Build(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCommandLine(t *testing.T) {
	line := CommandLine("yt-dlp", []string{"-f", "mp4", "-o", OutputTemplate, "", testURL})
	assert.Equal(t, `yt-dlp -f mp4 -o "%(title)s.%(ext)s" "" https://example.com/v`, line)
}
