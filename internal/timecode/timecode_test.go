package timecode

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"seconds only", "5", "00:00:05"},
		{"minutes and seconds", "3:40", "00:03:40"},
		{"full", "1:23:45", "01:23:45"},
		{"already padded", "00:10:00", "00:10:00"},
		{"zero", "0", "00:00:00"},
		{"surrounding spaces", " 2:05 ", "00:02:05"},
		{"wide segment kept", "100:5", "00:100:05"},
		{"seconds above 59 kept", "75", "00:00:75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tc.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidFormat},
		{"blank", "   ", ErrInvalidFormat},
		{"four segments", "1:2:3:4", ErrInvalidFormat},
		{"letters", "ab", ErrNotANumber},
		{"mixed", "1:x0", ErrNotANumber},
		{"empty segment", "1::2", ErrNotANumber},
		{"negative", "-5", ErrNotANumber},
		{"decimal", "1.5", ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestParse_AlwaysThreePaddedSegments(t *testing.T) {
	inputs := []string{"7", "12", "3:4", "12:34", "1:2:3", "10:20:30"}
	for _, in := range inputs {
		tc, err := Parse(in)
		require.NoError(t, err, in)
		for _, seg := range []string{tc.Hours, tc.Minutes, tc.Seconds} {
			assert.Len(t, seg, 2, "segment %q of %q", seg, in)
		}
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("3:40")
	require.NoError(t, err)
	assert.Equal(t, "00:03:40", got)

	_, err = Normalize("a:b")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestToSeconds(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00:05", 5},
		{"00:03:40", 220},
		{"01:23:45", 5025},
		{"00:10:00", 600},
		{"00:00:75", 75},
		{"00:100:00", 6000},
		{"42", 42},
		{"1:00", 60},
	}

	for _, tt := range tests {
		got, err := ToSeconds(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, "ToSeconds(%q)", tt.input)
	}

	_, err := ToSeconds("00:aa:00")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestToSeconds_Overflow(t *testing.T) {
	if strconv.IntSize != 64 {
		t.Skip("limits below assume a 64-bit int")
	}

	inputs := []string{
		"9999999999999999:00:00",
		"00:999999999999999999:00",
		"2562047788015215:30:08",
	}
	for _, in := range inputs {
		_, err := ToSeconds(in)
		assert.ErrorIs(t, err, ErrOutOfRange, in)
	}

	// largest hour count that still fits
	secs, err := ToSeconds("2562047788015215:30:07")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, secs)
}

func TestTimecode_TotalSeconds(t *testing.T) {
	tc, err := Parse("1:23:45")
	require.NoError(t, err)

	secs, err := tc.TotalSeconds()
	require.NoError(t, err)
	assert.Equal(t, 1*3600+23*60+45, secs)
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatSeconds(0))
	assert.Equal(t, "00:00:00", FormatSeconds(-3))
	assert.Equal(t, "00:03:40", FormatSeconds(220))
	assert.Equal(t, "01:23:45", FormatSeconds(5025))
	assert.Equal(t, "100:00:00", FormatSeconds(360000))
}

func TestToSeconds_RoundTrip(t *testing.T) {
	inputs := []string{"5", "3:40", "1:23:45", "0:99", "2:75:80", "99:59:59"}
	for _, in := range inputs {
		norm, err := Normalize(in)
		require.NoError(t, err)

		secs, err := ToSeconds(norm)
		require.NoError(t, err)

		again, err := ToSeconds(FormatSeconds(secs))
		require.NoError(t, err)
		assert.Equal(t, secs, again, "round trip of %q", in)
	}
}
