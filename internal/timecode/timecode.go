package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Separator between hour, minute and second segments
const Separator = ":"

// Segment limits
const (
	MaxSegments  = 3
	SegmentWidth = 2
	SegmentBase  = 60
	ZeroSegment  = "00"
)

var (
	// ErrInvalidFormat is returned for an empty input or more than three segments
	ErrInvalidFormat = errors.New("invalid time format")

	// ErrNotANumber is returned when a segment is not a run of decimal digits
	ErrNotANumber = errors.New("time segment is not a number")

	// ErrOutOfRange is returned when the total number of seconds overflows an int
	ErrOutOfRange = errors.New("time value out of range")
)

// Timecode is a parsed timestamp. Each field holds the zero-padded segment text.
type Timecode struct {
	Hours   string
	Minutes string
	Seconds string
}

// Parse splits text on ":" into seconds, minutes:seconds or
// hours:minutes:seconds and zero-pads every segment to two digits.
func Parse(text string) (Timecode, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Timecode{}, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}

	parts := strings.Split(text, Separator)
	if len(parts) > MaxSegments {
		return Timecode{}, fmt.Errorf("%w: %q has %d segments", ErrInvalidFormat, text, len(parts))
	}

	for i, p := range parts {
		p = strings.TrimSpace(p)
		if !isDigits(p) {
			return Timecode{}, fmt.Errorf("%w: %q", ErrNotANumber, p)
		}
		parts[i] = pad(p)
	}

	// Fill the missing higher-order segments
	for len(parts) < MaxSegments {
		parts = append([]string{ZeroSegment}, parts...)
	}

	return Timecode{Hours: parts[0], Minutes: parts[1], Seconds: parts[2]}, nil
}

// Normalize parses text and returns its HH:MM:SS form.
func Normalize(text string) (string, error) {
	tc, err := Parse(text)
	if err != nil {
		return "", err
	}
	return tc.String(), nil
}

// String returns the timecode as HH:MM:SS
func (tc Timecode) String() string {
	return tc.Hours + Separator + tc.Minutes + Separator + tc.Seconds
}

// TotalSeconds returns hours*3600 + minutes*60 + seconds.
func (tc Timecode) TotalSeconds() (int, error) {
	return ToSeconds(tc.String())
}

// ToSeconds treats the colon-separated segments of text, read from the right,
// as base-60 digits. Segments of 60 or more are accepted at face value.
func ToSeconds(text string) (int, error) {
	parts := strings.Split(strings.TrimSpace(text), Separator)

	total := 0
	place := 1
	for i := len(parts) - 1; i >= 0; i-- {
		p := strings.TrimSpace(parts[i])
		if !isDigits(p) {
			return 0, fmt.Errorf("%w: %q", ErrNotANumber, p)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotANumber, p)
		}
		if n > (math.MaxInt-total)/place {
			return 0, fmt.Errorf("%w: %q", ErrOutOfRange, text)
		}
		total += n * place

		if i > 0 {
			if place > math.MaxInt/SegmentBase {
				return 0, fmt.Errorf("%w: %q", ErrOutOfRange, text)
			}
			place *= SegmentBase
		}
	}

	return total, nil
}

// FormatSeconds renders a non-negative number of seconds as HH:MM:SS.
// Hours are not capped at two digits.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

func pad(segment string) string {
	if len(segment) >= SegmentWidth {
		return segment
	}
	return strings.Repeat("0", SegmentWidth-len(segment)) + segment
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
