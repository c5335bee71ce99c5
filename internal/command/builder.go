package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/timecode"
)

// yt-dlp option names and fixed values
const (
	FlagFormat           = "-f"
	FlagOutput           = "-o"
	FlagDownloadSections = "--download-sections"
	FlagExtractorArgs    = "--extractor-args"

	// OutputTemplate names files after the source title and detected extension
	OutputTemplate = "%(title)s.%(ext)s"

	// ClientExtractorArgs works around extraction quirks for partial downloads
	ClientExtractorArgs = "youtube:player_client=android,web"

	FormatSeparator  = "/"
	SectionPrefix    = "*"
	SectionSeparator = "-"
)

// Section is a validated partial-download range.
type Section struct {
	Start     timecode.Timecode
	End       timecode.Timecode
	StartSecs int
	EndSecs   int
}

// Arg returns the --download-sections value, *HH:MM:SS-HH:MM:SS
func (s Section) Arg() string {
	return SectionPrefix + s.Start.String() + SectionSeparator + s.End.String()
}

// Duration returns the section length in seconds
func (s Section) Duration() int {
	return s.EndSecs - s.StartSecs
}

// ParseSection parses both bounds of r and checks that the end is after the start.
func ParseSection(r model.TimeRange) (Section, error) {
	start, err := timecode.Parse(r.Start)
	if err != nil {
		return Section{}, fmt.Errorf("%w: start %q: %w", model.ErrInvalidTimeFormat, r.Start, err)
	}
	end, err := timecode.Parse(r.End)
	if err != nil {
		return Section{}, fmt.Errorf("%w: end %q: %w", model.ErrInvalidTimeFormat, r.End, err)
	}

	startSecs, err := start.TotalSeconds()
	if err != nil {
		return Section{}, fmt.Errorf("%w: %w", model.ErrInvalidTimeFormat, err)
	}
	endSecs, err := end.TotalSeconds()
	if err != nil {
		return Section{}, fmt.Errorf("%w: %w", model.ErrInvalidTimeFormat, err)
	}

	if endSecs <= startSecs {
		return Section{}, fmt.Errorf("%w: %s-%s", model.ErrInvertedOrEmptyRange, start, end)
	}

	return Section{Start: start, End: end, StartSecs: startSecs, EndSecs: endSecs}, nil
}

// FormatString joins the preference clauses of formats with "/", in order,
// skipping duplicates.
func FormatString(formats []model.Format) string {
	selected := model.FormatSelection(formats)
	clauses := make([]string, 0, len(selected))
	for _, f := range selected {
		if c := f.Clause(); c != "" {
			clauses = append(clauses, c)
		}
	}
	return strings.Join(clauses, FormatSeparator)
}

// Build returns the yt-dlp argument list for req:
//
//	-f <formats> -o %(title)s.%(ext)s [--download-sections *S-E --extractor-args ...] <url>
func Build(req model.DownloadRequest) ([]string, error) {
	formatArg := FormatString(req.Formats)
	if formatArg == "" {
		return nil, model.ErrNoFormatSelected
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil, model.ErrInvalidURL
	}

	args := []string{FlagFormat, formatArg, FlagOutput, OutputTemplate}

	if req.Range != nil {
		section, err := ParseSection(*req.Range)
		if err != nil {
			return nil, err
		}
		args = append(args,
			FlagDownloadSections, section.Arg(),
			FlagExtractorArgs, ClientExtractorArgs,
		)
	}

	return append(args, url), nil
}

// CommandLine renders exe and args as a single shell-like line for logs.
func CommandLine(exe string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(exe))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if strings.ContainsAny(arg, " \t\n\"'()[]*%$&|;<>") {
		return strconv.Quote(arg)
	}
	return arg
}
