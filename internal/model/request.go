package model

// TimeRange holds the raw start and end text entered by the user for a
// partial download. Parsing and ordering checks happen in the command builder.
type TimeRange struct {
	Start string
	End   string
}

// DownloadRequest is the input consumed by the command builder.
type DownloadRequest struct {
	URL     string
	Formats []Format
	Range   *TimeRange // nil for a full download
}

// IsPartial reports whether only a section of the media was requested.
func (r DownloadRequest) IsPartial() bool {
	return r.Range != nil
}
