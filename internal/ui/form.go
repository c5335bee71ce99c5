package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ytget/yt-clipper/internal/model"
)

// Supported URL schemes
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// formRequest converts the raw form values into a download request.
// Validation is left to the command builder so the form and the CLI report
// the same errors in the same order.
func formRequest(rawURL string, partial bool, start, end string, selected []string) (model.DownloadRequest, error) {
	formats, err := model.ParseFormats(selected)
	if err != nil {
		return model.DownloadRequest{}, err
	}

	req := model.DownloadRequest{
		URL:     cleanURL(rawURL),
		Formats: model.FormatSelection(formats),
	}
	if partial {
		req.Range = &model.TimeRange{Start: start, End: end}
	}
	return req, nil
}

// cleanURL removes characters that might cause display issues
func cleanURL(raw string) string {
	clean := strings.ReplaceAll(raw, "\n", "")
	clean = strings.ReplaceAll(clean, "\r", "")
	clean = strings.ReplaceAll(clean, "\t", " ")
	return strings.TrimSpace(clean)
}

// validateURL checks that input is an http(s) URL. Empty input is allowed so
// the entry is not marked invalid before the user types.
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrInvalidURL, err)
	}

	if parsedURL.Scheme != SchemeHTTP && parsedURL.Scheme != SchemeHTTPS {
		return fmt.Errorf("%w: URL must start with http:// or https://", model.ErrInvalidURL)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%w: URL has no host", model.ErrInvalidURL)
	}

	return nil
}

// errorMessage maps an error to the localized text shown in a dialog
func errorMessage(l *Localization, err error) string {
	var processErr *model.ProcessFailedError

	switch {
	case errors.As(err, &processErr):
		return l.GetText(KeyDownloadFailed)
	case errors.Is(err, model.ErrJobAlreadyRunning):
		return l.GetText(KeyAlreadyRunning)
	case errors.Is(err, model.ErrNoFormatSelected):
		return l.GetText(KeySelectFormat)
	case errors.Is(err, model.ErrInvertedOrEmptyRange):
		return l.GetText(KeyRangeOrder)
	case errors.Is(err, model.ErrInvalidTimeFormat):
		return l.GetText(KeyInvalidTime)
	case err == model.ErrInvalidURL:
		return l.GetText(KeyPleaseEnterURL)
	case errors.Is(err, model.ErrInvalidURL):
		return l.GetText(KeyInvalidURL)
	default:
		return fmt.Sprintf("%s: %v", l.GetText(KeyLaunchFailed), err)
	}
}
