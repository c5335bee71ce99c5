// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup configures logrus level, format and output. Invalid values fall back
// to info and text; the returned error describes what was ignored.
func Setup(level, format string, out io.Writer) error {
	var errs []string

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level %q", level))
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		log.SetFormatter(&log.JSONFormatter{})
	case FormatText, "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		errs = append(errs, fmt.Sprintf("invalid log format %q", format))
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if out != nil {
		log.SetOutput(out)
	}

	if len(errs) > 0 {
		return fmt.Errorf("logging: %s", strings.Join(errs, ", "))
	}
	log.Debugf("Logging configured: Level=%s, Format=%s", log.GetLevel(), format)
	return nil
}
