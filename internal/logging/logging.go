// Package logging builds the logrus logger shared by every command
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/wahlandcase/attuned.releaseprs/internal/action"
)

// Formats accepted by New
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatWorkflow = "workflow"
)

// New creates a logger writing to out. The workflow format turns entries
// into GitHub Actions commands.
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	formatter, err := newFormatter(format)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(formatter)
	return logger, nil
}

func newFormatter(format string) (logrus.Formatter, error) {
	switch format {
	case "", FormatText:
		return &logrus.TextFormatter{DisableTimestamp: true}, nil
	case FormatJSON:
		return &logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"}, nil
	case FormatWorkflow:
		return &action.WorkflowFormatter{
			Wrapped: &logrus.TextFormatter{DisableTimestamp: true, DisableQuote: true},
		}, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
