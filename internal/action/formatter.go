package action

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// WorkflowFormatter renders log entries as workflow commands so the runner
// shows debug lines only when step debugging is on, and turns warnings and
// errors into annotations. Info entries go through Wrapped.
type WorkflowFormatter struct {
	Wrapped logrus.Formatter
}

// Format implements logrus.Formatter
func (f *WorkflowFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var command string
	switch entry.Level {
	case logrus.TraceLevel, logrus.DebugLevel:
		command = "debug"
	case logrus.WarnLevel:
		command = "warning"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		command = "error"
	default:
		if f.Wrapped != nil {
			return f.Wrapped.Format(entry)
		}
		return []byte(renderMessage(entry) + "\n"), nil
	}

	var buf bytes.Buffer
	if err := IssueCommand(&buf, command, nil, renderMessage(entry)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderMessage appends the entry's fields as sorted key=value pairs
func renderMessage(entry *logrus.Entry) string {
	if len(entry.Data) == 0 {
		return entry.Message
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := []string{entry.Message}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, entry.Data[k]))
	}
	return strings.Join(parts, " ")
}
