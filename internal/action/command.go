// Package action is the GitHub Actions side of relprs: inputs, outputs,
// workflow commands and the runner's environment.
package action

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// IssueCommand writes a workflow command such as "::debug::message" to w
func IssueCommand(w io.Writer, name string, props map[string]string, message string) error {
	var sb strings.Builder
	sb.WriteString("::")
	sb.WriteString(name)

	if len(props) > 0 {
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString(" ")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(k)
			sb.WriteString("=")
			sb.WriteString(escapeProperty(props[k]))
		}
	}

	sb.WriteString("::")
	sb.WriteString(escapeData(message))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("write workflow command %s: %w", name, err)
	}
	return nil
}

func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	return strings.ReplaceAll(s, ",", "%2C")
}
