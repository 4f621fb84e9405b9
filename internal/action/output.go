package action

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Output is one named step output
type Output struct {
	Name  string
	Value any
}

// SetOutput publishes a single step output, see SetOutputs
func (e *Env) SetOutput(name string, value any) error {
	return e.SetOutputs(Output{Name: name, Value: value})
}

// SetOutputs publishes step outputs all at once. Strings are written as-is,
// anything else is JSON encoded. With GITHUB_OUTPUT set the values are
// appended to that file using heredoc delimiters, otherwise legacy
// set-output commands are written to stdout. Every value is encoded before
// anything is written, so a failure publishes none of them.
func (e *Env) SetOutputs(outputs ...Output) error {
	path := e.Getenv("GITHUB_OUTPUT")

	var buf bytes.Buffer
	for _, out := range outputs {
		str, err := toCommandValue(out.Value)
		if err != nil {
			return fmt.Errorf("encode output %s: %w", out.Name, err)
		}

		if path == "" {
			if err := IssueCommand(&buf, "set-output", map[string]string{"name": out.Name}, str); err != nil {
				return err
			}
			continue
		}

		msg, err := keyValueMessage(out.Name, str, "ghadelimiter_"+uuid.NewString())
		if err != nil {
			return err
		}
		buf.WriteString(msg)
	}

	if path == "" {
		if _, err := e.Stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write outputs: %w", err)
		}
		return nil
	}
	return appendFileCommand(path, buf.Bytes())
}

func toCommandValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// keyValueMessage formats one heredoc entry for a file command
func keyValueMessage(name, value, delimiter string) (string, error) {
	if strings.Contains(name, delimiter) {
		return "", fmt.Errorf("output name %q contains the delimiter %q", name, delimiter)
	}
	if strings.Contains(value, delimiter) {
		return "", fmt.Errorf("output %s contains the delimiter %q", name, delimiter)
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter), nil
}

// appendFileCommand appends data to a runner file command in a single write
func appendFileCommand(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}
	return nil
}
