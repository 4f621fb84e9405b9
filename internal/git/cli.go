package git

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// CLI runs the git binary found on PATH
type CLI struct {
	RepoPath string
}

// ListTags runs `git tag`, which lists tags ordered by refname
func (c CLI) ListTags(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "tag")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// RevList runs `git rev-list <spec>`
func (c CLI) RevList(ctx context.Context, spec string) ([]string, error) {
	if spec == "" || strings.HasPrefix(spec, "-") {
		return nil, &GitError{Command: "rev-list", Output: "invalid revision range " + strings.TrimSpace(spec)}
	}
	// "--" keeps a file named like the tag from making the revision ambiguous
	out, err := c.run(ctx, "rev-list", spec, "--")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func (c CLI) run(ctx context.Context, args ...string) (string, error) {
	if c.RepoPath != "" {
		args = append([]string{"-C", c.RepoPath}, args...)
	}
	cmd := exec.CommandContext(ctx, "git", args...)

	output, err := cmd.Output()
	if err != nil {
		command := strings.Join(args, " ")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
				return "", &GitError{Command: command, Output: stderr}
			}
		}
		return "", &GitError{Command: command, Output: err.Error()}
	}

	return string(output), nil
}
