package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Repository is the subset of git the release pipeline needs
type Repository interface {
	// ListTags returns every tag name in listing order
	ListTags(ctx context.Context) ([]string, error)
	// RevList returns the commit hashes selected by a range spec, newest first
	RevList(ctx context.Context, spec string) ([]string, error)
}

// Backend names accepted by Open
const (
	BackendCLI    = "cli"
	BackendNative = "native"
)

// Open returns a Repository for path using the named backend ("" means cli)
func Open(backend, path string) (Repository, error) {
	switch backend {
	case "", BackendCLI:
		return CLI{RepoPath: path}, nil
	case BackendNative:
		repo, err := git.PlainOpen(path)
		if err != nil {
			return nil, &GitError{Command: "open", Output: fmt.Sprintf("%s: %v", path, err)}
		}
		return Native{Repo: repo}, nil
	default:
		return nil, fmt.Errorf("unknown git backend %q (want %q or %q)", backend, BackendCLI, BackendNative)
	}
}

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// FindRepoRoot walks up from dir to the first directory holding a repository
func FindRepoRoot(dir string) (string, error) {
	path, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if IsGitRepo(path) {
			return path, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", fmt.Errorf("%s: %w", dir, os.ErrNotExist)
		}
		path = parent
	}
}

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

// splitLines splits command output on newlines, trimming and dropping blanks.
// The result is never nil.
func splitLines(out string) []string {
	lines := []string{}
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
