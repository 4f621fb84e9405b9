package models

import (
	"fmt"
	"strings"
)

// RepoRef identifies a GitHub repository
type RepoRef struct {
	// Owner is the user or organisation (e.g., "wahlandcase")
	Owner string
	// Name is the repository name (e.g., "attuned-web")
	Name string
}

// ParseRepoRef parses "owner/name" as found in GITHUB_REPOSITORY
func ParseRepoRef(s string) (RepoRef, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoRef{}, fmt.Errorf("invalid repository %q: expected owner/name", s)
	}
	return RepoRef{Owner: owner, Name: name}, nil
}

// IsZero returns true if no repository was set
func (r RepoRef) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}
