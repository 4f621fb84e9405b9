package git

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// OriginRepository reads owner/name from the origin remote's first URL
func OriginRepository(repoPath string) (models.RepoRef, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return models.RepoRef{}, err
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return models.RepoRef{}, fmt.Errorf("read origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return models.RepoRef{}, fmt.Errorf("origin remote has no URL")
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts owner/name from https, ssh or scp-style remotes:
//
//	https://github.com/owner/name.git
//	ssh://git@github.com/owner/name.git
//	git@github.com:owner/name.git
func ParseRemoteURL(url string) (models.RepoRef, error) {
	path := strings.TrimSpace(url)

	if i := strings.Index(path, "://"); i >= 0 {
		path = path[i+3:]
		// Drop host
		slash := strings.Index(path, "/")
		if slash < 0 {
			return models.RepoRef{}, fmt.Errorf("remote URL %q has no path", url)
		}
		path = path[slash+1:]
	} else if _, rest, ok := strings.Cut(path, ":"); ok {
		path = rest
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	ref, err := models.ParseRepoRef(path)
	if err != nil {
		return models.RepoRef{}, fmt.Errorf("remote URL %q: %w", url, err)
	}
	return ref, nil
}
