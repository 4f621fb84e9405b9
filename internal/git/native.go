package git

import (
	"context"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Native reads the repository in-process with go-git
type Native struct {
	Repo *git.Repository
}

// ListTags returns tag names sorted by refname, matching `git tag`
func (n Native) ListTags(ctx context.Context) ([]string, error) {
	iter, err := n.Repo.Tags()
	if err != nil {
		return nil, &GitError{Command: "tag", Output: err.Error()}
	}

	tags := []string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, &GitError{Command: "tag", Output: err.Error()}
	}

	sort.Strings(tags)
	return tags, nil
}

// RevList supports "a...b" (symmetric difference), "a..b" and a single ref.
// Commits are ordered by committer time, newest first.
func (n Native) RevList(ctx context.Context, spec string) ([]string, error) {
	from, to, symmetric := parseRangeSpec(spec)
	if to == "" {
		return nil, &GitError{Command: "rev-list " + spec, Output: "invalid revision range"}
	}

	toCommits, err := n.ancestors(ctx, to)
	if err != nil {
		return nil, &GitError{Command: "rev-list " + spec, Output: err.Error()}
	}
	if from == "" {
		return hashes(toCommits), nil
	}

	fromCommits, err := n.ancestors(ctx, from)
	if err != nil {
		return nil, &GitError{Command: "rev-list " + spec, Output: err.Error()}
	}

	inTo := make(map[plumbing.Hash]bool, len(toCommits))
	for _, c := range toCommits {
		inTo[c.Hash] = true
	}
	inFrom := make(map[plumbing.Hash]bool, len(fromCommits))
	for _, c := range fromCommits {
		inFrom[c.Hash] = true
	}

	var selected []*object.Commit
	for _, c := range toCommits {
		if !inFrom[c.Hash] {
			selected = append(selected, c)
		}
	}
	if symmetric {
		for _, c := range fromCommits {
			if !inTo[c.Hash] {
				selected = append(selected, c)
			}
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i].Committer.When, selected[j].Committer.When
		if a.Equal(b) {
			return selected[i].Hash.String() < selected[j].Hash.String()
		}
		return a.After(b)
	})
	return hashes(selected), nil
}

// ancestors returns rev and everything reachable from it
func (n Native) ancestors(ctx context.Context, rev string) ([]*object.Commit, error) {
	hash, err := n.Repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, err
	}

	iter, err := n.Repo.Log(&git.LogOptions{From: *hash, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, err
	}

	var commits []*object.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		commits = append(commits, c)
		return nil
	})
	return commits, err
}

// parseRangeSpec splits "a...b", "a..b" or "b"
func parseRangeSpec(spec string) (from, to string, symmetric bool) {
	spec = strings.TrimSpace(spec)
	if a, b, ok := strings.Cut(spec, "..."); ok {
		return a, b, true
	}
	if a, b, ok := strings.Cut(spec, ".."); ok {
		return a, b, false
	}
	return "", spec, false
}

func hashes(commits []*object.Commit) []string {
	out := make([]string, 0, len(commits))
	for _, c := range commits {
		out = append(out, c.Hash.String())
	}
	return out
}
