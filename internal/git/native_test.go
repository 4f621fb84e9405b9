package git

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds c1 <- c2 <- c3 <- c4 with tags
// v1.0 (c1, lightweight), v1.1 (c3, annotated), v1.2 (c4, lightweight)
type fixture struct {
	repo    *gogit.Repository
	commits []string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	fs := memfs.New()
	repo, err := gogit.Init(memory.NewStorage(), fs)
	require.NoError(t, err)
	w, err := repo.Worktree()
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var commits []string
	for i, name := range []string{"c1", "c2", "c3", "c4"} {
		require.NoError(t, util.WriteFile(fs, name+".txt", []byte(name), 0644))
		_, err := w.Add(name + ".txt")
		require.NoError(t, err)

		sig := &object.Signature{Name: "Dev", Email: "dev@example.com", When: base.Add(time.Duration(i) * time.Hour)}
		hash, err := w.Commit(name, &gogit.CommitOptions{Author: sig, Committer: sig})
		require.NoError(t, err)
		commits = append(commits, hash.String())
	}

	_, err = repo.CreateTag("v1.0", plumbing.NewHash(commits[0]), nil)
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.1", plumbing.NewHash(commits[2]), &gogit.CreateTagOptions{
		Tagger:  &object.Signature{Name: "Dev", Email: "dev@example.com", When: base.Add(10 * time.Hour)},
		Message: "Release v1.1",
	})
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.2", plumbing.NewHash(commits[3]), nil)
	require.NoError(t, err)

	return fixture{repo: repo, commits: commits}
}

func TestNativeListTags(t *testing.T) {
	f := newFixture(t)

	tags, err := Native{Repo: f.repo}.ListTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"v1.0", "v1.1", "v1.2"}, tags)
}

func TestNativeRevList(t *testing.T) {
	f := newFixture(t)
	c := f.commits
	n := Native{Repo: f.repo}

	tests := []struct {
		spec     string
		expected []string
	}{
		{"v1.0...v1.1", []string{c[2], c[1]}},
		{"v1.1...v1.2", []string{c[3]}},
		{"v1.0..v1.2", []string{c[3], c[2], c[1]}},
		{"v1.1", []string{c[2], c[1], c[0]}},
		{"v1.0", []string{c[0]}},
		{"v1.1...v1.1", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := n.RevList(context.Background(), tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNativeRevListUnknownRef(t *testing.T) {
	f := newFixture(t)

	_, err := Native{Repo: f.repo}.RevList(context.Background(), "v1.0...v9.9")

	var gitErr *GitError
	require.True(t, errors.As(err, &gitErr))
	assert.Contains(t, gitErr.Command, "rev-list")
}

func TestParseRangeSpec(t *testing.T) {
	tests := []struct {
		spec      string
		from, to  string
		symmetric bool
	}{
		{"a...b", "a", "b", true},
		{"a..b", "a", "b", false},
		{"b", "", "b", false},
		{" v1.0...v1.1 ", "v1.0", "v1.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			from, to, symmetric := parseRangeSpec(tt.spec)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
			assert.Equal(t, tt.symmetric, symmetric)
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLines("a\n  b  \n\n"))
	assert.Equal(t, []string{}, splitLines(""))
}
