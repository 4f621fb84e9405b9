package command

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-github/v52/github"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
	"github.com/wahlandcase/attuned.releaseprs/internal/release"
)

type stubRepo struct {
	tags    []string
	commits []string
}

func (s stubRepo) ListTags(ctx context.Context) ([]string, error) { return s.tags, nil }

func (s stubRepo) RevList(ctx context.Context, spec string) ([]string, error) {
	return s.commits, nil
}

type stubPulls struct {
	prs map[string][]*models.PullRequest
	err error
}

func (s stubPulls) PullRequestsForCommit(ctx context.Context, repo models.RepoRef, sha string) ([]*models.PullRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.prs[sha], nil
}

func newStubPipeline(pulls stubPulls) *release.Pipeline {
	logger, _ := test.NewNullLogger()
	repo := stubRepo{tags: []string{"v1.0", "v1.1"}, commits: []string{"c2", "c1"}}
	return release.NewPipeline(repo, pulls, models.RepoRef{Owner: "o", Name: "r"}, logrus.NewEntry(logger))
}

func TestRunReleaseWritesOutputs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output")
	env := testEnv(map[string]string{"GITHUB_OUTPUT": out})
	pulls := stubPulls{prs: map[string][]*models.PullRequest{
		"c1": {{Number: github.Int(1), Body: github.String("Fix A")}},
		"c2": {{Number: github.Int(2), Body: github.String("Fix B")}},
	}}

	require.NoError(t, runRelease(context.Background(), env, newStubPipeline(pulls), "v1.1"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `prs<<ghadelimiter_`)
	assert.Contains(t, string(data), `[{"number":2,"body":"Fix B"},{"number":1,"body":"Fix A"}]`)
	assert.Contains(t, string(data), "\nFix B\nFix A\n\n")
}

func TestRunReleaseFailureWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output")
	env := testEnv(map[string]string{"GITHUB_OUTPUT": out})
	pulls := stubPulls{err: errors.New("HTTP 502")}

	err := runRelease(context.Background(), env, newStubPipeline(pulls), "v1.1")

	require.ErrorContains(t, err, "HTTP 502")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunReleaseMissingTag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output")
	env := testEnv(map[string]string{"GITHUB_OUTPUT": out})

	err := runRelease(context.Background(), env, newStubPipeline(stubPulls{}), "")

	require.ErrorIs(t, err, release.ErrMissingReleaseTag)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCommandFlags(t *testing.T) {
	cmd := NewRootCommand("1.2.3")

	assert.Equal(t, "1.2.3", cmd.Version)
	for _, name := range []string{"token", "repo", "repo-path", "git-backend", "api-url", "config", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.NotNil(t, cmd.Flags().Lookup("release-tag"))

	preview, _, err := cmd.Find([]string{"preview"})
	require.NoError(t, err)
	assert.Equal(t, "preview", preview.Name())
}
