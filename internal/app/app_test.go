package app

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-github/v52/github"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
	"github.com/wahlandcase/attuned.releaseprs/internal/release"
)

type stubRepo struct{}

func (stubRepo) ListTags(ctx context.Context) ([]string, error) {
	return []string{"v1.0", "v1.1"}, nil
}

func (stubRepo) RevList(ctx context.Context, spec string) ([]string, error) {
	return []string{"c2", "c1"}, nil
}

type stubPulls struct{ err error }

func (s stubPulls) PullRequestsForCommit(ctx context.Context, repo models.RepoRef, sha string) ([]*models.PullRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*models.PullRequest{{
		Number: github.Int(len(sha)),
		Title:  github.String("Change " + sha),
		Body:   github.String("Body " + sha),
	}}, nil
}

func newTestModel(t *testing.T, pulls stubPulls) Model {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	p := release.NewPipeline(stubRepo{}, pulls, models.RepoRef{Owner: "o", Name: "r"}, nil)
	return New(context.Background(), p, "v1.1", "test")
}

// run executes the pipeline command and feeds every message through Update
func run(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	final := runPipelineCmd(m.ctx, m.pipeline, m.releaseTag, m.progress)()

	for {
		msg := listenForProgress(m.progress)()
		if msg == nil {
			break
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}

	next, cmd := m.Update(final)
	return next.(Model), cmd
}

func TestPreviewSuccess(t *testing.T) {
	m := newTestModel(t, stubPulls{})

	m, cmd := run(t, m)

	require.NotNil(t, cmd)
	assert.Equal(t, ScreenSummary, m.screen)
	assert.Equal(t, 2, m.totalCommits)
	assert.Equal(t, 2, m.doneCommits)

	result, err := m.Result()
	require.NoError(t, err)
	assert.Len(t, result.PullRequests, 2)
	assert.Equal(t, "Body c2\nBody c1\n", result.Bodies)

	view := m.View()
	assert.Contains(t, view, "v1.0")
	assert.Contains(t, view, "Change c1")
}

func TestPreviewFailure(t *testing.T) {
	m := newTestModel(t, stubPulls{err: errors.New("HTTP 502")})

	m, _ = run(t, m)

	assert.Equal(t, ScreenError, m.screen)
	_, err := m.Result()
	assert.ErrorContains(t, err, "HTTP 502")
	assert.Contains(t, m.View(), "HTTP 502")
}

func TestPreviewCancel(t *testing.T) {
	m := newTestModel(t, stubPulls{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, ScreenError, m.screen)
	_, err := m.Result()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSpinnerStopsAfterLoading(t *testing.T) {
	m := newTestModel(t, stubPulls{})

	next, cmd := m.Update(tickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, next.(Model).spinnerFrame)

	m.screen = ScreenSummary
	_, cmd = m.Update(tickMsg{})
	assert.Nil(t, cmd)
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "Summary", ScreenSummary.String())
	assert.Equal(t, "Unknown", Screen(42).String())
}
