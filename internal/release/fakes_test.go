package release

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/go-github/v52/github"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// fakeRepo serves a fixed tag listing and records rev-list specs
type fakeRepo struct {
	tags    []string
	tagsErr error
	commits map[string][]string
	revErr  error

	mu    sync.Mutex
	specs []string
}

func (f *fakeRepo) ListTags(ctx context.Context) ([]string, error) {
	return f.tags, f.tagsErr
}

func (f *fakeRepo) RevList(ctx context.Context, spec string) ([]string, error) {
	f.mu.Lock()
	f.specs = append(f.specs, spec)
	f.mu.Unlock()
	if f.revErr != nil {
		return nil, f.revErr
	}
	return f.commits[spec], nil
}

// fakePulls answers from a map keyed by commit sha
type fakePulls struct {
	prs  map[string][]*models.PullRequest
	errs map[string]error

	mu    sync.Mutex
	calls []string
	repos []models.RepoRef
}

func (f *fakePulls) PullRequestsForCommit(ctx context.Context, repo models.RepoRef, sha string) ([]*models.PullRequest, error) {
	f.mu.Lock()
	f.calls = append(f.calls, sha)
	f.repos = append(f.repos, repo)
	f.mu.Unlock()

	if err, ok := f.errs[sha]; ok {
		return nil, err
	}
	prs, ok := f.prs[sha]
	if !ok {
		return []*models.PullRequest{}, nil
	}
	return prs, nil
}

func newPR(number int, body string) *models.PullRequest {
	return &models.PullRequest{
		Number: github.Int(number),
		Title:  github.String(fmt.Sprintf("PR %d", number)),
		Body:   github.String(body),
	}
}
