package release

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// PullRequestLister looks up the pull requests associated with a commit
type PullRequestLister interface {
	PullRequestsForCommit(ctx context.Context, repo models.RepoRef, sha string) ([]*models.PullRequest, error)
}

// Aggregator resolves pull requests for a list of commits
type Aggregator struct {
	Pulls PullRequestLister
	Repo  models.RepoRef
	Log   *logrus.Entry

	// OnCommitDone is called after each successful lookup. It runs on the
	// lookup goroutines, so it must be safe for concurrent use.
	OnCommitDone func(sha string, found int)
}

// Aggregate queries every commit at once and waits for all of them.
// The first failure aborts the whole aggregation; nothing partial is returned.
// The result has one entry per commit, in the order of commits.
func (a Aggregator) Aggregate(ctx context.Context, commits []string) ([]models.CommitPulls, error) {
	perCommit := make([]models.CommitPulls, len(commits))

	g, gctx := errgroup.WithContext(ctx)
	for i, sha := range commits {
		i, sha := i, sha
		g.Go(func() error {
			prs, err := a.Pulls.PullRequestsForCommit(gctx, a.Repo, sha)
			if err != nil {
				return err
			}
			perCommit[i] = models.NewCommitPulls(sha, prs)

			if a.Log != nil {
				a.Log.WithFields(logrus.Fields{"commit": sha, "pull_requests": len(prs)}).Debug("resolved commit")
			}
			if a.OnCommitDone != nil {
				a.OnCommitDone(sha, len(prs))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return perCommit, nil
}
