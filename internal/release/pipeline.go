package release

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// Pipeline runs resolver, extractor and aggregator in sequence
type Pipeline struct {
	Resolver   Resolver
	Extractor  Extractor
	Aggregator Aggregator
	Log        *logrus.Entry

	// OnCommitsListed, if set, is called with the commit count before lookups start
	OnCommitsListed func(n int)
}

// Repository is a git repository the pipeline can read tags and commits from
type Repository interface {
	TagLister
	RevLister
}

// NewPipeline builds a Pipeline whose stages share a repository and logger
func NewPipeline(repo Repository, pulls PullRequestLister, ref models.RepoRef, log *logrus.Entry) *Pipeline {
	return &Pipeline{
		Resolver:   Resolver{Tags: repo, Log: log},
		Extractor:  Extractor{Revs: repo, Log: log},
		Aggregator: Aggregator{Pulls: pulls, Repo: ref, Log: log},
		Log:        log,
	}
}

// Run computes the pull requests shipped by releaseTag
func (p *Pipeline) Run(ctx context.Context, releaseTag string) (*models.PipelineResult, error) {
	rng, err := p.Resolver.Resolve(ctx, releaseTag)
	if err != nil {
		return nil, err
	}

	commits, err := p.Extractor.Commits(ctx, rng)
	if err != nil {
		return nil, err
	}

	if p.OnCommitsListed != nil {
		p.OnCommitsListed(len(commits))
	}

	perCommit, err := p.Aggregator.Aggregate(ctx, commits)
	if err != nil {
		return nil, err
	}

	result := models.NewPipelineResult(rng, commits, perCommit)
	if p.Log != nil {
		p.Log.WithFields(logrus.Fields{
			"release_tag":   rng.Release,
			"previous_tag":  rng.PreviousName(),
			"range":         rng.Spec(),
			"commits":       len(commits),
			"pull_requests": len(result.PullRequests),
		}).Info("collected release pull requests")
	}
	return result, nil
}
