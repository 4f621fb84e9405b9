package release

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// RevLister lists commits selected by a range spec
type RevLister interface {
	RevList(ctx context.Context, spec string) ([]string, error)
}

// Extractor lists the commits a release introduces
type Extractor struct {
	Revs RevLister
	Log  *logrus.Entry
}

// Commits returns the commit hashes in rng, newest first. An empty range
// gives an empty slice.
func (e Extractor) Commits(ctx context.Context, rng models.TagRange) ([]string, error) {
	spec := rng.Spec()

	commits, err := e.Revs.RevList(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("list commits in %s: %w", spec, err)
	}
	if commits == nil {
		commits = []string{}
	}

	if e.Log != nil {
		e.Log.WithFields(logrus.Fields{"range": spec, "commits": len(commits)}).Debug("listed commits")
	}
	return commits, nil
}
