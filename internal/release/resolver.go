// Package release turns a release tag into the pull requests it ships:
// previous tag, commit range, then one GitHub lookup per commit.
package release

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// ErrMissingReleaseTag is returned when no release tag was supplied
var ErrMissingReleaseTag = errors.New("release tag is required")

// TagLister lists tags in the order the repository reports them
type TagLister interface {
	ListTags(ctx context.Context) ([]string, error)
}

// Resolver finds the tag released before a given one
type Resolver struct {
	Tags TagLister
	Log  *logrus.Entry
}

// Resolve lists the tags and pairs the release tag with its predecessor.
// A missing predecessor is not an error.
func (r Resolver) Resolve(ctx context.Context, releaseTag string) (models.TagRange, error) {
	if releaseTag == "" {
		return models.TagRange{}, ErrMissingReleaseTag
	}

	tags, err := r.Tags.ListTags(ctx)
	if err != nil {
		return models.TagRange{}, fmt.Errorf("list tags: %w", err)
	}

	rng := models.TagRange{Release: releaseTag, Previous: PreviousTag(tags, releaseTag)}
	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{
			"tags":         len(tags),
			"previous_tag": rng.PreviousName(),
		}).Debug("resolved previous tag")
	}
	return rng, nil
}

// PreviousTag returns the tag listed immediately before release.
// It returns nil when release is first or not listed at all.
func PreviousTag(tags []string, release string) *string {
	for i, tag := range tags {
		if tag != release {
			continue
		}
		if i == 0 {
			return nil
		}
		prev := tags[i-1]
		return &prev
	}
	return nil
}
