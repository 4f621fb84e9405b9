// Package update tells whether a newer relprs release has been published
package update

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// Repository is where relprs releases are published
var Repository = models.RepoRef{Owner: "wahlandcase", Name: "attuned.releaseprs"}

// Release represents a GitHub release
type Release struct {
	TagName string
}

// LatestReleaser returns the tag of the newest release, "" when there is none
type LatestReleaser interface {
	LatestReleaseTag(ctx context.Context, repo models.RepoRef) (string, error)
}

// CheckForUpdate returns the latest release if it is newer than currentVersion
func CheckForUpdate(ctx context.Context, releases LatestReleaser, currentVersion string, repo models.RepoRef) (*Release, error) {
	tag, err := releases.LatestReleaseTag(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("check for update: %w", err)
	}
	if tag == "" {
		return nil, nil
	}

	latest := &Release{TagName: tag}

	// dev builds are older than any release
	if currentVersion == "dev" || currentVersion == "" {
		return latest, nil
	}

	latestVer, currentVer := normalizeVersion(tag), normalizeVersion(currentVersion)
	if !semver.IsValid(latestVer) {
		return nil, fmt.Errorf("latest release %q is not a semantic version", tag)
	}
	if !semver.IsValid(currentVer) {
		return latest, nil
	}
	if semver.Compare(latestVer, currentVer) > 0 {
		return latest, nil
	}
	return nil, nil
}

// normalizeVersion strips a "relprs/" prefix and makes sure of a leading v
func normalizeVersion(v string) string {
	v = strings.TrimPrefix(v, "relprs/")
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// VersionDisplay returns a version string for display, without the v
func VersionDisplay(tag string) string {
	return strings.TrimPrefix(normalizeVersion(tag), "v")
}
