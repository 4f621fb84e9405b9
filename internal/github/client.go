package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v52/github"
	"golang.org/x/oauth2"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// DefaultAPIURL is the public GitHub REST endpoint
const DefaultAPIURL = "https://api.github.com/"

// Client talks to the GitHub REST API
type Client struct {
	gh *github.Client
}

// NewClient creates a client authenticated with a token.
// An apiURL other than DefaultAPIURL is treated as a GitHub Enterprise server.
func NewClient(ctx context.Context, token, apiURL string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("github token is required")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return NewClientWithHTTP(oauth2.NewClient(ctx, ts), apiURL)
}

// NewClientWithHTTP creates a client on top of an existing http.Client.
// Authentication is left to the caller's transport.
func NewClientWithHTTP(httpClient *http.Client, apiURL string) (*Client, error) {
	if apiURL == "" || normalizeURL(apiURL) == DefaultAPIURL {
		return &Client{gh: github.NewClient(httpClient)}, nil
	}

	gh, err := github.NewEnterpriseClient(apiURL, apiURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("invalid github api url %q: %w", apiURL, err)
	}
	return &Client{gh: gh}, nil
}

// PullRequestsForCommit lists the pull requests associated with a commit.
// Only the API's default page is read.
func (c *Client) PullRequestsForCommit(ctx context.Context, repo models.RepoRef, sha string) ([]*models.PullRequest, error) {
	prs, _, err := c.gh.PullRequests.ListPullRequestsWithCommit(ctx, repo.Owner, repo.Name, sha, nil)
	if err != nil {
		return nil, fmt.Errorf("list pull requests for commit %s in %s: %w", sha, repo, err)
	}
	if prs == nil {
		prs = []*models.PullRequest{}
	}
	return prs, nil
}

// LatestReleaseTag returns the tag of the newest published release, or ""
// if the repository has no releases
func (c *Client) LatestReleaseTag(ctx context.Context, repo models.RepoRef) (string, error) {
	rel, _, err := c.gh.Repositories.GetLatestRelease(ctx, repo.Owner, repo.Name)
	if err != nil {
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("get latest release of %s: %w", repo, err)
	}
	return rel.GetTagName(), nil
}

func normalizeURL(u string) string {
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}
