package models

// CommitPulls holds the pull requests GitHub associates with one commit
type CommitPulls struct {
	// SHA is the full commit hash
	SHA string
	// PullRequests as returned by the API, possibly empty
	PullRequests []*PullRequest
}

// NewCommitPulls creates a new CommitPulls
func NewCommitPulls(sha string, prs []*PullRequest) CommitPulls {
	return CommitPulls{
		SHA:          sha,
		PullRequests: prs,
	}
}

// Bodies returns the non-empty pull request bodies in API order
func (c CommitPulls) Bodies() []string {
	var bodies []string
	for _, pr := range c.PullRequests {
		if body := pr.GetBody(); body != "" {
			bodies = append(bodies, body)
		}
	}
	return bodies
}
