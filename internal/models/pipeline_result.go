package models

import "strings"

// PipelineResult is everything one run produces
type PipelineResult struct {
	// Range the commits were taken from
	Range TagRange
	// Commits in rev-list order (newest first)
	Commits []string
	// PerCommit has one entry per commit, in the same order as Commits
	PerCommit []CommitPulls
	// PullRequests flattened across commits, duplicates kept
	PullRequests []*PullRequest
	// Bodies is the aggregated description string
	Bodies string
}

// NewPipelineResult builds the flattened views from the per-commit entries
func NewPipelineResult(r TagRange, commits []string, perCommit []CommitPulls) *PipelineResult {
	if commits == nil {
		commits = []string{}
	}
	return &PipelineResult{
		Range:        r,
		Commits:      commits,
		PerCommit:    perCommit,
		PullRequests: FlattenPullRequests(perCommit),
		Bodies:       JoinBodies(perCommit),
	}
}

// FlattenPullRequests concatenates pull requests in commit order.
// The result is never nil so it serializes as [] rather than null.
func FlattenPullRequests(perCommit []CommitPulls) []*PullRequest {
	prs := []*PullRequest{}
	for _, c := range perCommit {
		prs = append(prs, c.PullRequests...)
	}
	return prs
}

// JoinBodies joins bodies with "\n" within a commit, and terminates each
// commit's block with "\n". Commits without bodies add nothing.
func JoinBodies(perCommit []CommitPulls) string {
	var sb strings.Builder
	for _, c := range perCommit {
		joined := strings.Join(c.Bodies(), "\n")
		if joined == "" {
			continue
		}
		sb.WriteString(joined)
		sb.WriteString("\n")
	}
	return sb.String()
}
