package models

import "github.com/google/go-github/v52/github"

// PullRequest is the record GitHub returns for a pull request.
// It is passed through untouched and serialized with the API's field names.
type PullRequest = github.PullRequest
