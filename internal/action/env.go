package action

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

// Env is the runner environment a step sees
type Env struct {
	// Getenv looks up environment variables (os.Getenv by default)
	Getenv func(string) string
	// Stdout receives workflow commands
	Stdout io.Writer
	// Log receives input debugging, nil disables it
	Log *logrus.Entry
}

// NewEnv reads the process environment and writes commands to stdout
func NewEnv(log *logrus.Entry) *Env {
	return &Env{Getenv: os.Getenv, Stdout: os.Stdout, Log: log}
}

// InActions returns true when running inside a GitHub Actions job
func (e *Env) InActions() bool {
	return e.Getenv("GITHUB_ACTIONS") == "true"
}

// DebugEnabled returns true if the run was started with step debug logging
func (e *Env) DebugEnabled() bool {
	return e.Getenv("RUNNER_DEBUG") == "1"
}

// GetInput returns the trimmed value of an action input
func (e *Env) GetInput(name string) string {
	value := strings.TrimSpace(e.Getenv(inputEnvName(name)))
	e.logInput(name, value)
	return value
}

// GetSecretInput returns an input and masks it in all later log output
func (e *Env) GetSecretInput(name string) string {
	value := strings.TrimSpace(e.Getenv(inputEnvName(name)))
	if value != "" {
		e.AddMask(value)
	}
	e.logInput(name, mask(value))
	return value
}

func (e *Env) logInput(name, value string) {
	if e.Log != nil {
		e.Log.Debugf("Getting input for key: %q, resulting input: %q", name, value)
	}
}

// AddMask registers a secret with the runner so it is redacted from logs.
// Outside Actions nothing is written, the command would echo the secret.
func (e *Env) AddMask(secret string) {
	if !e.InActions() {
		return
	}
	_ = IssueCommand(e.Stdout, "add-mask", nil, secret)
}

// Repository returns the owner/name of the repository the workflow runs in
func (e *Env) Repository() (models.RepoRef, error) {
	full := e.Getenv("GITHUB_REPOSITORY")
	if full == "" {
		return models.RepoRef{}, fmt.Errorf("GITHUB_REPOSITORY is not set")
	}
	return models.ParseRepoRef(full)
}

// APIURL returns the REST endpoint of the GitHub instance running the job
func (e *Env) APIURL() string {
	return e.Getenv("GITHUB_API_URL")
}

// Workspace returns the checkout directory of the job
func (e *Env) Workspace() string {
	return e.Getenv("GITHUB_WORKSPACE")
}

// Token returns the fallback token exported as GITHUB_TOKEN
func (e *Env) Token() string {
	token := strings.TrimSpace(e.Getenv("GITHUB_TOKEN"))
	if token != "" {
		e.AddMask(token)
	}
	return token
}

// SetFailed reports err as an error annotation. The caller exits non-zero.
func (e *Env) SetFailed(err error) {
	_ = IssueCommand(e.Stdout, "error", nil, err.Error())
}

// inputEnvName maps "release_tag" to INPUT_RELEASE_TAG the way the runner does
func inputEnvName(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

func mask(value string) string {
	if value == "" {
		return ""
	}
	return "***"
}
