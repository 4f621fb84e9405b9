package command

import (
	"errors"
	"path/filepath"

	"github.com/wahlandcase/attuned.releaseprs/internal/action"
	"github.com/wahlandcase/attuned.releaseprs/internal/config"
	"github.com/wahlandcase/attuned.releaseprs/internal/git"
	"github.com/wahlandcase/attuned.releaseprs/internal/logging"
	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

var (
	errMissingToken = errors.New("a GitHub token is required (input token, --token or GITHUB_TOKEN)")
	errMissingRepo  = errors.New("repository is unknown: set --repo, GITHUB_REPOSITORY or an origin remote")
)

// FlagValues mirrors the command-line flags so we can keep parsing/validation in one place.
type FlagValues struct {
	ReleaseTag string
	Token      string
	Repository string
	RepoPath   string
	GitBackend string
	APIURL     string
	ConfigPath string
	LogLevel   string
	LogFormat  string
	NoColor    bool
	Plain      bool
}

// Options collect validated inputs for one run
type Options struct {
	ReleaseTag string
	Token      string
	Repo       models.RepoRef
	RepoPath   string
	GitBackend string
	APIURL     string
}

// repoDir picks the directory used to find .relprs.toml
func repoDir(f FlagValues, env *action.Env) string {
	if f.RepoPath != "" {
		return filepath.Clean(f.RepoPath)
	}
	if ws := env.Workspace(); ws != "" {
		return ws
	}
	return workingRepoRoot()
}

// workingRepoRoot returns the repository containing the working directory,
// or "." outside a repository
func workingRepoRoot() string {
	if root, err := git.FindRepoRoot("."); err == nil {
		return root
	}
	return "."
}

// logSettings returns level and format: flags, then the runner, then config
func logSettings(f FlagValues, cfg *config.Config, env *action.Env) (string, string) {
	level := firstNonEmpty(f.LogLevel, cfg.Log.Level)
	if f.LogLevel == "" && env.DebugEnabled() {
		level = "debug"
	}

	format := firstNonEmpty(f.LogFormat, cfg.Log.Format)
	if f.LogFormat == "" && env.InActions() {
		format = logging.FormatWorkflow
	}
	return level, format
}

// resolveOptions merges flags, action inputs, runner environment and config.
// Flags win, then the environment, then the config file.
func resolveOptions(f FlagValues, cfg *config.Config, env *action.Env) (Options, error) {
	opts := Options{
		ReleaseTag: f.ReleaseTag,
		Token:      f.Token,
		RepoPath:   filepath.Clean(firstNonEmpty(f.RepoPath, env.Workspace(), cfg.Git.RepoPath)),
		GitBackend: firstNonEmpty(f.GitBackend, cfg.Git.Backend, git.BackendCLI),
		APIURL:     firstNonEmpty(f.APIURL, env.APIURL(), cfg.GitHub.APIURL),
	}

	if opts.RepoPath == "." {
		opts.RepoPath = workingRepoRoot()
	}

	if opts.ReleaseTag == "" {
		opts.ReleaseTag = env.GetInput("release_tag")
	}
	if opts.ReleaseTag == "" {
		return Options{}, errors.New("release tag is required (input release_tag or --release-tag)")
	}

	if opts.Token != "" {
		env.AddMask(opts.Token)
	}
	if opts.Token == "" {
		opts.Token = env.GetSecretInput("token")
	}
	if opts.Token == "" {
		opts.Token = env.Token()
	}
	if opts.Token == "" {
		return Options{}, errMissingToken
	}

	repo, err := resolveRepo(f, cfg, env, opts.RepoPath)
	if err != nil {
		return Options{}, err
	}
	opts.Repo = repo

	return opts, nil
}

func resolveRepo(f FlagValues, cfg *config.Config, env *action.Env, repoPath string) (models.RepoRef, error) {
	if f.Repository != "" {
		return models.ParseRepoRef(f.Repository)
	}
	if env.Getenv("GITHUB_REPOSITORY") != "" {
		return env.Repository()
	}
	if cfg.GitHub.Repository != "" {
		return models.ParseRepoRef(cfg.GitHub.Repository)
	}
	if ref, err := git.OriginRepository(repoPath); err == nil {
		return ref, nil
	}
	return models.RepoRef{}, errMissingRepo
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
