package command

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/wahlandcase/attuned.releaseprs/internal/action"
	"github.com/wahlandcase/attuned.releaseprs/internal/config"
	"github.com/wahlandcase/attuned.releaseprs/internal/git"
	"github.com/wahlandcase/attuned.releaseprs/internal/github"
	"github.com/wahlandcase/attuned.releaseprs/internal/logging"
	"github.com/wahlandcase/attuned.releaseprs/internal/release"
)

// runAction is the workflow step: resolve inputs, run the pipeline, publish outputs
func runAction(ctx context.Context, flags FlagValues) error {
	env := action.NewEnv(nil)

	err := func() error {
		cfg, err := config.Load(flags.ConfigPath, repoDir(flags, env))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level, format := logSettings(flags, cfg, env)
		logger, err := logging.New(os.Stdout, level, format)
		if err != nil {
			return err
		}
		log := logrus.NewEntry(logger)
		env.Log = log

		opts, err := resolveOptions(flags, cfg, env)
		if err != nil {
			return err
		}

		repo, err := git.Open(opts.GitBackend, opts.RepoPath)
		if err != nil {
			return err
		}

		client, err := github.NewClient(ctx, opts.Token, opts.APIURL)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"release_tag": opts.ReleaseTag,
			"repository":  opts.Repo.String(),
			"git_backend": opts.GitBackend,
		}).Info("collecting release pull requests")

		return runRelease(ctx, env, release.NewPipeline(repo, client, opts.Repo, log), opts.ReleaseTag)
	}()

	if err != nil && env.InActions() {
		env.SetFailed(err)
	}
	return err
}

// runRelease runs the pipeline and emits outputs only when it succeeds
func runRelease(ctx context.Context, env *action.Env, p *release.Pipeline, releaseTag string) error {
	result, err := p.Run(ctx, releaseTag)
	if err != nil {
		return err
	}
	return env.EmitResult(result)
}
