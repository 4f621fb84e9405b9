package command

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wahlandcase/attuned.releaseprs/internal/action"
	"github.com/wahlandcase/attuned.releaseprs/internal/app"
	"github.com/wahlandcase/attuned.releaseprs/internal/config"
	"github.com/wahlandcase/attuned.releaseprs/internal/git"
	"github.com/wahlandcase/attuned.releaseprs/internal/github"
	"github.com/wahlandcase/attuned.releaseprs/internal/logging"
	"github.com/wahlandcase/attuned.releaseprs/internal/release"
	"github.com/wahlandcase/attuned.releaseprs/internal/ui"
)

func newPreviewCommand(flags *FlagValues, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <release-tag>",
		Short: "Show the pull requests a release tag ships, without setting outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := *flags
			f.ReleaseTag = args[0]
			return runPreview(cmd, f, version)
		},
	}
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colour output")
	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print the summary without the progress view")
	return cmd
}

func runPreview(cmd *cobra.Command, flags FlagValues, version string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	env := action.NewEnv(nil)

	cfg, err := config.Load(flags.ConfigPath, repoDir(flags, env))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, format := logSettings(flags, cfg, env)
	logOut := io.Writer(os.Stderr)
	if !flags.Plain {
		// The progress view owns the terminal
		logOut = io.Discard
	}
	logger, err := logging.New(logOut, level, format)
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
	pipeline := release.NewPipeline(repo, client, opts.Repo, log)

	ui.ConfigureColor(out, flags.NoColor)

	if flags.Plain {
		result, err := pipeline.Run(ctx, opts.ReleaseTag)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ui.RenderSummary(result))
		return nil
	}

	model := app.New(ctx, pipeline, opts.ReleaseTag, version)
	final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(out)).Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	_, runErr := final.(app.Model).Result()
	return runErr
}
