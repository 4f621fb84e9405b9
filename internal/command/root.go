// Package command holds the cobra commands behind the relprs binary
package command

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the relprs command tree
func NewRootCommand(version string) *cobra.Command {
	var flags FlagValues

	rootCmd := &cobra.Command{
		Use:   "relprs",
		Short: "Collect the pull requests shipped in a release tag",
		Long: "relprs finds the tag before the release tag, lists the commits between them and\n" +
			"asks GitHub for the pull requests behind each commit. As a workflow step it\n" +
			"publishes the outputs prs (JSON) and prs_bodies (text).",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.Token, "token", "", "GitHub token (defaults to input token or GITHUB_TOKEN)")
	pf.StringVar(&flags.Repository, "repo", "", "GitHub repository as owner/name")
	pf.StringVar(&flags.RepoPath, "repo-path", "", "Path to the git checkout")
	pf.StringVar(&flags.GitBackend, "git-backend", "", "How to read git: cli or native")
	pf.StringVar(&flags.APIURL, "api-url", "", "GitHub REST API URL")
	pf.StringVar(&flags.ConfigPath, "config", "", "Path to a relprs.toml file")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.LogFormat, "log-format", "", "Log format (text, json, workflow)")

	rootCmd.Flags().StringVar(&flags.ReleaseTag, "release-tag", "", "Tag being released (defaults to input release_tag)")

	rootCmd.AddCommand(newPreviewCommand(&flags, version))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(&flags, version))

	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}
