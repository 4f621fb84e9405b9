package command

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/attuned.releaseprs/internal/action"
	"github.com/wahlandcase/attuned.releaseprs/internal/github"
	"github.com/wahlandcase/attuned.releaseprs/internal/update"
)

func newVersionCommand(flags *FlagValues, version string) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the relprs version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "relprs %s\n", update.VersionDisplay(version))
			if !check {
				return nil
			}

			env := action.NewEnv(nil)
			apiURL := firstNonEmpty(flags.APIURL, github.DefaultAPIURL)
			token := firstNonEmpty(flags.Token, env.Getenv("GITHUB_TOKEN"))

			var client *github.Client
			var err error
			if token != "" {
				client, err = github.NewClient(cmd.Context(), token, apiURL)
			} else {
				client, err = github.NewClientWithHTTP(http.DefaultClient, apiURL)
			}
			if err != nil {
				return err
			}

			latest, err := update.CheckForUpdate(cmd.Context(), client, version, update.Repository)
			if err != nil {
				return err
			}
			if latest == nil {
				fmt.Fprintln(out, "up to date")
				return nil
			}
			fmt.Fprintf(out, "relprs %s is available\n", update.VersionDisplay(latest.TagName))
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}
