package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/attuned.releaseprs/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the relprs config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the user config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	var output string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if output != "" {
				if err := cfg.SaveTo(output); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), output)
				return nil
			}
			path, err := cfg.Save()
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path instead of the user config directory")
	cmd.AddCommand(initCmd)

	return cmd
}
