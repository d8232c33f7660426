package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/issuetracker/internal/cli"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return c.Config.Write(cmd.OutOrStdout())
		},
	}
}
