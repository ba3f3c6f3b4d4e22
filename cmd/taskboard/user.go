package main

import (
	"github.com/spf13/cobra"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Look up users",
	}

	showCmd := &cobra.Command{
		Use:   "show <id>...",
		Short: "Show users by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			users, err := c.GetUsers(cmd.Context(), args)
			if err != nil {
				return err
			}
			printUserList(cmd.OutOrStdout(), users, a.jsonOutput)
			return nil
		},
	}

	cmd.AddCommand(showCmd)
	return cmd
}
