package main

import (
	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "Manage projects",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			projects, err := c.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			printProjectList(cmd.OutOrStdout(), projects, a.jsonOutput)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a project (default: the taskboard.toml project)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			id, err := projectID(args, cfg)
			if err != nil {
				return err
			}
			project, err := c.GetProject(cmd.Context(), id)
			if err != nil {
				return err
			}
			printProject(cmd.OutOrStdout(), project, a.jsonOutput)
			return nil
		},
	}

	var background string
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			project, err := c.CreateProject(cmd.Context(), args[0], background)
			if err != nil {
				return err
			}
			printProject(cmd.OutOrStdout(), project, a.jsonOutput)
			return nil
		},
	}
	createCmd.Flags().StringVarP(&background, "background", "b", "", "Background colour or image")

	cmd.AddCommand(listCmd, showCmd, createCmd)
	return cmd
}
