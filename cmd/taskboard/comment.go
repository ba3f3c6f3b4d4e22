package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

func newCommentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comment",
		Aliases: []string{"comments"},
		Short:   "Comment on tasks",
	}

	addCmd := &cobra.Command{
		Use:   "add <task> <text>...",
		Short: "Add a comment to a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			comment, err := c.AddComment(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			printComment(cmd.OutOrStdout(), comment, a.jsonOutput)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list <task>",
		Short: "List the comments on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			task, err := c.GetTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			ids := taskboard.RefIDs(task.Comments)
			comments := []taskboard.Comment{}
			if len(ids) > 0 {
				if comments, err = c.GetComments(cmd.Context(), ids); err != nil {
					return err
				}
			}
			printCommentList(cmd.OutOrStdout(), comments, a.jsonOutput)
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd)
	return cmd
}
