package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/internal/config"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

func newTaskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage tasks",
	}

	var listSection string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  `List the tasks of one section, or every task you can see when --section is omitted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			tasks, err := c.ListTasks(cmd.Context(), listSection)
			if err != nil {
				return err
			}
			printTaskList(cmd.OutOrStdout(), tasks, a.jsonOutput)
			return nil
		},
	}
	listCmd.Flags().StringVarP(&listSection, "section", "s", "", "Section id")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  `Display a task with its checklist, comments, history and tags.`,
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
			printTask(cmd.OutOrStdout(), task, a.jsonOutput)
			return nil
		},
	}

	var section, description, due, assignee string
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a task in a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := a.connect(cmd, true)
			if err != nil {
				return err
			}

			var opts []taskboard.CreateTaskOption
			if due != "" {
				t, err := parseDueDate(due)
				if err != nil {
					return err
				}
				opts = append(opts, taskboard.WithDueDate(t))
			}
			if assignee != "" {
				opts = append(opts, taskboard.WithAssignee(resolveUser(assignee, cfg)))
			}

			task, err := c.CreateTask(cmd.Context(), section, args[0], opts...)
			if err != nil {
				return err
			}
			if description != "" {
				task, err = c.UpdateTask(cmd.Context(), task.ID, taskboard.TaskUpdate{
					Description: taskboard.Some(description),
				})
				if err != nil {
					return err
				}
			}
			printTask(cmd.OutOrStdout(), task, a.jsonOutput)
			return nil
		},
	}
	createCmd.Flags().StringVarP(&section, "section", "s", "", "Section id")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	createCmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD or RFC 3339)")
	createCmd.Flags().StringVarP(&assignee, "assignee", "a", "", "Assignee user id, or 'me'")
	createCmd.MarkFlagRequired("section")

	var editName, editDescription, editDue, editAssignee string
	var editTags []string
	var clearDue, clearAssignee, clearTags bool
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit a task. Only the fields given are sent; --clear-* flags remove a value.
Assignee changes are recorded as ASSIGN history, other changes as UPDATE.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := a.connect(cmd, true)
			if err != nil {
				return err
			}

			var update taskboard.TaskUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				update.Name = taskboard.Some(editName)
			}
			if flags.Changed("description") {
				update.Description = taskboard.Some(editDescription)
			}
			switch {
			case clearDue:
				update.DueDate = taskboard.Null[time.Time]()
			case flags.Changed("due"):
				t, err := parseDueDate(editDue)
				if err != nil {
					return err
				}
				update.DueDate = taskboard.Some(t)
			}
			switch {
			case clearAssignee:
				update.Assignee = taskboard.Null[string]()
			case flags.Changed("assignee"):
				update.Assignee = taskboard.Some(resolveUser(editAssignee, cfg))
			}
			switch {
			case clearTags:
				update.Tags = taskboard.Some([]string{})
			case flags.Changed("tag"):
				update.Tags = taskboard.Some(editTags)
			}

			if isEmptyTaskUpdate(update) {
				return errNoChanges
			}

			task, err := c.UpdateTask(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			printTask(cmd.OutOrStdout(), task, a.jsonOutput)
			return nil
		},
	}
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New name")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date")
	editCmd.Flags().StringVarP(&editAssignee, "assignee", "a", "", "New assignee user id, or 'me'")
	editCmd.Flags().StringSliceVarP(&editTags, "tag", "t", nil, "Tag ids (replaces the current set)")
	editCmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")
	editCmd.Flags().BoolVar(&clearAssignee, "clear-assignee", false, "Unassign the task")
	editCmd.Flags().BoolVar(&clearTags, "clear-tags", false, "Remove all tags")
	editCmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	editCmd.MarkFlagsMutuallyExclusive("assignee", "clear-assignee")
	editCmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")

	cmd.AddCommand(listCmd, showCmd, createCmd, editCmd)
	return cmd
}

// resolveUser maps "me" to the logged-in user's id.
func resolveUser(id string, cfg *config.ResolvedConfig) string {
	if id == "me" && cfg.Session != nil {
		return cfg.Session.UserID
	}
	return id
}

func isEmptyTaskUpdate(u taskboard.TaskUpdate) bool {
	return u.Name.IsZero() && u.Description.IsZero() && u.DueDate.IsZero() &&
		u.Assignee.IsZero() && u.Tags.IsZero()
}
