package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

func newTagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tag",
		Aliases: []string{"tags"},
		Short:   "Manage project tags",
	}

	var task string
	listCmd := &cobra.Command{
		Use:   "list [id]...",
		Short: "Show tags by id, or the tags of a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if task == "" && len(args) == 0 {
				return fmt.Errorf("pass tag ids or --task")
			}
			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}

			ids := args
			if task != "" {
				t, err := c.GetTask(cmd.Context(), task)
				if err != nil {
					return err
				}
				ids = append(ids, taskboard.RefIDs(t.Tags)...)
			}

			tags := []taskboard.Tag{}
			if len(ids) > 0 {
				if tags, err = c.GetTags(cmd.Context(), ids); err != nil {
					return err
				}
			}
			printTagList(cmd.OutOrStdout(), tags, a.jsonOutput)
			return nil
		},
	}
	listCmd.Flags().StringVar(&task, "task", "", "List the tags of this task")

	var project string
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a tag in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			id, err := projectID([]string{project}, cfg)
			if err != nil {
				return err
			}
			tag, err := c.CreateTag(cmd.Context(), id, args[0])
			if err != nil {
				return err
			}
			printTag(cmd.OutOrStdout(), tag, a.jsonOutput)
			return nil
		},
	}
	createCmd.Flags().StringVarP(&project, "project", "P", "", "Project id (default: taskboard.toml project)")

	var editName, editColour string
	var clearColour bool
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a tag",
		Long:  `Edit a tag. --clear-colour resets the colour to the server default.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update taskboard.TagUpdate
			if cmd.Flags().Changed("name") {
				update.Name = taskboard.Some(editName)
			}
			update.Colour = optionalString(cmd.Flags().Changed("colour"), editColour, clearColour)
			if update.Name.IsZero() && update.Colour.IsZero() {
				return errNoChanges
			}

			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			tag, err := c.UpdateTag(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			printTag(cmd.OutOrStdout(), tag, a.jsonOutput)
			return nil
		},
	}
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New name")
	editCmd.Flags().StringVarP(&editColour, "colour", "c", "", "New colour")
	editCmd.Flags().BoolVar(&clearColour, "clear-colour", false, "Reset the colour")
	editCmd.MarkFlagsMutuallyExclusive("colour", "clear-colour")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			tag, err := c.DeleteTag(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.jsonOutput {
				printTag(cmd.OutOrStdout(), tag, true)
				return nil
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Tag %s deleted", tag.Name), false)
			return nil
		},
	}

	cmd.AddCommand(listCmd, createCmd, editCmd, deleteCmd)
	return cmd
}
