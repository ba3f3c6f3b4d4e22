package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

func newSectionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "section",
		Aliases: []string{"sections"},
		Short:   "Manage project sections",
	}

	listCmd := &cobra.Command{
		Use:   "list [project]",
		Short: "List the sections of a project",
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
			sections, err := c.ListSections(cmd.Context(), id)
			if err != nil {
				return err
			}
			printSectionList(cmd.OutOrStdout(), sections, a.jsonOutput)
			return nil
		},
	}

	var project, colour, icon string
	createCmd := &cobra.Command{
		Use:   "create <name>...",
		Short: "Create one or more sections",
		Long:  `Create sections in a project. Every name given becomes a section with the same colour and icon.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			id, err := projectID([]string{project}, cfg)
			if err != nil {
				return err
			}

			sections := make([]taskboard.NewSection, len(args))
			for i, name := range args {
				sections[i] = taskboard.NewSection{Name: name, Colour: colour, Icon: icon}
			}
			created, err := c.CreateSections(cmd.Context(), id, sections)
			if err != nil {
				return err
			}
			printSectionList(cmd.OutOrStdout(), created, a.jsonOutput)
			return nil
		},
	}
	createCmd.Flags().StringVarP(&project, "project", "P", "", "Project id (default: taskboard.toml project)")
	createCmd.Flags().StringVarP(&colour, "colour", "c", "", "Colour, e.g. #ffffff")
	createCmd.Flags().StringVarP(&icon, "icon", "i", "", "Icon name")

	var editName, editColour, editIcon string
	var clearColour, clearIcon bool
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update taskboard.SectionUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				update.Name = taskboard.Some(editName)
			}
			update.Colour = optionalString(flags.Changed("colour"), editColour, clearColour)
			update.Icon = optionalString(flags.Changed("icon"), editIcon, clearIcon)
			if update.Name.IsZero() && update.Colour.IsZero() && update.Icon.IsZero() {
				return errNoChanges
			}

			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			section, err := c.UpdateSection(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			printSection(cmd.OutOrStdout(), section, a.jsonOutput)
			return nil
		},
	}
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New name")
	editCmd.Flags().StringVarP(&editColour, "colour", "c", "", "New colour")
	editCmd.Flags().StringVarP(&editIcon, "icon", "i", "", "New icon")
	editCmd.Flags().BoolVar(&clearColour, "clear-colour", false, "Remove the colour")
	editCmd.Flags().BoolVar(&clearIcon, "clear-icon", false, "Remove the icon")
	editCmd.MarkFlagsMutuallyExclusive("colour", "clear-colour")
	editCmd.MarkFlagsMutuallyExclusive("icon", "clear-icon")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a section and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.connect(cmd, true)
			if err != nil {
				return err
			}
			section, err := c.DeleteSection(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.jsonOutput {
				printSection(cmd.OutOrStdout(), section, true)
				return nil
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Section %s deleted", section.Name), false)
			return nil
		},
	}

	cmd.AddCommand(listCmd, createCmd, editCmd, deleteCmd)
	return cmd
}

// optionalString builds an update field from a value flag and its --clear-
// counterpart.
func optionalString(changed bool, value string, clear bool) taskboard.Optional[string] {
	switch {
	case clear:
		return taskboard.Null[string]()
	case changed:
		return taskboard.Some(value)
	default:
		return taskboard.Optional[string]{}
	}
}
