package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

const timeLayout = "2006-01-02 15:04"

func printJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// printUser prints a single user
func printUser(w io.Writer, user *taskboard.User, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, user)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", user.ID)
	fmt.Fprintf(tw, "Username:\t%s\n", user.Username)
	fmt.Fprintf(tw, "Email:\t%s\n", user.Email)
	tw.Flush()
}

// printUserList prints users as a table
func printUserList(w io.Writer, users []taskboard.User, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, users)
		return
	}

	if len(users) == 0 {
		fmt.Fprintln(w, "No users found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tUSERNAME\tEMAIL\n")
	fmt.Fprintf(tw, "--\t--------\t-----\n")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Username, u.Email)
	}
	tw.Flush()
}

// printProject prints a single project
func printProject(w io.Writer, project *taskboard.Project, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, project)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", project.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", project.Name)
	if project.Background != "" {
		fmt.Fprintf(tw, "Background:\t%s\n", project.Background)
	}
	tw.Flush()
}

// printProjectList prints projects as a table
func printProjectList(w io.Writer, projects []taskboard.Project, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, projects)
		return
	}

	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\n")
	fmt.Fprintf(tw, "--\t----\n")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\n", p.ID, truncate(p.Name, 40))
	}
	tw.Flush()
}

// printSection prints a single section
func printSection(w io.Writer, section *taskboard.Section, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, section)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", section.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", section.Name)
	fmt.Fprintf(tw, "Colour:\t%s\n", orDash(section.Colour))
	fmt.Fprintf(tw, "Icon:\t%s\n", orDash(section.Icon))
	tw.Flush()
}

// printSectionList prints sections as a table
func printSectionList(w io.Writer, sections []taskboard.Section, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, sections)
		return
	}

	if len(sections) == 0 {
		fmt.Fprintln(w, "No sections found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tCOLOUR\tICON\n")
	fmt.Fprintf(tw, "--\t----\t------\t----\n")
	for _, s := range sections {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, truncate(s.Name, 30), orDash(s.Colour), orDash(s.Icon))
	}
	tw.Flush()
}

// printTask prints a single task with whatever sub-collections were embedded
func printTask(w io.Writer, task *taskboard.Task, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, task)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", task.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", task.Name)
	if task.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", task.Description)
	}
	if task.DueDate != nil {
		fmt.Fprintf(tw, "Due:\t%s\n", formatTime(*task.DueDate))
	}
	if task.Assignee != nil {
		fmt.Fprintf(tw, "Assignee:\t%s\n", *task.Assignee)
	}
	if len(task.Tags) > 0 {
		fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(refLabels(task.Tags, func(t taskboard.Tag) string { return t.Name }), ", "))
	}
	if len(task.Watchers) > 0 {
		fmt.Fprintf(tw, "Watchers:\t%s\n", strings.Join(task.Watchers, ", "))
	}
	fmt.Fprintf(tw, "Created:\t%s\n", formatTime(task.Created))
	fmt.Fprintf(tw, "Updated:\t%s\n", formatTime(task.Updated))
	tw.Flush()

	if items := task.ChecklistItems; len(items) > 0 {
		fmt.Fprintln(w, "\nChecklist:")
		for _, ref := range items {
			if !ref.Resolved() {
				fmt.Fprintf(w, "  - %s\n", ref.ID)
				continue
			}
			mark := " "
			if ref.Value.Completed {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] %s\n", mark, ref.Value.Text)
		}
	}

	if comments := task.Comments; len(comments) > 0 {
		fmt.Fprintln(w, "\nComments:")
		for _, ref := range comments {
			if ref.Resolved() {
				fmt.Fprintf(w, "  %s  %s\n", ref.ID, ref.Value.Text)
			} else {
				fmt.Fprintf(w, "  %s\n", ref.ID)
			}
		}
	}

	if history := task.HistoryItems; len(history) > 0 {
		fmt.Fprintln(w, "\nHistory:")
		htw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, ref := range history {
			if ref.Resolved() {
				fmt.Fprintf(htw, "  %s\t%s\t%s\n", formatTime(ref.Value.Datetime), ref.Value.Type, ref.Value.Detail)
			} else {
				fmt.Fprintf(htw, "  %s\n", ref.ID)
			}
		}
		htw.Flush()
	}
}

// printTaskList prints tasks as a table
func printTaskList(w io.Writer, tasks []taskboard.Task, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, tasks)
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tDUE\tASSIGNEE\n")
	fmt.Fprintf(tw, "--\t----\t---\t--------\n")
	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		assignee := "-"
		if t.Assignee != nil {
			assignee = *t.Assignee
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, truncate(t.Name, 40), due, assignee)
	}
	tw.Flush()
}

// printComment prints a single comment
func printComment(w io.Writer, comment *taskboard.Comment, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, comment)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", comment.ID)
	fmt.Fprintf(tw, "Task:\t%s\n", comment.Task)
	fmt.Fprintf(tw, "Text:\t%s\n", comment.Text)
	tw.Flush()
}

// printCommentList prints comments as a table
func printCommentList(w io.Writer, comments []taskboard.Comment, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, comments)
		return
	}

	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tTEXT\n")
	fmt.Fprintf(tw, "--\t----\n")
	for _, c := range comments {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, truncate(c.Text, 60))
	}
	tw.Flush()
}

// printTag prints a single tag
func printTag(w io.Writer, tag *taskboard.Tag, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, tag)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", tag.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", tag.Name)
	fmt.Fprintf(tw, "Colour:\t%s\n", tag.Colour)
	fmt.Fprintf(tw, "Project:\t%s\n", tag.Project)
	tw.Flush()
}

// printTagList prints tags as a table
func printTagList(w io.Writer, tags []taskboard.Tag, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, tags)
		return
	}

	if len(tags) == 0 {
		fmt.Fprintln(w, "No tags found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tCOLOUR\n")
	fmt.Fprintf(tw, "--\t----\t------\n")
	for _, t := range tags {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, t.Colour)
	}
	tw.Flush()
}

// printError prints an error message. SDK errors carry the server's message.
func printError(w io.Writer, err error, jsonOutput bool) {
	message := err.Error()
	var apiErr *taskboard.Error
	if errors.As(err, &apiErr) && apiErr.Kind == taskboard.KindTransport && apiErr.Err != nil {
		message = fmt.Sprintf("cannot reach server: %v", apiErr.Err)
	}

	if jsonOutput {
		body := map[string]interface{}{"message": message}
		if apiErr != nil && apiErr.Code != "" {
			body["code"] = apiErr.Code
		}
		printJSON(w, map[string]interface{}{"error": body})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", message)
}

// printSuccess prints a success message
func printSuccess(w io.Writer, message string, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, map[string]interface{}{"message": message})
		return
	}

	fmt.Fprintln(w, message)
}

// refLabels renders each ref with label when resolved, else its id.
func refLabels[T any](refs []taskboard.Ref[T], label func(T) string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		if ref.Resolved() {
			out[i] = label(*ref.Value)
		} else {
			out[i] = ref.ID
		}
	}
	return out
}

func formatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate truncates a string to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
