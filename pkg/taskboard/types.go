package taskboard

import "time"

// User is an account on the server.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Project is the top-level container for sections and tags.
type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Background string `json:"background"`
}

// Section groups tasks inside a project.
type Section struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Colour string `json:"colour"`
	Icon   string `json:"icon"`
}

// Task is the central work item.
//
// The sub-collections are returned as full objects by some endpoints and as
// bare ids by others; check Ref.Resolved before reading Ref.Value.
type Task struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	DueDate        *time.Time           `json:"dueDate"`
	Assignee       *string              `json:"assignee"`
	Created        time.Time            `json:"created"`
	Updated        time.Time            `json:"updated"`
	Watchers       []string             `json:"watchers"`
	ChecklistItems []Ref[ChecklistItem] `json:"checklistItems"`
	Comments       []Ref[Comment]       `json:"comments"`
	HistoryItems   []Ref[HistoryItem]   `json:"historyItems"`
	Tags           []Ref[Tag]           `json:"tags"`
}

// Comment is a note attached to a task.
type Comment struct {
	ID   string `json:"id"`
	Task string `json:"task"`
	Text string `json:"text"`
}

// Tag labels tasks within a project.
type Tag struct {
	ID      string `json:"id"`
	Project string `json:"project"`
	Name    string `json:"name"`
	Colour  string `json:"colour"`
}

// HistoryType is the kind of change recorded by a history item.
type HistoryType string

const (
	HistoryCreate HistoryType = "CREATE"
	HistoryAssign HistoryType = "ASSIGN"
	HistoryUpdate HistoryType = "UPDATE"
)

// HistoryItem is a read-only audit entry on a task.
type HistoryItem struct {
	ID       string      `json:"id"`
	Detail   string      `json:"detail"`
	Datetime time.Time   `json:"datetime"`
	Type     HistoryType `json:"type"`
}

// ChecklistItem is a sub-item of a task.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// NewSection describes a section to create.
type NewSection struct {
	Name   string `json:"name"`
	Colour string `json:"colour"`
	Icon   string `json:"icon"`
}

// SectionUpdate is a partial update of a section. Absent fields are not sent.
type SectionUpdate struct {
	Name   Optional[string] `json:"name,omitzero"`
	Colour Optional[string] `json:"colour,omitzero"`
	Icon   Optional[string] `json:"icon,omitzero"`
}

// TaskUpdate is a partial update of a task. Absent fields are not sent;
// Null fields are sent as null and clear the server value.
type TaskUpdate struct {
	Assignee    Optional[string]    `json:"assignee,omitzero"`
	DueDate     Optional[time.Time] `json:"dueDate,omitzero"`
	Name        Optional[string]    `json:"name,omitzero"`
	Description Optional[string]    `json:"description,omitzero"`
	Tags        Optional[[]string]  `json:"tags,omitzero"`
}

// TagUpdate is a partial update of a tag.
type TagUpdate struct {
	Name   Optional[string] `json:"name,omitzero"`
	Colour Optional[string] `json:"colour,omitzero"`
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type getUsersRequest struct {
	UserIDs []string `json:"userIds"`
}

type createProjectRequest struct {
	Name       string `json:"name"`
	Background string `json:"background"`
}

type createSectionsRequest struct {
	Sections []NewSection `json:"sections"`
}

type createTaskRequest struct {
	Name     string     `json:"name"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Assignee *string    `json:"assignee,omitempty"`
}

type addCommentRequest struct {
	Text string `json:"text"`
}

type createTagRequest struct {
	Name string `json:"name"`
}
