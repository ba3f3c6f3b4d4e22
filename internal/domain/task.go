package domain

import "time"

// HistoryType is the kind of change recorded by a history item.
type HistoryType string

const (
	HistoryCreate HistoryType = "CREATE"
	HistoryAssign HistoryType = "ASSIGN"
	HistoryUpdate HistoryType = "UPDATE"
)

// Task is the central work item. Sub-collections hold ids; TaskDetail
// carries the resolved objects.
type Task struct {
	ID             string     `json:"id"`
	SectionID      string     `json:"section"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	DueDate        *time.Time `json:"dueDate"`
	Assignee       *string    `json:"assignee"`
	Created        time.Time  `json:"created"`
	Updated        time.Time  `json:"updated"`
	Watchers       []string   `json:"watchers"`
	ChecklistItems []string   `json:"checklistItems"`
	Comments       []string   `json:"comments"`
	HistoryItems   []string   `json:"historyItems"`
	Tags           []string   `json:"tags"`
}

// TaskDetail is a task with its sub-collections embedded as full objects.
type TaskDetail struct {
	*Task
	ChecklistItems []ChecklistItem `json:"checklistItems"`
	Comments       []Comment       `json:"comments"`
	HistoryItems   []HistoryItem   `json:"historyItems"`
	Tags           []Tag           `json:"tags"`
}

// Comment is a note attached to a task.
type Comment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task"`
	AuthorID  string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created"`
}

// HistoryItem is an audit entry on a task.
type HistoryItem struct {
	ID       string      `json:"id"`
	TaskID   string      `json:"-"`
	Detail   string      `json:"detail"`
	Datetime time.Time   `json:"datetime"`
	Type     HistoryType `json:"type"`
}

// ChecklistItem is a sub-item of a task.
type ChecklistItem struct {
	ID        string `json:"id"`
	TaskID    string `json:"-"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Field is one attribute of a partial update. A zero Field is absent; Null
// marks an explicit JSON null.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Set returns a present Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: v}
}

// Cleared returns a present Field marked null.
func Cleared[T any]() Field[T] {
	return Field[T]{Present: true, Null: true}
}
