package taskboard

import (
	"context"
	"net/http"
)

// CreateTask creates a new task in a section.
func (c *Client) CreateTask(ctx context.Context, sectionID, name string, opts ...CreateTaskOption) (*Task, error) {
	body := createTaskRequest{Name: name}
	for _, opt := range opts {
		opt(&body)
	}

	return call[*Task](ctx, c, http.MethodPost, pathf("/sections/%s/tasks", sectionID), nil, body, "task")
}

// ListTasks lists the tasks of a section. An empty sectionID lists every task
// visible to the session.
func (c *Client) ListTasks(ctx context.Context, sectionID string) ([]Task, error) {
	path := "/tasks"
	if sectionID != "" {
		path = pathf("/sections/%s/tasks", sectionID)
	}
	return call[[]Task](ctx, c, http.MethodGet, path, nil, nil, "tasks")
}

// GetTask retrieves a task by ID.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	return call[*Task](ctx, c, http.MethodGet, pathf("/tasks/%s", taskID), nil, nil, "task")
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, update TaskUpdate) (*Task, error) {
	return call[*Task](ctx, c, http.MethodPatch, pathf("/tasks/%s", taskID), nil, update, "task")
}
