package taskboard

import (
	"context"
	"net/http"
)

// ListProjects returns the projects visible to the session.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	return call[[]Project](ctx, c, http.MethodGet, "/projects", nil, nil, "projects")
}

// GetProject retrieves a project by ID.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	return call[*Project](ctx, c, http.MethodGet, pathf("/projects/%s", projectID), nil, nil, "project")
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, name, background string) (*Project, error) {
	body := createProjectRequest{
		Name:       name,
		Background: background,
	}
	return call[*Project](ctx, c, http.MethodPost, "/projects", nil, body, "project")
}
