package taskboard

import (
	"context"
	"net/http"
)

// ListSections returns the sections of a project.
func (c *Client) ListSections(ctx context.Context, projectID string) ([]Section, error) {
	return call[[]Section](ctx, c, http.MethodGet, pathf("/projects/%s/sections", projectID), nil, nil, "sections")
}

// CreateSections creates sections in a project in one request.
func (c *Client) CreateSections(ctx context.Context, projectID string, sections []NewSection) ([]Section, error) {
	if sections == nil {
		sections = []NewSection{}
	}
	body := createSectionsRequest{Sections: sections}
	return call[[]Section](ctx, c, http.MethodPost, pathf("/projects/%s/sections", projectID), nil, body, "sections")
}

// UpdateSection applies a partial update to a section.
func (c *Client) UpdateSection(ctx context.Context, sectionID string, update SectionUpdate) (*Section, error) {
	return call[*Section](ctx, c, http.MethodPatch, pathf("/sections/%s", sectionID), nil, update, "section")
}

// DeleteSection deletes a section and returns its last representation.
func (c *Client) DeleteSection(ctx context.Context, sectionID string) (*Section, error) {
	return call[*Section](ctx, c, http.MethodDelete, pathf("/sections/%s", sectionID), nil, nil, "section")
}
