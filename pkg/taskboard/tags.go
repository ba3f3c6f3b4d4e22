package taskboard

import (
	"context"
	"net/http"
	"net/url"
)

// GetTags fetches tags by id.
func (c *Client) GetTags(ctx context.Context, tagIDs []string) ([]Tag, error) {
	return call[[]Tag](ctx, c, http.MethodGet, "/tags", url.Values{"tagId": tagIDs}, nil, "tags")
}

// CreateTag creates a tag in a project.
func (c *Client) CreateTag(ctx context.Context, projectID, name string) (*Tag, error) {
	return call[*Tag](ctx, c, http.MethodPost, pathf("/projects/%s/tags", projectID), nil, createTagRequest{Name: name}, "tag")
}

// UpdateTag applies a partial update to a tag.
func (c *Client) UpdateTag(ctx context.Context, tagID string, update TagUpdate) (*Tag, error) {
	return call[*Tag](ctx, c, http.MethodPatch, pathf("/tags/%s", tagID), nil, update, "tag")
}

// DeleteTag deletes a tag and returns its last representation.
func (c *Client) DeleteTag(ctx context.Context, tagID string) (*Tag, error) {
	return call[*Tag](ctx, c, http.MethodDelete, pathf("/tags/%s", tagID), nil, nil, "tag")
}
