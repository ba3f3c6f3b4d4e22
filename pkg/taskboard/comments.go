package taskboard

import (
	"context"
	"net/http"
	"net/url"
)

// AddComment adds a comment to a task.
func (c *Client) AddComment(ctx context.Context, taskID, text string) (*Comment, error) {
	return call[*Comment](ctx, c, http.MethodPost, pathf("/tasks/%s/comments", taskID), nil, addCommentRequest{Text: text}, "comment")
}

// GetComments fetches comments by id. Ids are sent as repeated commentId
// query parameters.
func (c *Client) GetComments(ctx context.Context, commentIDs []string) ([]Comment, error) {
	return call[[]Comment](ctx, c, http.MethodGet, "/comments", url.Values{"commentId": commentIDs}, nil, "comments")
}
