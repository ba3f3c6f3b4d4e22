package sqlite

import (
	"context"

	"github.com/taskboard/taskboard/internal/domain"
)

// CommentRepository handles comment persistence operations.
type CommentRepository struct {
	db DBTX
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a new comment.
func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (id, task_id, author_id, text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, comment.ID, comment.TaskID, comment.AuthorID, comment.Text, formatTime(comment.CreatedAt))
	return err
}

// ListByTask returns the comments of a task, oldest first.
func (r *CommentRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	return r.query(ctx, `
		SELECT id, task_id, author_id, text, created_at FROM comments
		WHERE task_id = ?
		ORDER BY created_at ASC, rowid ASC
	`, taskID)
}

// ListVisible returns the comments with the given ids that belong to tasks
// in projects owned by ownerID, in request order.
func (r *CommentRepository) ListVisible(ctx context.Context, ownerID string, ids []string) ([]domain.Comment, error) {
	if len(ids) == 0 {
		return []domain.Comment{}, nil
	}

	in, args := inClause(ids)
	found, err := r.query(ctx, `
		SELECT c.id, c.task_id, c.author_id, c.text, c.created_at FROM comments c
		JOIN tasks t ON t.id = c.task_id
		JOIN sections s ON s.id = t.section_id
		JOIN projects p ON p.id = s.project_id
		WHERE p.owner_id = ? AND c.id IN `+in,
		append([]interface{}{ownerID}, args...)...,
	)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Comment, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	return orderByIDs(ids, byID), nil
}

func (r *CommentRepository) query(ctx context.Context, query string, args ...interface{}) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		var createdAt string
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Text, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt = parseTime(createdAt)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// orderByIDs returns the values of byID in the order of ids, skipping
// unknown and repeated ids.
func orderByIDs[T any](ids []string, byID map[string]T) []T {
	ordered := make([]T, 0, len(byID))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok && !seen[id] {
			ordered = append(ordered, v)
			seen[id] = true
		}
	}
	return ordered
}
