package sqlite

import (
	"context"

	"github.com/taskboard/taskboard/internal/domain"
)

// TagRepository handles tag persistence operations.
type TagRepository struct {
	db DBTX
}

// NewTagRepository creates a new TagRepository.
func NewTagRepository(db DBTX) *TagRepository {
	return &TagRepository{db: db}
}

// Create inserts a new tag.
func (r *TagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tags (id, project_id, name, colour) VALUES (?, ?, ?, ?)",
		tag.ID, tag.ProjectID, tag.Name, tag.Colour,
	)
	return err
}

// GetByID retrieves a tag by ID.
func (r *TagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_id, name, colour FROM tags WHERE id = ?", id,
	).Scan(&tag.ID, &tag.ProjectID, &tag.Name, &tag.Colour)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListByProject returns the tags of a project ordered by name.
func (r *TagRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Tag, error) {
	return r.query(ctx,
		"SELECT id, project_id, name, colour FROM tags WHERE project_id = ? ORDER BY name ASC", projectID,
	)
}

// ListByTask returns the tags attached to a task.
func (r *TagRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Tag, error) {
	return r.query(ctx, `
		SELECT g.id, g.project_id, g.name, g.colour FROM tags g
		JOIN task_tags tt ON tt.tag_id = g.id
		WHERE tt.task_id = ?
		ORDER BY tt.rowid ASC
	`, taskID)
}

// ListVisible returns the tags with the given ids in projects owned by
// ownerID, in request order.
func (r *TagRepository) ListVisible(ctx context.Context, ownerID string, ids []string) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	in, args := inClause(ids)
	found, err := r.query(ctx, `
		SELECT g.id, g.project_id, g.name, g.colour FROM tags g
		JOIN projects p ON p.id = g.project_id
		WHERE p.owner_id = ? AND g.id IN `+in,
		append([]interface{}{ownerID}, args...)...,
	)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Tag, len(found))
	for _, g := range found {
		byID[g.ID] = g
	}
	return orderByIDs(ids, byID), nil
}

// Update writes a tag's mutable fields.
func (r *TagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tags SET name = ?, colour = ? WHERE id = ?", tag.Name, tag.Colour, tag.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// Delete deletes a tag and detaches it from every task.
func (r *TagRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tags WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *TagRepository) query(ctx context.Context, query string, args ...interface{}) ([]domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var g domain.Tag
		if err := rows.Scan(&g.ID, &g.ProjectID, &g.Name, &g.Colour); err != nil {
			return nil, err
		}
		tags = append(tags, g)
	}
	return tags, rows.Err()
}
