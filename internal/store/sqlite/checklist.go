package sqlite

import (
	"context"

	"github.com/taskboard/taskboard/internal/domain"
)

// ChecklistRepository handles checklist item persistence operations.
type ChecklistRepository struct {
	db DBTX
}

// NewChecklistRepository creates a new ChecklistRepository.
func NewChecklistRepository(db DBTX) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// Create appends a checklist item to its task.
func (r *ChecklistRepository) Create(ctx context.Context, item *domain.ChecklistItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO checklist_items (id, task_id, text, completed, position)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM checklist_items WHERE task_id = ?))
	`, item.ID, item.TaskID, item.Text, item.Completed, item.TaskID)
	return err
}

// ListByTask returns the checklist of a task in order.
func (r *ChecklistRepository) ListByTask(ctx context.Context, taskID string) ([]domain.ChecklistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, text, completed FROM checklist_items
		WHERE task_id = ?
		ORDER BY position ASC, rowid ASC
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.ChecklistItem{}
	for rows.Next() {
		var item domain.ChecklistItem
		if err := rows.Scan(&item.ID, &item.TaskID, &item.Text, &item.Completed); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
