package sqlite

import (
	"context"

	"github.com/taskboard/taskboard/internal/domain"
)

// HistoryRepository handles task history persistence operations.
type HistoryRepository struct {
	db DBTX
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db DBTX) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Log appends a history item.
func (r *HistoryRepository) Log(ctx context.Context, item *domain.HistoryItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO history_items (id, task_id, type, detail, datetime)
		VALUES (?, ?, ?, ?, ?)
	`, item.ID, item.TaskID, string(item.Type), item.Detail, formatTime(item.Datetime))
	return err
}

// ListByTask returns the history of a task, oldest first.
func (r *HistoryRepository) ListByTask(ctx context.Context, taskID string) ([]domain.HistoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, type, detail, datetime FROM history_items
		WHERE task_id = ?
		ORDER BY datetime ASC, rowid ASC
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.HistoryItem{}
	for rows.Next() {
		var item domain.HistoryItem
		var itemType, datetime string
		if err := rows.Scan(&item.ID, &item.TaskID, &itemType, &item.Detail, &datetime); err != nil {
			return nil, err
		}
		item.Type = domain.HistoryType(itemType)
		item.Datetime = parseTime(datetime)
		items = append(items, item)
	}
	return items, rows.Err()
}
