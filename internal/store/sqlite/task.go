package sqlite

import (
	"context"
	"database/sql"

	"github.com/taskboard/taskboard/internal/domain"
)

// TaskRepository handles task persistence operations.
type TaskRepository struct {
	db DBTX
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db DBTX) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = "t.id, t.section_id, t.name, t.description, t.due_date, t.assignee, t.created_at, t.updated_at"

// Create inserts a new task. Sub-collections are written separately.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, section_id, name, description, due_date, assignee, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		task.ID,
		task.SectionID,
		task.Name,
		task.Description,
		formatNullTime(task.DueDate),
		task.Assignee,
		formatTime(task.Created),
		formatTime(task.Updated),
	)
	return err
}

// GetByID retrieves a task with its sub-collection ids.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks t WHERE t.id = ?", id)
	task, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListBySection returns the tasks of a section, oldest first.
func (r *TaskRepository) ListBySection(ctx context.Context, sectionID string) ([]*domain.Task, error) {
	return r.list(ctx, `
		SELECT `+taskColumns+` FROM tasks t
		WHERE t.section_id = ?
		ORDER BY t.created_at ASC, t.id ASC
	`, sectionID)
}

// ListByOwner returns every task in the projects owned by ownerID.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	return r.list(ctx, `
		SELECT `+taskColumns+` FROM tasks t
		JOIN sections s ON s.id = t.section_id
		JOIN projects p ON p.id = s.project_id
		WHERE p.owner_id = ?
		ORDER BY t.created_at ASC, t.id ASC
	`, ownerID)
}

func (r *TaskRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Task, error) {
	tasks, err := r.queryTasks(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if err := r.loadRelations(ctx, task); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// queryTasks scans every row before returning so the connection is free for
// the relation queries that follow.
func (r *TaskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Update writes a task's scalar fields.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET name = ?, description = ?, due_date = ?, assignee = ?, updated_at = ?
		WHERE id = ?
	`,
		task.Name,
		task.Description,
		formatNullTime(task.DueDate),
		task.Assignee,
		formatTime(task.Updated),
		task.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// AddWatcher subscribes a user to a task. Adding an existing watcher is a
// no-op.
func (r *TaskRepository) AddWatcher(ctx context.Context, taskID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO task_watchers (task_id, user_id) VALUES (?, ?)", taskID, userID,
	)
	return err
}

// SetTags replaces the tags of a task.
func (r *TaskRepository) SetTags(ctx context.Context, taskID string, tagIDs []string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM task_tags WHERE task_id = ?", taskID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := r.db.ExecContext(ctx,
			"INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)", taskID, tagID,
		); err != nil {
			return err
		}
	}
	return nil
}

// OwnerID returns the id of the user owning the task's project.
func (r *TaskRepository) OwnerID(ctx context.Context, id string) (string, error) {
	var ownerID string
	err := r.db.QueryRowContext(ctx, `
		SELECT p.owner_id FROM tasks t
		JOIN sections s ON s.id = t.section_id
		JOIN projects p ON p.id = s.project_id
		WHERE t.id = ?
	`, id).Scan(&ownerID)
	return ownerID, err
}

// ProjectID returns the id of the project the task belongs to.
func (r *TaskRepository) ProjectID(ctx context.Context, id string) (string, error) {
	var projectID string
	err := r.db.QueryRowContext(ctx, `
		SELECT s.project_id FROM tasks t
		JOIN sections s ON s.id = t.section_id
		WHERE t.id = ?
	`, id).Scan(&projectID)
	return projectID, err
}

func (r *TaskRepository) loadRelations(ctx context.Context, task *domain.Task) error {
	var err error
	if task.Watchers, err = queryStrings(ctx, r.db,
		"SELECT user_id FROM task_watchers WHERE task_id = ? ORDER BY rowid", task.ID); err != nil {
		return err
	}
	if task.ChecklistItems, err = queryStrings(ctx, r.db,
		"SELECT id FROM checklist_items WHERE task_id = ? ORDER BY position, rowid", task.ID); err != nil {
		return err
	}
	if task.Comments, err = queryStrings(ctx, r.db,
		"SELECT id FROM comments WHERE task_id = ? ORDER BY created_at, rowid", task.ID); err != nil {
		return err
	}
	if task.HistoryItems, err = queryStrings(ctx, r.db,
		"SELECT id FROM history_items WHERE task_id = ? ORDER BY datetime, rowid", task.ID); err != nil {
		return err
	}
	if task.Tags, err = queryStrings(ctx, r.db,
		"SELECT tag_id FROM task_tags WHERE task_id = ? ORDER BY rowid", task.ID); err != nil {
		return err
	}
	return nil
}

func scanTask(row scanner) (*domain.Task, error) {
	var task domain.Task
	var dueDate, assignee sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&task.ID,
		&task.SectionID,
		&task.Name,
		&task.Description,
		&dueDate,
		&assignee,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.DueDate = parseNullTime(dueDate)
	if assignee.Valid {
		task.Assignee = &assignee.String
	}
	task.Created = parseTime(createdAt)
	task.Updated = parseTime(updatedAt)

	return &task, nil
}
