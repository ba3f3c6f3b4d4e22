package sqlite

import (
	"context"

	"github.com/taskboard/taskboard/internal/domain"
)

// ProjectRepository handles project persistence operations.
type ProjectRepository struct {
	db DBTX
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (id, owner_id, name, background, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, project.ID, project.OwnerID, project.Name, project.Background, formatTime(project.CreatedAt))
	return err
}

// GetByID retrieves a project by ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, background, created_at
		FROM projects WHERE id = ?
	`, id)
	return scanProject(row)
}

// ListByOwner returns a user's projects, oldest first.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, name, background, created_at
		FROM projects WHERE owner_id = ?
		ORDER BY created_at ASC, id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func scanProject(row scanner) (*domain.Project, error) {
	var project domain.Project
	var createdAt string

	if err := row.Scan(&project.ID, &project.OwnerID, &project.Name, &project.Background, &createdAt); err != nil {
		return nil, err
	}
	project.CreatedAt = parseTime(createdAt)

	return &project, nil
}
