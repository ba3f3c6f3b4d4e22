package sqlite

import (
	"context"

	"github.com/taskboard/taskboard/internal/domain"
)

// SectionRepository handles section persistence operations.
type SectionRepository struct {
	db DBTX
}

// NewSectionRepository creates a new SectionRepository.
func NewSectionRepository(db DBTX) *SectionRepository {
	return &SectionRepository{db: db}
}

const sectionColumns = "id, project_id, name, colour, icon, position, created_at"

// Create inserts a new section.
func (r *SectionRepository) Create(ctx context.Context, section *domain.Section) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sections (id, project_id, name, colour, icon, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		section.ID,
		section.ProjectID,
		section.Name,
		section.Colour,
		section.Icon,
		section.Position,
		formatTime(section.CreatedAt),
	)
	return err
}

// NextPosition returns the position after the last section of a project.
func (r *SectionRepository) NextPosition(ctx context.Context, projectID string) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM sections WHERE project_id = ?", projectID,
	).Scan(&next)
	return next, err
}

// GetByID retrieves a section by ID.
func (r *SectionRepository) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+sectionColumns+" FROM sections WHERE id = ?", id)
	return scanSection(row)
}

// ListByProject returns the sections of a project in board order.
func (r *SectionRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Section, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+sectionColumns+" FROM sections WHERE project_id = ? ORDER BY position ASC, created_at ASC", projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []*domain.Section{}
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

// Update writes a section's mutable fields.
func (r *SectionRepository) Update(ctx context.Context, section *domain.Section) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE sections SET name = ?, colour = ?, icon = ? WHERE id = ?",
		section.Name, section.Colour, section.Icon, section.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// Delete deletes a section and, by cascade, its tasks.
func (r *SectionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sections WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// OwnerID returns the id of the user owning the section's project.
func (r *SectionRepository) OwnerID(ctx context.Context, id string) (string, error) {
	var ownerID string
	err := r.db.QueryRowContext(ctx, `
		SELECT p.owner_id FROM sections s
		JOIN projects p ON p.id = s.project_id
		WHERE s.id = ?
	`, id).Scan(&ownerID)
	return ownerID, err
}

func scanSection(row scanner) (*domain.Section, error) {
	var section domain.Section
	var createdAt string

	err := row.Scan(
		&section.ID,
		&section.ProjectID,
		&section.Name,
		&section.Colour,
		&section.Icon,
		&section.Position,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	section.CreatedAt = parseTime(createdAt)

	return &section, nil
}
