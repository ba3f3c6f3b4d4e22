package service

import (
	"context"
	"strings"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/store"
	"github.com/taskboard/taskboard/internal/store/sqlite"
	"github.com/taskboard/taskboard/pkg/idgen"
)

// ProjectService handles project business logic.
type ProjectService struct {
	store *store.Store
}

// NewProjectService creates a new ProjectService.
func NewProjectService(st *store.Store) *ProjectService {
	return &ProjectService{store: st}
}

// CreateProjectInput contains the input for creating a project.
type CreateProjectInput struct {
	Name       string
	Background string
}

// Create creates a project owned by user.
func (s *ProjectService) Create(ctx context.Context, user *domain.User, input CreateProjectInput) (*domain.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError([]string{"name is required"})
	}

	project := &domain.Project{
		ID:         idgen.Generate(),
		OwnerID:    user.ID,
		Name:       input.Name,
		Background: input.Background,
		CreatedAt:  now(),
	}
	if err := sqlite.NewProjectRepository(s.store.DB()).Create(ctx, project); err != nil {
		return nil, internalError(err)
	}
	return project, nil
}

// Get retrieves one of the user's projects.
func (s *ProjectService) Get(ctx context.Context, user *domain.User, id string) (*domain.Project, error) {
	return ownedProject(ctx, s.store.DB(), user.ID, id)
}

// List returns the user's projects.
func (s *ProjectService) List(ctx context.Context, user *domain.User) ([]*domain.Project, error) {
	projects, err := sqlite.NewProjectRepository(s.store.DB()).ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, internalError(err)
	}
	return projects, nil
}
