package service

import (
	"context"
	"strings"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/store"
	"github.com/taskboard/taskboard/internal/store/sqlite"
	"github.com/taskboard/taskboard/pkg/idgen"
)

// TagService handles tag business logic.
type TagService struct {
	store *store.Store
}

// NewTagService creates a new TagService.
func NewTagService(st *store.Store) *TagService {
	return &TagService{store: st}
}

// UpdateTagInput is a partial tag update.
type UpdateTagInput struct {
	Name   domain.Field[string]
	Colour domain.Field[string]
}

// Create creates a tag in one of the user's projects.
func (s *TagService) Create(ctx context.Context, user *domain.User, projectID, name string) (*domain.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError([]string{"name is required"})
	}
	if _, err := ownedProject(ctx, s.store.DB(), user.ID, projectID); err != nil {
		return nil, err
	}

	tag := &domain.Tag{
		ID:        idgen.Generate(),
		ProjectID: projectID,
		Name:      name,
		Colour:    domain.DefaultTagColour,
	}
	if err := sqlite.NewTagRepository(s.store.DB()).Create(ctx, tag); err != nil {
		return nil, internalError(err)
	}
	return tag, nil
}

// Get returns the visible tags among ids, in request order.
func (s *TagService) Get(ctx context.Context, user *domain.User, ids []string) ([]domain.Tag, error) {
	tags, err := sqlite.NewTagRepository(s.store.DB()).ListVisible(ctx, user.ID, ids)
	if err != nil {
		return nil, internalError(err)
	}
	return tags, nil
}

// Update applies a partial update. A null colour resets it to the default.
func (s *TagService) Update(ctx context.Context, user *domain.User, id string, input UpdateTagInput) (*domain.Tag, error) {
	var errs []string
	if input.Name.Present && (input.Name.Null || strings.TrimSpace(input.Name.Value) == "") {
		errs = append(errs, "name cannot be empty")
	}
	if input.Colour.Present && !input.Colour.Null && (input.Colour.Value == "" || !domain.ValidColour(input.Colour.Value)) {
		errs = append(errs, "colour must be a #rgb or #rrggbb colour")
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	tag, err := ownedTag(ctx, s.store.DB(), user.ID, id)
	if err != nil {
		return nil, err
	}

	if input.Name.Present {
		tag.Name = input.Name.Value
	}
	if input.Colour.Present {
		tag.Colour = input.Colour.Value
		if input.Colour.Null {
			tag.Colour = domain.DefaultTagColour
		}
	}

	if err := sqlite.NewTagRepository(s.store.DB()).Update(ctx, tag); err != nil {
		return nil, lookupError(err, domain.NewTagNotFoundError(id))
	}
	return tag, nil
}

// Delete removes a tag from its project and every task, returning it.
func (s *TagService) Delete(ctx context.Context, user *domain.User, id string) (*domain.Tag, error) {
	tag, err := ownedTag(ctx, s.store.DB(), user.ID, id)
	if err != nil {
		return nil, err
	}

	if err := sqlite.NewTagRepository(s.store.DB()).Delete(ctx, id); err != nil {
		return nil, lookupError(err, domain.NewTagNotFoundError(id))
	}
	return tag, nil
}
