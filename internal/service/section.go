package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/store"
	"github.com/taskboard/taskboard/internal/store/sqlite"
	"github.com/taskboard/taskboard/pkg/idgen"
)

// SectionService handles section business logic.
type SectionService struct {
	store *store.Store
}

// NewSectionService creates a new SectionService.
func NewSectionService(st *store.Store) *SectionService {
	return &SectionService{store: st}
}

// CreateSectionInput contains the input for one new section.
type CreateSectionInput struct {
	Name   string
	Colour string
	Icon   string
}

// UpdateSectionInput is a partial section update.
type UpdateSectionInput struct {
	Name   domain.Field[string]
	Colour domain.Field[string]
	Icon   domain.Field[string]
}

// List returns the sections of one of the user's projects.
func (s *SectionService) List(ctx context.Context, user *domain.User, projectID string) ([]*domain.Section, error) {
	if _, err := ownedProject(ctx, s.store.DB(), user.ID, projectID); err != nil {
		return nil, err
	}

	sections, err := sqlite.NewSectionRepository(s.store.DB()).ListByProject(ctx, projectID)
	if err != nil {
		return nil, internalError(err)
	}
	return sections, nil
}

// Create appends sections to a project in one transaction, in input order.
func (s *SectionService) Create(ctx context.Context, user *domain.User, projectID string, inputs []CreateSectionInput) ([]*domain.Section, error) {
	var errs []string
	for i, in := range inputs {
		if strings.TrimSpace(in.Name) == "" {
			errs = append(errs, fmt.Sprintf("sections[%d].name is required", i))
		}
		if !domain.ValidColour(in.Colour) {
			errs = append(errs, fmt.Sprintf("sections[%d].colour must be a #rgb or #rrggbb colour", i))
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	created := make([]*domain.Section, 0, len(inputs))
	err := s.store.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := ownedProject(ctx, tx, user.ID, projectID); err != nil {
			return err
		}

		repo := sqlite.NewSectionRepository(tx)
		position, err := repo.NextPosition(ctx, projectID)
		if err != nil {
			return err
		}

		ts := now()
		for _, in := range inputs {
			section := &domain.Section{
				ID:        idgen.Generate(),
				ProjectID: projectID,
				Name:      in.Name,
				Colour:    in.Colour,
				Icon:      in.Icon,
				Position:  position,
				CreatedAt: ts,
			}
			if err := repo.Create(ctx, section); err != nil {
				return err
			}
			created = append(created, section)
			position++
		}
		return nil
	})
	if err != nil {
		return nil, domainError(err)
	}
	return created, nil
}

// Update applies a partial update. A null colour or icon clears it; the name
// cannot be cleared.
func (s *SectionService) Update(ctx context.Context, user *domain.User, id string, input UpdateSectionInput) (*domain.Section, error) {
	var errs []string
	if input.Name.Present && (input.Name.Null || strings.TrimSpace(input.Name.Value) == "") {
		errs = append(errs, "name cannot be empty")
	}
	if input.Colour.Present && !domain.ValidColour(input.Colour.Value) {
		errs = append(errs, "colour must be a #rgb or #rrggbb colour")
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	section, err := ownedSection(ctx, s.store.DB(), user.ID, id)
	if err != nil {
		return nil, err
	}

	if input.Name.Present {
		section.Name = input.Name.Value
	}
	if input.Colour.Present {
		section.Colour = input.Colour.Value
	}
	if input.Icon.Present {
		section.Icon = input.Icon.Value
	}

	if err := sqlite.NewSectionRepository(s.store.DB()).Update(ctx, section); err != nil {
		return nil, lookupError(err, domain.NewSectionNotFoundError(id))
	}
	return section, nil
}

// Delete removes a section with its tasks and returns what was deleted.
func (s *SectionService) Delete(ctx context.Context, user *domain.User, id string) (*domain.Section, error) {
	section, err := ownedSection(ctx, s.store.DB(), user.ID, id)
	if err != nil {
		return nil, err
	}

	if err := sqlite.NewSectionRepository(s.store.DB()).Delete(ctx, id); err != nil {
		return nil, lookupError(err, domain.NewSectionNotFoundError(id))
	}
	return section, nil
}
