// Package service holds the development server's business logic. Every
// error returned is a *domain.DomainError.
package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/store/sqlite"
)

// now is the service clock. Timestamps are stored in UTC.
var now = func() time.Time {
	return time.Now().UTC()
}

// lookupError maps a repository read error, turning a missing row into
// notFound.
func lookupError(err error, notFound *domain.DomainError) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return internalError(err)
}

// domainError passes domain errors through and hides everything else.
func domainError(err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return internalError(err)
}

func internalError(err error) error {
	log.Printf("internal error: %v", err)
	return domain.NewInternalError(err)
}

// Ownership checks. Resources in projects owned by someone else are reported
// as missing so their existence is not revealed.

func ownedProject(ctx context.Context, db sqlite.DBTX, userID, projectID string) (*domain.Project, error) {
	project, err := sqlite.NewProjectRepository(db).GetByID(ctx, projectID)
	if err != nil {
		return nil, lookupError(err, domain.NewProjectNotFoundError(projectID))
	}
	if project.OwnerID != userID {
		return nil, domain.NewProjectNotFoundError(projectID)
	}
	return project, nil
}

func ownedSection(ctx context.Context, db sqlite.DBTX, userID, sectionID string) (*domain.Section, error) {
	repo := sqlite.NewSectionRepository(db)
	ownerID, err := repo.OwnerID(ctx, sectionID)
	if err != nil {
		return nil, lookupError(err, domain.NewSectionNotFoundError(sectionID))
	}
	if ownerID != userID {
		return nil, domain.NewSectionNotFoundError(sectionID)
	}

	section, err := repo.GetByID(ctx, sectionID)
	if err != nil {
		return nil, lookupError(err, domain.NewSectionNotFoundError(sectionID))
	}
	return section, nil
}

func ownedTask(ctx context.Context, db sqlite.DBTX, userID, taskID string) (*domain.Task, error) {
	repo := sqlite.NewTaskRepository(db)
	ownerID, err := repo.OwnerID(ctx, taskID)
	if err != nil {
		return nil, lookupError(err, domain.NewTaskNotFoundError(taskID))
	}
	if ownerID != userID {
		return nil, domain.NewTaskNotFoundError(taskID)
	}

	task, err := repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, lookupError(err, domain.NewTaskNotFoundError(taskID))
	}
	return task, nil
}

func ownedTag(ctx context.Context, db sqlite.DBTX, userID, tagID string) (*domain.Tag, error) {
	tag, err := sqlite.NewTagRepository(db).GetByID(ctx, tagID)
	if err != nil {
		return nil, lookupError(err, domain.NewTagNotFoundError(tagID))
	}
	if _, err := ownedProject(ctx, db, userID, tag.ProjectID); err != nil {
		return nil, domain.NewTagNotFoundError(tagID)
	}
	return tag, nil
}
