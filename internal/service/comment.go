package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/store"
	"github.com/taskboard/taskboard/internal/store/sqlite"
	"github.com/taskboard/taskboard/pkg/idgen"
)

// CommentService handles comment business logic.
type CommentService struct {
	store *store.Store
}

// NewCommentService creates a new CommentService.
func NewCommentService(st *store.Store) *CommentService {
	return &CommentService{store: st}
}

// Add adds a comment to a task. The author starts watching the task.
func (s *CommentService) Add(ctx context.Context, user *domain.User, taskID, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError([]string{"text is required"})
	}

	comment := &domain.Comment{
		ID:        idgen.Generate(),
		TaskID:    taskID,
		AuthorID:  user.ID,
		Text:      text,
		CreatedAt: now(),
	}

	err := s.store.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := ownedTask(ctx, tx, user.ID, taskID); err != nil {
			return err
		}
		if err := sqlite.NewCommentRepository(tx).Create(ctx, comment); err != nil {
			return err
		}
		return sqlite.NewTaskRepository(tx).AddWatcher(ctx, taskID, user.ID)
	})
	if err != nil {
		return nil, domainError(err)
	}
	return comment, nil
}

// Get returns the visible comments among ids, in request order.
func (s *CommentService) Get(ctx context.Context, user *domain.User, ids []string) ([]domain.Comment, error) {
	comments, err := sqlite.NewCommentRepository(s.store.DB()).ListVisible(ctx, user.ID, ids)
	if err != nil {
		return nil, internalError(err)
	}
	return comments, nil
}
