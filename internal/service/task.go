package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/store"
	"github.com/taskboard/taskboard/internal/store/sqlite"
	"github.com/taskboard/taskboard/pkg/idgen"
)

// TaskService handles task business logic and records task history.
type TaskService struct {
	store *store.Store
}

// NewTaskService creates a new TaskService.
func NewTaskService(st *store.Store) *TaskService {
	return &TaskService{store: st}
}

// CreateTaskInput contains the input for creating a task.
type CreateTaskInput struct {
	Name        string
	Description string
	DueDate     *time.Time
	Assignee    *string
}

// UpdateTaskInput is a partial task update.
type UpdateTaskInput struct {
	Assignee    domain.Field[string]
	DueDate     domain.Field[time.Time]
	Name        domain.Field[string]
	Description domain.Field[string]
	Tags        domain.Field[[]string]
}

// Create creates a task in a section. The creator watches the task and a
// CREATE history item is recorded.
func (s *TaskService) Create(ctx context.Context, user *domain.User, sectionID string, input CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError([]string{"name is required"})
	}

	var task *domain.Task
	err := s.store.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := ownedSection(ctx, tx, user.ID, sectionID); err != nil {
			return err
		}
		if input.Assignee != nil {
			if err := checkUserExists(ctx, tx, *input.Assignee); err != nil {
				return err
			}
		}

		ts := now()
		created := &domain.Task{
			ID:          idgen.Generate(),
			SectionID:   sectionID,
			Name:        input.Name,
			Description: input.Description,
			DueDate:     input.DueDate,
			Assignee:    input.Assignee,
			Created:     ts,
			Updated:     ts,
		}

		tasks := sqlite.NewTaskRepository(tx)
		if err := tasks.Create(ctx, created); err != nil {
			return err
		}
		if err := tasks.AddWatcher(ctx, created.ID, user.ID); err != nil {
			return err
		}
		if err := logHistory(ctx, tx, created.ID, domain.HistoryCreate, fmt.Sprintf("%s created the task", user.Username), ts); err != nil {
			return err
		}

		var err error
		task, err = tasks.GetByID(ctx, created.ID)
		return err
	})
	if err != nil {
		return nil, domainError(err)
	}
	return task, nil
}

// List returns the tasks of one of the user's sections.
func (s *TaskService) List(ctx context.Context, user *domain.User, sectionID string) ([]*domain.Task, error) {
	if _, err := ownedSection(ctx, s.store.DB(), user.ID, sectionID); err != nil {
		return nil, err
	}

	tasks, err := sqlite.NewTaskRepository(s.store.DB()).ListBySection(ctx, sectionID)
	if err != nil {
		return nil, internalError(err)
	}
	return tasks, nil
}

// ListAll returns every task in the user's projects.
func (s *TaskService) ListAll(ctx context.Context, user *domain.User) ([]*domain.Task, error) {
	tasks, err := sqlite.NewTaskRepository(s.store.DB()).ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, internalError(err)
	}
	return tasks, nil
}

// Get retrieves a task with its sub-collections resolved.
func (s *TaskService) Get(ctx context.Context, user *domain.User, id string) (*domain.TaskDetail, error) {
	db := s.store.DB()
	task, err := ownedTask(ctx, db, user.ID, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.TaskDetail{Task: task}
	if detail.ChecklistItems, err = sqlite.NewChecklistRepository(db).ListByTask(ctx, id); err != nil {
		return nil, internalError(err)
	}
	if detail.Comments, err = sqlite.NewCommentRepository(db).ListByTask(ctx, id); err != nil {
		return nil, internalError(err)
	}
	if detail.HistoryItems, err = sqlite.NewHistoryRepository(db).ListByTask(ctx, id); err != nil {
		return nil, internalError(err)
	}
	if detail.Tags, err = sqlite.NewTagRepository(db).ListByTask(ctx, id); err != nil {
		return nil, internalError(err)
	}
	return detail, nil
}

// Update applies a partial update. An assignee change records an ASSIGN
// history item; changes to any other field record one UPDATE item.
func (s *TaskService) Update(ctx context.Context, user *domain.User, id string, input UpdateTaskInput) (*domain.Task, error) {
	if input.Name.Present && (input.Name.Null || strings.TrimSpace(input.Name.Value) == "") {
		return nil, domain.NewValidationError([]string{"name cannot be empty"})
	}

	var task *domain.Task
	err := s.store.WithTx(ctx, func(tx *sql.Tx) error {
		current, err := ownedTask(ctx, tx, user.ID, id)
		if err != nil {
			return err
		}

		var changed []string
		var assignDetail string

		if input.Assignee.Present {
			var next *string
			if !input.Assignee.Null {
				if err := checkUserExists(ctx, tx, input.Assignee.Value); err != nil {
					return err
				}
				next = &input.Assignee.Value
			}
			if !equalPtr(current.Assignee, next) {
				current.Assignee = next
				if assignDetail, err = describeAssignment(ctx, tx, user, next); err != nil {
					return err
				}
			}
		}

		if input.DueDate.Present {
			var next *time.Time
			if !input.DueDate.Null {
				due := input.DueDate.Value.UTC()
				next = &due
			}
			if !equalTime(current.DueDate, next) {
				current.DueDate = next
				changed = append(changed, "due date")
			}
		}

		if input.Name.Present && input.Name.Value != current.Name {
			current.Name = input.Name.Value
			changed = append(changed, "name")
		}

		if input.Description.Present && input.Description.Value != current.Description {
			current.Description = input.Description.Value
			changed = append(changed, "description")
		}

		tasks := sqlite.NewTaskRepository(tx)
		if input.Tags.Present {
			next := dedupe(input.Tags.Value)
			if err := s.checkTags(ctx, tx, id, next); err != nil {
				return err
			}
			if !sameSet(current.Tags, next) {
				if err := tasks.SetTags(ctx, id, next); err != nil {
					return err
				}
				changed = append(changed, "tags")
			}
		}

		if assignDetail == "" && len(changed) == 0 {
			task = current
			return nil
		}

		ts := now()
		current.Updated = ts
		if err := tasks.Update(ctx, current); err != nil {
			return err
		}
		if assignDetail != "" {
			if err := logHistory(ctx, tx, id, domain.HistoryAssign, assignDetail, ts); err != nil {
				return err
			}
		}
		if len(changed) > 0 {
			detail := fmt.Sprintf("%s updated %s", user.Username, strings.Join(changed, ", "))
			if err := logHistory(ctx, tx, id, domain.HistoryUpdate, detail, ts); err != nil {
				return err
			}
		}

		task, err = tasks.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, domainError(err)
	}
	return task, nil
}

// checkTags verifies every tag belongs to the task's project.
func (s *TaskService) checkTags(ctx context.Context, db sqlite.DBTX, taskID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	projectID, err := sqlite.NewTaskRepository(db).ProjectID(ctx, taskID)
	if err != nil {
		return err
	}
	tags, err := sqlite.NewTagRepository(db).ListByProject(ctx, projectID)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(tags))
	for _, tag := range tags {
		known[tag.ID] = true
	}

	var errs []string
	for _, id := range tagIDs {
		if !known[id] {
			errs = append(errs, fmt.Sprintf("tag %s does not belong to this project", id))
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationError(errs)
	}
	return nil
}

func checkUserExists(ctx context.Context, db sqlite.DBTX, userID string) error {
	if _, err := sqlite.NewUserRepository(db).GetByID(ctx, userID); err != nil {
		return lookupError(err, domain.NewValidationError([]string{fmt.Sprintf("assignee %s does not exist", userID)}))
	}
	return nil
}

func describeAssignment(ctx context.Context, db sqlite.DBTX, actor *domain.User, assignee *string) (string, error) {
	if assignee == nil {
		return fmt.Sprintf("%s unassigned the task", actor.Username), nil
	}
	target, err := sqlite.NewUserRepository(db).GetByID(ctx, *assignee)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s assigned the task to %s", actor.Username, target.Username), nil
}

func logHistory(ctx context.Context, db sqlite.DBTX, taskID string, typ domain.HistoryType, detail string, at time.Time) error {
	return sqlite.NewHistoryRepository(db).Log(ctx, &domain.HistoryItem{
		ID:       idgen.Generate(),
		TaskID:   taskID,
		Type:     typ,
		Detail:   detail,
		Datetime: at,
	})
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := append([]string(nil), a...)
	y := append([]string(nil), b...)
	sort.Strings(x)
	sort.Strings(y)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
