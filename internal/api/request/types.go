package request

import (
	"time"

	"github.com/taskboard/taskboard/internal/service"
)

// SignupRequest represents a request to create an account.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest represents a request to open a session.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the login request.
func (r *LoginRequest) Validate() []string {
	var errors []string
	if r.Username == "" {
		errors = append(errors, "username is required")
	}
	if r.Password == "" {
		errors = append(errors, "password is required")
	}
	return errors
}

// GetUsersRequest represents a batch user lookup.
type GetUsersRequest struct {
	UserIDs []string `json:"userIds"`
}

// CreateProjectRequest represents a request to create a project.
type CreateProjectRequest struct {
	Name       string `json:"name"`
	Background string `json:"background"`
}

// CreateSectionsRequest represents a request to create sections.
type CreateSectionsRequest struct {
	Sections []struct {
		Name   string `json:"name"`
		Colour string `json:"colour"`
		Icon   string `json:"icon"`
	} `json:"sections"`
}

// Validate validates the create sections request.
func (r *CreateSectionsRequest) Validate() []string {
	if r.Sections == nil {
		return []string{"sections is required"}
	}
	return nil
}

// Inputs converts the request to service inputs.
func (r *CreateSectionsRequest) Inputs() []service.CreateSectionInput {
	inputs := make([]service.CreateSectionInput, len(r.Sections))
	for i, s := range r.Sections {
		inputs[i] = service.CreateSectionInput{Name: s.Name, Colour: s.Colour, Icon: s.Icon}
	}
	return inputs
}

// CreateTaskRequest represents a request to create a task. The misspelled
// "assigne" key sent by older clients is accepted as well.
type CreateTaskRequest struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	DueDate       *time.Time `json:"dueDate"`
	Assignee      *string    `json:"assignee"`
	LegacyAssigne *string    `json:"assigne"`
}

// Input converts the request to a service input.
func (r *CreateTaskRequest) Input() service.CreateTaskInput {
	assignee := r.Assignee
	if assignee == nil {
		assignee = r.LegacyAssigne
	}
	return service.CreateTaskInput{
		Name:        r.Name,
		Description: r.Description,
		DueDate:     r.DueDate,
		Assignee:    assignee,
	}
}

// AddCommentRequest represents a request to comment on a task.
type AddCommentRequest struct {
	Text string `json:"text"`
}

// CreateTagRequest represents a request to create a tag.
type CreateTagRequest struct {
	Name string `json:"name"`
}

// SectionUpdate decodes a section PATCH body.
func SectionUpdate(p Patch) (service.UpdateSectionInput, []string) {
	var in service.UpdateSectionInput
	var errs []string
	collect(&errs, &in.Name, p.String, "name")
	collect(&errs, &in.Colour, p.String, "colour")
	collect(&errs, &in.Icon, p.String, "icon")
	return in, errs
}

// TaskUpdate decodes a task PATCH body.
func TaskUpdate(p Patch) (service.UpdateTaskInput, []string) {
	var in service.UpdateTaskInput
	var errs []string
	collect(&errs, &in.Assignee, p.String, "assignee")
	collect(&errs, &in.DueDate, p.Time, "dueDate")
	collect(&errs, &in.Name, p.String, "name")
	collect(&errs, &in.Description, p.String, "description")
	collect(&errs, &in.Tags, p.Strings, "tags")
	return in, errs
}

// TagUpdate decodes a tag PATCH body.
func TagUpdate(p Patch) (service.UpdateTagInput, []string) {
	var in service.UpdateTagInput
	var errs []string
	collect(&errs, &in.Name, p.String, "name")
	collect(&errs, &in.Colour, p.String, "colour")
	return in, errs
}

func collect[T any](errs *[]string, dst *T, decode func(string) (T, error), key string) {
	v, err := decode(key)
	if err != nil {
		*errs = append(*errs, err.Error())
		return
	}
	*dst = v
}
