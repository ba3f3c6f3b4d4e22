package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard/taskboard/internal/api/middleware"
	"github.com/taskboard/taskboard/internal/api/request"
	"github.com/taskboard/taskboard/internal/api/response"
	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/service"
)

// ProjectHandler handles project operations.
type ProjectHandler struct {
	svc *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects handles GET /projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context(), middleware.GetUser(r.Context()))
	if err != nil {
		response.Error(w, err)
		return
	}
	if projects == nil {
		projects = []*domain.Project{}
	}

	response.OK(w, response.Envelope{"projects": projects})
}

// GetProject handles GET /projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.svc.Get(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, response.Envelope{"project": project})
}

// CreateProject handles POST /projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProjectRequest
	if !decode(w, r, &req) {
		return
	}

	project, err := h.svc.Create(r.Context(), middleware.GetUser(r.Context()), service.CreateProjectInput{
		Name:       req.Name,
		Background: req.Background,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, response.Envelope{"project": project})
}
