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

// TaskHandler handles task operations.
type TaskHandler struct {
	svc *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// CreateTask handles POST /sections/{id}/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTaskRequest
	if !decode(w, r, &req) {
		return
	}

	task, err := h.svc.Create(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"), req.Input())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, response.Envelope{"task": task})
}

// ListSectionTasks handles GET /sections/{id}/tasks.
func (h *TaskHandler) ListSectionTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.List(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"))
	h.writeList(w, tasks, err)
}

// ListTasks handles GET /tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ListAll(r.Context(), middleware.GetUser(r.Context()))
	h.writeList(w, tasks, err)
}

func (h *TaskHandler) writeList(w http.ResponseWriter, tasks []*domain.Task, err error) {
	if err != nil {
		response.Error(w, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	response.OK(w, response.Envelope{"tasks": tasks})
}

// GetTask handles GET /tasks/{id}. Sub-collections are embedded as objects.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.svc.Get(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, response.Envelope{"task": task})
}

// UpdateTask handles PATCH /tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	input, ok := decodePatch(w, r, request.TaskUpdate)
	if !ok {
		return
	}

	task, err := h.svc.Update(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, response.Envelope{"task": task})
}
